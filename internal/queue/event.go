// Package queue defines message payloads exchanged over the message broker.
package queue

// SubmissionReceivedEvent is published whenever a public form submission
// (contact message, volunteer registration or donation) is persisted. It
// carries enough information for downstream consumers to log or notify
// the admins without querying the primary database.
type SubmissionReceivedEvent struct {
	Kind       string `json:"kind"` // "contact" | "registration" | "donation"
	DocumentID string `json:"document_id"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Amount     int64  `json:"amount,omitempty"` // smallest currency unit, donations only
	ReceivedAt string `json:"received_at"`
}
