// Package handler contains the HTTP handlers. Each handler bundles the
// stores it needs behind small interfaces implemented by the repository
// and storage packages, so tests can swap in fakes without a database or
// object store.
package handler

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/queue"
)

// MediaUploader is the slice of the media store the handlers use: stage an
// upload, and remove a staged object again when a later step of the same
// request fails.
type MediaUploader interface {
	Upload(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error)
	Remove(ctx context.Context, publicURL string) error
}

// Publisher delivers a submission notification. Failures are ignored by
// callers; the record is already persisted when the event is published.
type Publisher func(ctx context.Context, ev queue.SubmissionReceivedEvent) error

// parseDate accepts the two formats the admin forms send: full RFC 3339
// timestamps and bare dates.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// rollbackUploads removes objects staged during a request whose later
// steps failed. Removal errors are ignored: a leaked object is preferable
// to masking the original failure.
func rollbackUploads(ctx context.Context, media MediaUploader, urls []string) {
	for _, u := range urls {
		_ = media.Remove(ctx, u)
	}
}
