package repository

import "go.mongodb.org/mongo-driver/bson/primitive"

// parseObjectID converts a hex id from a URL parameter into an ObjectID,
// mapping malformed input to ErrInvalidID so handlers can answer 400
// instead of leaking driver errors.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
