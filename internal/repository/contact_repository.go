package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/model"
)

// ContactRepo encapsulates queries against the `contacts` collection.
type ContactRepo struct {
	col *mongo.Collection
}

// NewContactRepo constructs a ContactRepo over the given database handle.
func NewContactRepo(db *mongo.Database) *ContactRepo {
	return &ContactRepo{col: db.Collection("contacts")}
}

// Create inserts the message and returns it with the generated id.
func (r *ContactRepo) Create(ctx context.Context, c model.Contact) (model.Contact, error) {
	c.Date = time.Now().UTC()
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return model.Contact{}, err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return c, nil
}

// List returns all messages, newest first, for the admin view.
func (r *ContactRepo) List(ctx context.Context) ([]model.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []model.Contact{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a message, ErrNotFound on a miss.
func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
