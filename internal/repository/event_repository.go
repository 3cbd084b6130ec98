// This file defines repository methods for event listings. An Event is a
// public document: reads are unauthenticated while create, update and
// delete only happen behind the auth gate. Updates are partial; the
// handler decides which fields are present and the repository applies
// exactly those.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/model"
)

// EventRepo encapsulates all queries against the `events` collection.
type EventRepo struct {
	col *mongo.Collection
}

// NewEventRepo constructs an EventRepo over the given database handle.
func NewEventRepo(db *mongo.Database) *EventRepo {
	return &EventRepo{col: db.Collection("events")}
}

// EventUpdate carries the optional fields of a partial update. Nil fields
// are left untouched. Photos is the full replacement list when non-nil;
// a nil Photos pointer means "no photo change requested".
type EventUpdate struct {
	Name        *string
	Date        *time.Time
	Venue       *string
	Description *string
	Photos      *[]string
}

// Create inserts the event and returns it with the generated id.
func (r *EventRepo) Create(ctx context.Context, e model.Event) (model.Event, error) {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Photos == nil {
		e.Photos = []string{}
	}
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return model.Event{}, err
	}
	e.ID = res.InsertedID.(primitive.ObjectID)
	return e, nil
}

// List returns all events sorted by date descending. No pagination.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []model.Event{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single event, returning ErrNotFound on a miss.
func (r *EventRepo) GetByID(ctx context.Context, id string) (model.Event, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.Event{}, err
	}
	var e model.Event
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Event{}, ErrNotFound
		}
		return model.Event{}, err
	}
	return e, nil
}

// Update applies the non-nil fields of upd to the event and returns the
// updated document. ErrNotFound is returned when the id does not match.
func (r *EventRepo) Update(ctx context.Context, id string, upd EventUpdate) (model.Event, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.Event{}, err
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Venue != nil {
		set["venue"] = *upd.Venue
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Photos != nil {
		set["photos"] = *upd.Photos
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	var e model.Event
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Event{}, ErrNotFound
		}
		return model.Event{}, err
	}
	return e, nil
}

// Delete removes the event document. Deleting an id that no longer exists
// returns ErrNotFound so repeated deletes answer 404, not success.
func (r *EventRepo) Delete(ctx context.Context, id string) error {
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
