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

// TeamRepo encapsulates all queries against the `team_members` collection.
type TeamRepo struct {
	col *mongo.Collection
}

// NewTeamRepo constructs a TeamRepo over the given database handle.
func NewTeamRepo(db *mongo.Database) *TeamRepo {
	return &TeamRepo{col: db.Collection("team_members")}
}

// TeamUpdate carries the optional fields of a partial update. Nil fields
// are left untouched.
type TeamUpdate struct {
	Name        *string
	Position    *string
	Description *string
	Image       *string
	Order       *int
}

// OrderUpdate is a single id/order pair from the bulk reorder endpoint.
type OrderUpdate struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// Create inserts the member and returns it with the generated id.
func (r *TeamRepo) Create(ctx context.Context, m model.TeamMember) (model.TeamMember, error) {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return model.TeamMember{}, err
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	return m, nil
}

// List returns all members sorted by order ascending, then name, so the
// manual sequence from the reorder endpoint is always honored.
func (r *TeamRepo) List(ctx context.Context) ([]model.TeamMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []model.TeamMember{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single member, returning ErrNotFound on a miss.
func (r *TeamRepo) GetByID(ctx context.Context, id string) (model.TeamMember, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.TeamMember{}, err
	}
	var m model.TeamMember
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.TeamMember{}, ErrNotFound
		}
		return model.TeamMember{}, err
	}
	return m, nil
}

// Update applies the non-nil fields of upd and returns the updated
// document, or ErrNotFound when the id does not match.
func (r *TeamRepo) Update(ctx context.Context, id string, upd TeamUpdate) (model.TeamMember, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return model.TeamMember{}, err
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Position != nil {
		set["position"] = *upd.Position
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.Order != nil {
		set["order"] = *upd.Order
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	var m model.TeamMember
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.TeamMember{}, ErrNotFound
		}
		return model.TeamMember{}, err
	}
	return m, nil
}

// Delete removes the member document, ErrNotFound on repeat deletes.
func (r *TeamRepo) Delete(ctx context.Context, id string) error {
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

// Reorder applies a set of id/order pairs as a single batch write. All ids
// are validated before any write is issued, so a malformed id rejects the
// whole request instead of leaving the sequence half-applied.
func (r *TeamRepo) Reorder(ctx context.Context, updates []OrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	writes := make([]mongo.WriteModel, 0, len(updates))
	now := time.Now().UTC()
	for _, u := range updates {
		oid, err := parseObjectID(u.ID)
		if err != nil {
			return err
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": oid}).
			SetUpdate(bson.M{"$set": bson.M{"order": u.Order, "updated_at": now}}))
	}
	_, err := r.col.BulkWrite(ctx, writes)
	return err
}
