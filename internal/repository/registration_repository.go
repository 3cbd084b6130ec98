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

// RegistrationRepo encapsulates queries against the `registrations`
// collection. The collection is append-only: there are no update or
// delete methods on purpose.
type RegistrationRepo struct {
	col *mongo.Collection
}

// NewRegistrationRepo constructs a RegistrationRepo over the database handle.
func NewRegistrationRepo(db *mongo.Database) *RegistrationRepo {
	return &RegistrationRepo{col: db.Collection("registrations")}
}

// Create inserts the registration and returns it with the generated id.
func (r *RegistrationRepo) Create(ctx context.Context, reg model.Registration) (model.Registration, error) {
	reg.CreatedAt = time.Now().UTC()
	res, err := r.col.InsertOne(ctx, reg)
	if err != nil {
		return model.Registration{}, err
	}
	reg.ID = res.InsertedID.(primitive.ObjectID)
	return reg, nil
}

// List returns all registrations, newest first, for the admin view.
func (r *RegistrationRepo) List(ctx context.Context) ([]model.Registration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []model.Registration{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
