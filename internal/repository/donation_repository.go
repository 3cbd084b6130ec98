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

// DonationRepo encapsulates queries against the `donations` collection.
// Records are written once after the gateway reports success; there is no
// update or delete path.
type DonationRepo struct {
	col *mongo.Collection
}

// NewDonationRepo constructs a DonationRepo over the given database handle.
func NewDonationRepo(db *mongo.Database) *DonationRepo {
	return &DonationRepo{col: db.Collection("donations")}
}

// Create inserts the donation record and returns it with its id.
func (r *DonationRepo) Create(ctx context.Context, d model.Donation) (model.Donation, error) {
	d.Date = time.Now().UTC()
	res, err := r.col.InsertOne(ctx, d)
	if err != nil {
		return model.Donation{}, err
	}
	d.ID = res.InsertedID.(primitive.ObjectID)
	return d, nil
}

// List returns all donation records, newest first.
func (r *DonationRepo) List(ctx context.Context) ([]model.Donation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []model.Donation{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
