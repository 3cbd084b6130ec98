package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/model"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/utils"
)

// UserRepo encapsulates all queries against the `users` collection.
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepo constructs a UserRepo over the given database handle.
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("users")}
}

// EnsureIndexes creates the unique email index. Called once at startup;
// the operation is idempotent.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create hashes the password, inserts the user and returns the stored
// record. A duplicate email yields ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, username, email, password string, cost int) (model.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.AdminUser{}, err
	}
	u := model.AdminUser{Username: username, Email: email, PasswordHash: hash}
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.AdminUser{}, ErrEmailExists
		}
		return model.AdminUser{}, err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

// GetByEmail fetches a user by normalized email. Returns ErrNotFound when
// no account exists for the address.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.AdminUser
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.AdminUser{}, ErrNotFound
		}
		return model.AdminUser{}, err
	}
	return u, nil
}
