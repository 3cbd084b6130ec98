package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// AdminUser represents an administrator account stored in the `users`
// collection. Accounts are created through signup and used exclusively
// for authentication; there is no update or delete path.
//
// Fields:
//
//	ID           – document id.
//	Username     – display name of the administrator.
//	Email        – unique, lower-cased email address.
//	PasswordHash – bcrypt hash of the password; never serialized to JSON.
type AdminUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
}
