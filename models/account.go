package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is the credential identity behind /register and /login. Password
// holds the bcrypt digest; plaintext is never persisted. Accounts live in
// their own collection, separate from the Register CRUD resource.
type Account struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
