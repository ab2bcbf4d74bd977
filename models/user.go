package models

// User is an admin-managed app user. The numeric id is assigned by the
// caller and is the identity used by update and delete.
type User struct {
	Id   int    `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}
