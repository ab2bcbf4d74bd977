package models

// Register is the admin-managed passenger profile. It is a plain CRUD
// resource and has nothing to do with the credential Account used by
// /register and /login. Its id carries a unique index.
type Register struct {
	Id           int    `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	Password     string `bson:"password" json:"password"`
	Phone        string `bson:"phone" json:"phone"`
	ProfilePhoto string `bson:"profilePhoto" json:"profilePhoto"`
}
