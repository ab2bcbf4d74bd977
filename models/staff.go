package models

type Staff struct {
	Id          int    `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Role        string `bson:"role" json:"role"`
	Num         int    `bson:"num" json:"num"`
	Email       string `bson:"email" json:"email"`
	Certificate string `bson:"certificate" json:"certificate"`
	Schedule    string `bson:"schedule" json:"schedule"`
	Status      string `bson:"status" json:"status"`
}
