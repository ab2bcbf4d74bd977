package models

type Schedule struct {
	Id         int    `bson:"id" json:"id"`
	FlightName string `bson:"flightName" json:"flightName"`
	Departure  string `bson:"departure" json:"departure"`
	Arrival    string `bson:"arrival" json:"arrival"`
	Dtime      string `bson:"dtime" json:"dtime"`
	Atime      string `bson:"atime" json:"atime"`
	Aircraft   string `bson:"aircraft" json:"aircraft"`
	Seats      int    `bson:"seats" json:"seats"`
	Status     string `bson:"status" json:"status"`
}
