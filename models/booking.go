package models

type Booking struct {
	Id            int    `bson:"id" json:"id"`
	From          string `bson:"from" json:"from"`
	To            string `bson:"to" json:"to"`
	Departure     string `bson:"departure" json:"departure"`
	ReturnDate    string `bson:"returnDate" json:"returnDate"`
	Passengers    int    `bson:"passengers" json:"passengers"`
	TravelClass   string `bson:"travelClass" json:"travelClass"`
	TripType      string `bson:"tripType" json:"tripType"`
	FlexibleDates bool   `bson:"flexibleDates" json:"flexibleDates"`
}
