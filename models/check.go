package models

// Check is a passenger check-in record. Unlike the other resources its
// identity field is checkId, and it carries a unique index.
type Check struct {
	CheckId        int     `bson:"checkId" json:"checkId"`
	PassengerName  string  `bson:"passengerName" json:"passengerName"`
	PassportNumber string  `bson:"passportNumber" json:"passportNumber"`
	Nationality    string  `bson:"nationality" json:"nationality"`
	FlightNumber   string  `bson:"flightNumber" json:"flightNumber"`
	Departure      string  `bson:"departure" json:"departure"`
	Destination    string  `bson:"destination" json:"destination"`
	SeatNumber     string  `bson:"seatNumber" json:"seatNumber"`
	GateNumber     string  `bson:"gateNumber" json:"gateNumber"`
	BoardingTime   string  `bson:"boardingTime" json:"boardingTime"`
	BaggageCount   int     `bson:"baggageCount" json:"baggageCount"`
	BaggageWeight  float64 `bson:"baggageWeight" json:"baggageWeight"`
	MealPreference string  `bson:"mealPreference" json:"mealPreference"`
	Status         string  `bson:"status" json:"status"`
}
