package models

// Payment records a fare payment keyed to a free-text flight code. The
// flight field is not a validated link to a Schedule record.
type Payment struct {
	Id        int     `bson:"id" json:"id"`
	Flight    string  `bson:"flight" json:"flight"`
	Passenger string  `bson:"passenger" json:"passenger"`
	Seat      string  `bson:"seat" json:"seat"`
	Price     float64 `bson:"price" json:"price"`
	Method    string  `bson:"method" json:"method"`
	Card      string  `bson:"card" json:"card"`
	Expiry    string  `bson:"expiry" json:"expiry"`
	Cvv       string  `bson:"cvv" json:"cvv"`
	Phone     string  `bson:"phone" json:"phone"`
	Status    string  `bson:"status" json:"status"`
}
