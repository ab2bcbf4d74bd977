package models

type Passenger struct {
	Id           int     `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	Details      string  `bson:"details" json:"details"`
	Baggage      string  `bson:"baggage" json:"baggage"`
	BaggagePrice float64 `bson:"baggagePrice" json:"baggagePrice"`
	Meal         string  `bson:"meal" json:"meal"`
	MealPrice    float64 `bson:"mealPrice" json:"mealPrice"`
	Seat         string  `bson:"seat" json:"seat"`
}
