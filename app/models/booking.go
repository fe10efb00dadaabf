package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a table reservation. Duplicates are allowed.
type Booking struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name"          json:"name"`
	Phone   string             `bson:"phone"         json:"phone"`
	Email   string             `bson:"email"         json:"email"`
	Persons int                `bson:"persons"       json:"persons"`
	Date    string             `bson:"date"          json:"date"`
}
