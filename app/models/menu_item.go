package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem is a dish on the menu; FoodName is unique.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodName string             `bson:"foodName"      json:"foodName"`
	Price    float64            `bson:"price"         json:"price"`
}
