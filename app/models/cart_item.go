package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is one line of a user's cart. UserID holds User.ID; Price is the
// menu price captured when the item was added and is never recomputed.
type CartItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID   string             `bson:"userId"        json:"userId"`
	FoodName string             `bson:"foodName"      json:"foodName"`
	Quantity int                `bson:"quantity"      json:"quantity"`
	Price    float64            `bson:"price"         json:"price"`
}
