package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered customer. ID is the public UUID referenced by cart
// items; ObjectID is the store's own key.
type User struct {
	ObjectID primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID       string             `bson:"id"            json:"id"`
	Name     string             `bson:"name"          json:"name"`
	Email    string             `bson:"email"         json:"email"`
	Phone    string             `bson:"phone"         json:"phone"`
	Address  string             `bson:"address"       json:"address"`
	Age      int                `bson:"age"           json:"age"`
	Password string             `bson:"password"      json:"-"` // bcrypt hash, never serialised
}

// Profile is the subset of a user returned on login.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	ID    string `json:"id"`
}

func (u *User) Profile() Profile {
	return Profile{Name: u.Name, Email: u.Email, ID: u.ID}
}
