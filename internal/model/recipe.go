package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Recipe represents a recipe document owned by a user.
//
// UserID holds the owning user's external hex id as a plain string so it can
// be compared directly against path parameters.
type Recipe struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           string        `bson:"userId" json:"userId"`
	Name             string        `bson:"name" json:"name"`
	ShortDescr       string        `bson:"shortDescr" json:"shortDescr"`
	Time             string        `bson:"time,omitempty" json:"time,omitempty"`
	ImageURL         string        `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	LongDescr        string        `bson:"longDescr,omitempty" json:"longDescr,omitempty"`
	DateOfPubl       string        `bson:"dateOfPubl" json:"dateOfPubl"`
	DateOfLastChange string        `bson:"dateOfLastChange" json:"dateOfLastChange"`
}
