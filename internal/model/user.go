package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Default avatar URLs assigned at creation when no imageUrl is supplied.
const (
	DefaultFemaleAvatar = "http://wuf9.org/wp-content/themes/wuf9/img/default-female.jpg"
	DefaultMaleAvatar   = "https://www.mastermindpromotion.com/wp-content/uploads/2015/02/facebook-default-no-profile-pic-300x300.jpg"
)

// User represents a registered user document.
//
// The internal _id never appears on the wire: the bson tag binds it to the
// stored document while the json tag exposes it as a 24-hex "id" string.
type User struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string        `bson:"name" json:"name"`
	Username         string        `bson:"username" json:"username"`
	Password         string        `bson:"password,omitempty" json:"password,omitempty"`
	Sex              string        `bson:"sex" json:"sex"`
	Role             string        `bson:"role,omitempty" json:"role,omitempty"`
	ImageURL         string        `bson:"imageUrl" json:"imageUrl"`
	Description      string        `bson:"description,omitempty" json:"description,omitempty"`
	StatusOfAcc      string        `bson:"statusOfAcc,omitempty" json:"statusOfAcc,omitempty"`
	DateOfReg        string        `bson:"dateOfReg" json:"dateOfReg"`
	DateOfLastChange string        `bson:"dateOfLastChange" json:"dateOfLastChange"`
}
