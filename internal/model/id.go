package model

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"

	apperrors "cooking/internal/errors"
)

// External identifiers must be exactly 24 lowercase hex characters. This is
// stricter than bson.ObjectIDFromHex, which also accepts uppercase.
var idPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// IsValidID reports whether s is a well-formed external identifier.
func IsValidID(s string) bool {
	return idPattern.MatchString(s)
}

// ParseID converts an external identifier into its internal ObjectID form.
func ParseID(s string) (bson.ObjectID, error) {
	if !IsValidID(s) {
		return bson.ObjectID{}, apperrors.ErrInvalidID
	}
	return bson.ObjectIDFromHex(s)
}
