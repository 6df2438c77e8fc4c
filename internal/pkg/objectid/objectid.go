// Package objectid generates and checks the 24-character hexadecimal identifiers
// used for every stored entity.
package objectid

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// New returns a fresh identifier.
func New() string {
	return primitive.NewObjectID().Hex()
}

// IsValid reports whether s is a well-formed identifier.
func IsValid(s string) bool {
	return primitive.IsValidObjectID(s)
}

// Normalize lowercases a well-formed identifier so lookups match stored keys.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
