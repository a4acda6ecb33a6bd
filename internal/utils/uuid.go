package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for comments. Comments are
// rendered most recent first, so V7's monotonic ordering keeps IDs and display
// order aligned.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
