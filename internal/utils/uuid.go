package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered v7 identifiers for stored documents.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator { return &UUIDGenerator{} }

// Generate returns a v7 UUID, or a random v4 one if the clock source fails.
func (UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
