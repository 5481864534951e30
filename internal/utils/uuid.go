package utils

import "github.com/google/uuid"

// UUIDGenerator produces collision-resistant unique identifiers used as
// per-request correlation ids. Generation never fails: if a time-ordered
// UUIDv7 cannot be produced, a random UUIDv4 is used instead.
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
