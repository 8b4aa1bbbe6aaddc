package utils

import "github.com/google/uuid"

// UUIDGenerator produces request identifiers for outbound calls.
type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator returns a generator whose ids start with prefix,
// e.g. "lab-" + uuid. An empty prefix yields bare UUID strings.
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns a time-ordered (v7) UUID, falling back to a random (v4)
// one if the v7 clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return g.prefix + uuid.NewString()
	}

	return g.prefix + v7.String()
}
