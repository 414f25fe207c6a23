package utils

import "github.com/google/uuid"

// UUIDGenerator issues the run IDs attached to simulation results. IDs are
// UUIDv7, so they sort by creation time in logs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate falls back to a random UUIDv4 when the clock source fails.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
