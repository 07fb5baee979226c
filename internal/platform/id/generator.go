// Package id produces the opaque identifiers handed out for auctions,
// players, teams, and roster entries.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator creates new identifiers. Tests substitute deterministic
// implementations.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator emits 32 hex characters from a crypto source.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(raw), nil
}
