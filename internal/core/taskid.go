package core

import "math/rand/v2"

// idAlphabet is the alphanumeric alphabet task ids are drawn from.
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// idLength is the fixed length of a task id.
const idLength = 8

// IDGenerator defines the interface for generating task ids.
type IDGenerator interface {
	GenerateID() string
}

// randIDGenerator implements IDGenerator with a pseudorandom 8-character
// alphanumeric id. Generated ids are not checked against the existing
// collection.
type randIDGenerator struct{}

// NewIDGenerator creates an IDGenerator producing 8-character alphanumeric
// pseudorandom ids.
func NewIDGenerator() IDGenerator {
	return &randIDGenerator{}
}

// GenerateID returns a fresh pseudorandom id.
func (g *randIDGenerator) GenerateID() string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b)
}
