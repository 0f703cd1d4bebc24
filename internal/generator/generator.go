// Package generator picks the letters the player has to tap.
package generator

import (
	"math/rand"
	"time"
)

const alphabetSize = 26

// Generator produces uniformly random lowercase letters.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Letter returns a letter in [a, z].
func (g *Generator) Letter() rune {
	return 'a' + rune(g.rnd.Intn(alphabetSize))
}
