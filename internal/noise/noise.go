// Package noise generates the per-step perturbation slices fed into growth
// models. All randomness is seeded explicitly; there is no package-level
// RNG state, so a seed fully determines every slice a Generator produces.
package noise

import (
	"errors"
	"fmt"
	"math/rand"
)

// Kind selects the noise distribution.
type Kind string

const (
	// Zero produces all-zero slices (deterministic relaxation runs).
	Zero Kind = "zero"

	// Signed produces slices with exactly half the cells −1 and half +1,
	// uniformly shuffled. Each slice sums to zero exactly.
	Signed Kind = "signed"

	// Gaussian produces independent standard-normal draws. The sum is
	// zero only in expectation.
	Gaussian Kind = "gaussian"
)

var (
	// ErrUnknownKind indicates an unrecognized noise kind name.
	ErrUnknownKind = errors.New("noise: unknown kind")

	// ErrOddSignedNoise indicates signed noise was requested for an odd
	// cell count, which cannot split into equal −1/+1 halves.
	ErrOddSignedNoise = errors.New("noise: signed noise requires an even cell count")
)

// Generator produces noise slices of a fixed size from a seeded stream.
type Generator struct {
	kind Kind
	size int
	rng  *rand.Rand
}

// New builds a generator for slices of the given cell count. The same
// (kind, size, seed) triple always yields the same sequence of slices.
func New(kind Kind, size int, seed int64) (*Generator, error) {
	switch kind {
	case Zero, Signed, Gaussian:
	case "":
		kind = Zero
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if size <= 0 {
		return nil, fmt.Errorf("noise: slice size must be positive, got %d", size)
	}
	if kind == Signed && size%2 != 0 {
		return nil, fmt.Errorf("%w: %d cells", ErrOddSignedNoise, size)
	}
	return &Generator{kind: kind, size: size, rng: rand.New(rand.NewSource(seed))}, nil
}

// Kind returns the generator's distribution.
func (g *Generator) Kind() Kind { return g.kind }

// Slice produces the next noise slice in the stream.
func (g *Generator) Slice() []float64 {
	out := make([]float64, g.size)
	switch g.kind {
	case Zero:
	case Signed:
		half := g.size / 2
		for i := 0; i < half; i++ {
			out[i] = -1
		}
		for i := half; i < g.size; i++ {
			out[i] = 1
		}
		g.rng.Shuffle(g.size, func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	case Gaussian:
		for i := range out {
			out[i] = g.rng.NormFloat64()
		}
	}
	return out
}

// Series produces t consecutive slices (the precomputed noise for a run).
func (g *Generator) Series(t int) [][]float64 {
	out := make([][]float64, t)
	for i := range out {
		out[i] = g.Slice()
	}
	return out
}

// ParseKind maps a config/CLI string onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Zero, Signed, Gaussian:
		return Kind(s), nil
	case "":
		return Zero, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
