package ingest

import (
	"fmt"
	"math/rand/v2"

	"github.com/rshade/pagetable/internal/dataset"
)

// Sample value range for generated cells.
const (
	MinSampleValue = 100.00
	MaxSampleValue = 2350.00
)

// Generator produces random sample records. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed. Equal seeds produce equal sequences.
func NewGenerator(seed uint64) *Generator {
	//nolint:gosec // G404: math/rand/v2 is appropriate for non-cryptographic sample data
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Rows returns n records of cols sample cells each.
func (g *Generator) Rows(n, cols int) []dataset.Record {
	if n <= 0 || cols <= 0 {
		return nil
	}
	out := make([]dataset.Record, n)
	for i := range out {
		row := make(dataset.Record, cols)
		for c := range row {
			row[c] = fmt.Sprintf("Sample %.2f", g.value())
		}
		out[i] = row
	}
	return out
}

// BatchSize returns a size in [minSize, maxSize]. Bounds are swapped when reversed.
func (g *Generator) BatchSize(minSize, maxSize int) int {
	if maxSize < minSize {
		minSize, maxSize = maxSize, minSize
	}
	return minSize + g.rng.IntN(maxSize-minSize+1)
}

// Intn returns a value in [0, n). n must be positive.
func (g *Generator) Intn(n int) int {
	return g.rng.IntN(n)
}

// Randomize returns a copy of row with every cell replaced by a modified sample value.
func (g *Generator) Randomize(row dataset.Record) dataset.Record {
	out := make(dataset.Record, len(row))
	for i := range out {
		out[i] = fmt.Sprintf("Modified %.2f", g.value())
	}
	return out
}

func (g *Generator) value() float64 {
	return MinSampleValue + g.rng.Float64()*(MaxSampleValue-MinSampleValue)
}
