// Package generator synthesizes the fabricated rows of all fifteen datamart
// tables, one generator per domain. Synthesis and persistence are a single
// operation: each table method builds a batch and appends it through the
// datamart store.
package generator

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"
)

// AcademicYear stamps every generated row.
const AcademicYear = "2024/2025"

// TotalMeetings is the fixed per-course session count attendance rows
// reconcile against.
const TotalMeetings = 14

// pick returns a uniformly sampled element.
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// between returns a uniform integer in [min, max].
func between(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// uniform returns a uniform float in [min, max).
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// round2 rounds to two decimals, matching the datamart's DECIMAL(x, 2)
// columns so recomputed invariants hold exactly.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// courseCode produces a random MKxxxx course code.
func courseCode(rng *rand.Rand) string {
	return fmt.Sprintf("MK%d", between(rng, 1001, 9999))
}

// newFaker derives a gofakeit faker from the shared random source so a run
// is reproducible from one seed.
func newFaker(rng *rand.Rand) *gofakeit.Faker {
	return gofakeit.New(rng.Uint64())
}

func toValueRows[T interface{ values() []any }](rows []T) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = row.values()
	}
	return out
}
