// ABOUTME: Seeded shuffle and train/dev/test slicing of an example collection
// ABOUTME: Pure in-memory logic, no filesystem or store access
package partition

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/harper/corpusprep/internal/faults"
	"github.com/harper/corpusprep/internal/models"
)

// Sizes holds the number of examples in each partition.
type Sizes struct {
	Train int `json:"train"`
	Dev   int `json:"dev"`
	Test  int `json:"test"`
}

// Total returns Train+Dev+Test.
func (s Sizes) Total() int {
	return s.Train + s.Dev + s.Test
}

// Partitions are contiguous, disjoint views into one shuffled slice.
type Partitions struct {
	Train []models.Example
	Dev   []models.Example
	Test  []models.Example
}

// Sizes reports the length of each partition.
func (p Partitions) Sizes() Sizes {
	return Sizes{Train: len(p.Train), Dev: len(p.Dev), Test: len(p.Test)}
}

// ValidateFraction rejects fractions outside the open interval (0, 1).
func ValidateFraction(fraction float64) error {
	if math.IsNaN(fraction) || fraction <= 0 || fraction >= 1 {
		return fmt.Errorf("%w: fraction must be in (0, 1), got %v", faults.ErrInvalidParameter, fraction)
	}
	return nil
}

// ComputeSizes gives dev and test floor(fraction*n) examples each and train
// the remainder. A fraction that would leave train negative is rejected.
func ComputeSizes(n int, fraction float64) (Sizes, error) {
	if err := ValidateFraction(fraction); err != nil {
		return Sizes{}, err
	}
	held := int(fraction * float64(n))
	s := Sizes{Dev: held, Test: held, Train: n - 2*held}
	if s.Train < 0 {
		return Sizes{}, fmt.Errorf("%w: fraction %v leaves no room for train with %d examples (dev=%d, test=%d)",
			faults.ErrInvalidParameter, fraction, n, s.Dev, s.Test)
	}
	return s, nil
}

// Shuffle permutes examples in place with a Fisher-Yates shuffle driven by
// a PCG generator seeded from seed. Same seed and same input order give the
// same permutation.
func Shuffle(examples []models.Example, seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	rng.Shuffle(len(examples), func(i, j int) {
		examples[i], examples[j] = examples[j], examples[i]
	})
}

// Split shuffles examples in place and slices them into train, dev and test,
// in that order.
func Split(examples []models.Example, fraction float64, seed int64) (Partitions, error) {
	sizes, err := ComputeSizes(len(examples), fraction)
	if err != nil {
		return Partitions{}, err
	}

	Shuffle(examples, seed)

	devEnd := sizes.Train + sizes.Dev
	return Partitions{
		Train: examples[:sizes.Train:sizes.Train],
		Dev:   examples[sizes.Train:devEnd:devEnd],
		Test:  examples[devEnd:],
	}, nil
}
