// ABOUTME: Tests for partition sizing, shuffling, and slicing
// ABOUTME: Verifies floor sizing, disjointness, and seed determinism
package partition

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/harper/corpusprep/internal/faults"
	"github.com/harper/corpusprep/internal/models"
)

func makeExamples(n int) []models.Example {
	examples := make([]models.Example, n)
	for i := range examples {
		examples[i] = models.Example(fmt.Sprintf(`{"id":%d}`, i))
	}
	return examples
}

func TestComputeSizes(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		fraction float64
		want     Sizes
		wantErr  bool
	}{
		{"ten at default", 10, 0.2, Sizes{Train: 6, Dev: 2, Test: 2}, false},
		{"floor rounding", 7, 0.2, Sizes{Train: 5, Dev: 1, Test: 1}, false},
		{"tiny fraction", 9, 0.1, Sizes{Train: 9, Dev: 0, Test: 0}, false},
		{"empty dataset", 0, 0.2, Sizes{}, false},
		{"half", 3, 0.5, Sizes{Train: 1, Dev: 1, Test: 1}, false},
		{"above half but train zero", 4, 0.6, Sizes{Train: 0, Dev: 2, Test: 2}, false},
		{"above half with negative train", 10, 0.6, Sizes{}, true},
		{"zero fraction", 10, 0, Sizes{}, true},
		{"one fraction", 10, 1, Sizes{}, true},
		{"negative fraction", 10, -0.2, Sizes{}, true},
		{"nan fraction", 10, math.NaN(), Sizes{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeSizes(tt.n, tt.fraction)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ComputeSizes() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, faults.ErrInvalidParameter) {
					t.Errorf("error = %v, want ErrInvalidParameter", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ComputeSizes() = %+v, want %+v", got, tt.want)
			}
			if got.Total() != tt.n {
				t.Errorf("Total() = %d, want %d", got.Total(), tt.n)
			}
		})
	}
}

func TestSplit_Properties(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 10, 33, 100} {
		for _, f := range []float64{0.05, 0.2, 0.33, 0.49} {
			t.Run(fmt.Sprintf("n=%d/f=%v", n, f), func(t *testing.T) {
				parts, err := Split(makeExamples(n), f, 0)
				if err != nil {
					t.Fatalf("Split() error = %v", err)
				}

				held := int(f * float64(n))
				if len(parts.Dev) != held || len(parts.Test) != held {
					t.Errorf("dev=%d test=%d, want %d each", len(parts.Dev), len(parts.Test), held)
				}
				if parts.Sizes().Total() != n {
					t.Errorf("total = %d, want %d", parts.Sizes().Total(), n)
				}

				seen := make(map[string]int)
				for _, group := range [][]models.Example{parts.Train, parts.Dev, parts.Test} {
					for _, ex := range group {
						seen[string(ex)]++
					}
				}
				if len(seen) != n {
					t.Errorf("distinct examples = %d, want %d", len(seen), n)
				}
				for ex, count := range seen {
					if count != 1 {
						t.Errorf("example %s appears %d times", ex, count)
					}
				}
			})
		}
	}
}

func TestSplit_Deterministic(t *testing.T) {
	a, err := Split(makeExamples(50), 0.2, 1234)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Split(makeExamples(50), 0.2, 1234)
	if err != nil {
		t.Fatal(err)
	}
	c, err := Split(makeExamples(50), 0.2, 1235)
	if err != nil {
		t.Fatal(err)
	}

	if fmt.Sprint(a) != fmt.Sprint(b) {
		t.Error("same seed produced different partitions")
	}
	if fmt.Sprint(a) == fmt.Sprint(c) {
		t.Error("different seeds produced identical partitions")
	}
}

func TestSplit_OrderFollowsShuffle(t *testing.T) {
	shuffled := makeExamples(10)
	Shuffle(shuffled, 0)

	parts, err := Split(makeExamples(10), 0.2, 0)
	if err != nil {
		t.Fatal(err)
	}

	var joined []models.Example
	joined = append(joined, parts.Train...)
	joined = append(joined, parts.Dev...)
	joined = append(joined, parts.Test...)
	for i := range shuffled {
		if string(joined[i]) != string(shuffled[i]) {
			t.Fatalf("position %d = %s, want %s", i, joined[i], shuffled[i])
		}
	}
}

func TestSplit_InvalidFractionLeavesInputAlone(t *testing.T) {
	examples := makeExamples(5)
	if _, err := Split(examples, 1.5, 0); err == nil {
		t.Fatal("Split() should fail for fraction 1.5")
	}
	for i, ex := range examples {
		if string(ex) != fmt.Sprintf(`{"id":%d}`, i) {
			t.Fatalf("input reordered at %d: %s", i, ex)
		}
	}
}
