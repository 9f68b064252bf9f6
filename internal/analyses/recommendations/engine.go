package recommendations

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Rand is the randomness the engine samples with. Implementations must be
// safe for concurrent use.
type Rand interface {
	// Perm returns a uniformly random permutation of [0, n).
	Perm(n int) []int
}

type globalRand struct{}

func (globalRand) Perm(n int) []int {
	return rand.Perm(n)
}

// DefaultRand draws from the process-wide, non-deterministic generator.
func DefaultRand() Rand {
	return globalRand{}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRand returns a reproducible Rand for the given seed.
func NewSeededRand(seed uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *lockedRand) Perm(n int) []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Perm(n)
}

// Engine picks recommendations for a building type.
type Engine struct {
	Catalog *Catalog
	Rand    Rand
}

// NewEngine builds an Engine. Nil arguments fall back to the default catalog
// and the non-deterministic generator.
func NewEngine(catalog *Catalog, r Rand) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if r == nil {
		r = DefaultRand()
	}
	return &Engine{Catalog: catalog, Rand: r}
}

// Recommend draws SampleSize distinct recommendations for buildingType.
func (e *Engine) Recommend(buildingType string) (Result, error) {
	items, ok := e.Catalog.Lookup(buildingType)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedBuildingType, buildingType)
	}
	picked, err := Sample(e.Rand, items, SampleSize)
	if err != nil {
		return Result{}, err
	}
	return Result{
		BuildingType:    buildingType,
		Recommendations: picked,
	}, nil
}

// Sample returns k items chosen uniformly without replacement.
func Sample(r Rand, items []string, k int) ([]string, error) {
	if k < 0 || k > len(items) {
		return nil, fmt.Errorf("sample size %d out of range for %d items", k, len(items))
	}
	perm := r.Perm(len(items))
	if len(perm) != len(items) {
		return nil, fmt.Errorf("permutation has %d entries, want %d", len(perm), len(items))
	}
	out := make([]string, 0, k)
	for _, idx := range perm[:k] {
		if idx < 0 || idx >= len(items) {
			return nil, fmt.Errorf("permutation index %d out of range", idx)
		}
		out = append(out, items[idx])
	}
	return out, nil
}
