package question

import (
	"math/rand/v2"
	"slices"
	"sync"
)

// Pool draws the items of one mode without replacement. The item list never
// changes after construction; the used set grows by one id per draw until
// Reset.
type Pool struct {
	mode  Mode
	items []Item

	mu   sync.Mutex
	used map[string]struct{}
	rng  *rand.Rand
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithRand sets the random source used to pick among candidates. The Pool
// serializes access, so the source must not be shared with other pools.
func WithRand(r *rand.Rand) PoolOption {
	return func(p *Pool) {
		if r != nil {
			p.rng = r
		}
	}
}

// NewPool builds a pool over a copy of items. Ids must be unique.
func NewPool(mode Mode, items []Item, opts ...PoolOption) (*Pool, error) {
	if err := checkIDs(mode, items); err != nil {
		return nil, err
	}
	p := &Pool{
		mode:  mode,
		items: slices.Clone(items),
		used:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return p, nil
}

// Mode returns the mode this pool serves.
func (p *Pool) Mode() Mode {
	return p.mode
}

// Draw picks a uniformly random unused item matching filter and marks it used.
// ok is false when no candidate is left; Reset makes the pool drawable again.
func (p *Pool) Draw(filter Filter) (item Item, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	candidates := make([]int, 0, len(p.items)-len(p.used))
	for i, it := range p.items {
		if _, used := p.used[it.ID]; used {
			continue
		}
		if filter.match(it) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return Item{}, false
	}

	picked := p.items[candidates[p.rng.IntN(len(candidates))]]
	p.used[picked.ID] = struct{}{}
	return picked, true
}

// Reset forgets every drawn item.
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.used)
}

// RemainingCount returns how many items matching filter are still unused.
func (p *Pool) RemainingCount(filter Filter) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if filter == nil {
		return len(p.items) - len(p.used)
	}
	remaining := 0
	for _, it := range p.items {
		if _, used := p.used[it.ID]; !used && filter(it) {
			remaining++
		}
	}
	return remaining
}

// UsedCount returns how many items have been drawn since the last Reset.
func (p *Pool) UsedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.used)
}

// Size returns the total number of items.
func (p *Pool) Size() int {
	return len(p.items)
}

// Items returns copies of the items matching filter, used or not.
func (p *Pool) Items(filter Filter) []Item {
	out := make([]Item, 0, len(p.items))
	for _, it := range p.items {
		if filter.match(it) {
			out = append(out, it)
		}
	}
	return out
}
