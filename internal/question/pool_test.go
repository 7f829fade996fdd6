package question

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			ID:         fmt.Sprintf("q%d", i),
			Difficulty: i%3 + 1,
			Answers:    []string{fmt.Sprintf("answer %d", i)},
		}
	}
	return items
}

func seededPool(t *testing.T, items []Item) *Pool {
	t.Helper()
	pool, err := NewPool(ModeSurvival, items, WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)
	return pool
}

func TestPoolDrawExhaustsAfterN(t *testing.T) {
	const n = 7
	pool := seededPool(t, sampleItems(n))

	seen := map[string]bool{}
	for k := 1; k <= n; k++ {
		item, ok := pool.Draw(nil)
		require.True(t, ok, "draw %d", k)
		assert.False(t, seen[item.ID], "item %s drawn twice", item.ID)
		seen[item.ID] = true
		assert.Equal(t, n-k, pool.RemainingCount(nil))
	}

	_, ok := pool.Draw(nil)
	assert.False(t, ok, "pool should be exhausted")
	assert.Equal(t, 0, pool.RemainingCount(nil))
	_, ok = pool.Draw(nil)
	assert.False(t, ok, "exhaustion is stable")

	pool.Reset()
	assert.Equal(t, n, pool.RemainingCount(nil))
	assert.Equal(t, 0, pool.UsedCount())
	_, ok = pool.Draw(nil)
	assert.True(t, ok)
}

func TestPoolThreeDrawsAreDistinct(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		pool, err := NewPool(ModeSurvival, sampleItems(3), WithRand(rand.New(rand.NewPCG(seed, seed))))
		require.NoError(t, err)

		ids := map[string]struct{}{}
		for i := 0; i < 3; i++ {
			item, ok := pool.Draw(nil)
			require.True(t, ok)
			ids[item.ID] = struct{}{}
		}
		assert.Len(t, ids, 3, "seed %d", seed)
	}
}

func TestPoolDrawWithFilter(t *testing.T) {
	pool := seededPool(t, sampleItems(9))
	level2 := ByDifficulty(2)

	assert.Equal(t, 3, pool.RemainingCount(level2))
	for i := 0; i < 3; i++ {
		item, ok := pool.Draw(level2)
		require.True(t, ok)
		assert.Equal(t, 2, item.Difficulty)
	}
	_, ok := pool.Draw(level2)
	assert.False(t, ok)
	assert.Equal(t, 0, pool.RemainingCount(level2))

	// Other tiers are untouched.
	assert.Equal(t, 3, pool.RemainingCount(ByDifficulty(1)))
	assert.Equal(t, 6, pool.RemainingCount(nil))
}

func TestPoolRemainingCountAfterKDraws(t *testing.T) {
	pool := seededPool(t, sampleItems(20))
	for k := 0; k < 12; k++ {
		_, ok := pool.Draw(nil)
		require.True(t, ok)
	}
	assert.Equal(t, 20-12, pool.RemainingCount(nil))
	assert.Equal(t, 12, pool.UsedCount())
	assert.Equal(t, 20, pool.Size())
}

func TestPoolEmpty(t *testing.T) {
	pool := seededPool(t, nil)
	_, ok := pool.Draw(nil)
	assert.False(t, ok)
	assert.Equal(t, 0, pool.RemainingCount(nil))
}

func TestPoolRejectsDuplicateIDs(t *testing.T) {
	items := []Item{{ID: "a"}, {ID: "b"}, {ID: "a"}}
	_, err := NewPool(ModeAuctions, items)
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = NewPool(ModeAuctions, []Item{{ID: ""}})
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestPoolDoesNotAliasInput(t *testing.T) {
	items := sampleItems(2)
	pool := seededPool(t, items)
	items[0].ID = "mutated"

	for _, it := range pool.Items(nil) {
		assert.NotEqual(t, "mutated", it.ID)
	}
}

func TestPoolDrawIsRoughlyUniform(t *testing.T) {
	pool := seededPool(t, sampleItems(3))
	counts := map[string]int{}
	const rounds = 3000
	for i := 0; i < rounds; i++ {
		item, ok := pool.Draw(nil)
		require.True(t, ok)
		counts[item.ID]++
		pool.Reset()
	}
	for id, c := range counts {
		assert.InDelta(t, rounds/3, c, 150, "item %s", id)
	}
	assert.Len(t, counts, 3)
}

func TestPoolConcurrentDrawsNeverDuplicate(t *testing.T) {
	const n = 200
	pool, err := NewPool(ModeMercato, sampleItems(n))
	require.NoError(t, err)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = map[string]int{}
	)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				item, ok := pool.Draw(nil)
				if !ok {
					return
				}
				mu.Lock()
				ids[item.ID]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ids, n)
	for id, c := range ids {
		assert.Equal(t, 1, c, "item %s", id)
	}
	assert.Equal(t, 0, pool.RemainingCount(nil))
}
