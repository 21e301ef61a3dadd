package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start(MCTS)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(depth int) {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddEpisode()
					c.AddNodes(2)
				}
				c.ReachDepth(depth)
			}(i)
		}
		wg.Wait()
		c.AddCutoff()

		got := c.Complete()
		require.Equal(t, MCTS, got.Algorithm)
		require.Equal(t, 800, got.Episodes)
		require.Equal(t, 1600, got.Nodes)
		require.Equal(t, 1, got.Cutoffs)
		require.Equal(t, 7, got.MaxDepth, "Should keep the deepest depth reached")
		require.Positive(t, got.Duration)
	})

	t.Run("restarting clears counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(Minimax)
		c.AddNodes(10)
		c.AddCutoff()

		c.Start(Minimax)

		got := c.Complete()
		require.Zero(t, got.Nodes)
		require.Zero(t, got.Cutoffs)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(MCTS)
		c.AddEpisode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
