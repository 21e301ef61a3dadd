package searcher

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// captureLog collects the JSON lines logged while fn runs.
func captureLog(t *testing.T, fn func()) []map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger, level := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	}()

	fn()

	var entries []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestSearchLogging(t *testing.T) {
	t.Run("minimax counts nodes without metrics", func(t *testing.T) {
		entries := captureLog(t, func() {
			NewMinimax(WithDepth(3)).FindNextMove(newState(t))
		})

		require.Len(t, entries, 1)
		require.Equal(t, "minimax-move", entries[0]["message"])
		require.Positive(t, entries[0]["nodes"].(float64))
		require.Positive(t, entries[0]["cutoffs"].(float64))
	})

	t.Run("mcts counts nodes without metrics", func(t *testing.T) {
		entries := captureLog(t, func() {
			NewMCTS(WithEpisodes(50), WithSeed(2)).FindNextMove(newState(t))
		})

		require.Len(t, entries, 1)
		require.Equal(t, "mcts-move", entries[0]["message"])
		require.Equal(t, float64(50), entries[0]["episodes"])
		require.GreaterOrEqual(t, entries[0]["nodes"].(float64), float64(7))
	})
}
