package searcher

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"math"

	"github.com/rs/zerolog/log"
)

// Minimax is a depth-limited alpha-beta search over a static evaluation. It explores the
// tree by playing and undoing moves on the state it is given.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
	nodes    int // Per search, for logging
	cutoffs  int
}

func NewMinimax(options ...Option) *Minimax {
	s := newSettings(options)
	return &Minimax{
		depth:    s.depth,
		evaluate: s.evaluate,
		metrics:  s.metrics,
	}
}

func (m *Minimax) FindNextMove(state *game.ConnectFour) int {
	move, _ := m.Search(state)
	return move
}

// Search returns the first column, in ascending order, reaching the best score.
func (m *Minimax) Search(state *game.ConnectFour) (int, metrics.SearchMetric) {
	mustNotBeOver(state)
	m.metrics.Start(metrics.Minimax)
	m.nodes, m.cutoffs = 0, 0

	disc := state.NextDisc()
	bestMove := -1
	bestScore := math.Inf(-1)
	for _, column := range state.FreeColumns() {
		score := withMove(state, column, func() float64 {
			return m.minimax(state, disc, false, m.depth, math.Inf(-1), math.Inf(1))
		})
		if score > bestScore {
			bestMove = column
			bestScore = score
		}
	}

	metric := m.metrics.Complete()
	log.Debug().
		Str("disc", disc.String()).
		Int("column", bestMove).
		Float64("score", bestScore).
		Int("nodes", m.nodes).
		Int("cutoffs", m.cutoffs).
		Msg("minimax-move")
	return bestMove, metric
}

func (m *Minimax) minimax(state *game.ConnectFour, disc game.Disc, maximizing bool, depth int, alpha, beta float64) float64 {
	m.nodes++
	m.metrics.AddNodes(1)
	m.metrics.ReachDepth(m.depth - depth)

	if depth <= 0 || state.IsGameOver() {
		return m.evaluate(state, disc)
	}

	if maximizing {
		best := math.Inf(-1)
		for _, column := range state.FreeColumns() {
			score := withMove(state, column, func() float64 {
				return m.minimax(state, disc, false, depth-1, alpha, beta)
			})
			best = math.Max(best, score)
			alpha = math.Max(alpha, score)
			if beta <= alpha {
				m.cutoffs++
				m.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, column := range state.FreeColumns() {
		score := withMove(state, column, func() float64 {
			return m.minimax(state, disc, true, depth-1, alpha, beta)
		})
		best = math.Min(best, score)
		beta = math.Min(beta, score)
		if beta <= alpha {
			m.cutoffs++
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}

// withMove evaluates fn with column played, undoing the move on every exit path.
func withMove(state *game.ConnectFour, column int, fn func() float64) float64 {
	mustPlay(state, column)
	defer state.Undo()
	return fn()
}
