package searcher

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MCTS is a Monte Carlo tree search with UCB1 selection and uniformly random rollouts. The
// tree is rebuilt on every search. An MCTS must not be shared by concurrent searches since
// it owns a single random source.
type MCTS struct {
	duration    time.Duration
	episodes    int
	exploration float64
	rng         *rand.Rand
	metrics     metrics.Collector
	nodes       int // Per search, for logging
}

func NewMCTS(options ...Option) *MCTS {
	s := newSettings(options)
	return &MCTS{
		duration:    s.duration,
		episodes:    s.episodes,
		exploration: s.exploration,
		rng:         s.rng,
		metrics:     s.metrics,
	}
}

func (m *MCTS) FindNextMove(state *game.ConnectFour) int {
	move, _ := m.Search(state)
	return move
}

func (m *MCTS) Search(state *game.ConnectFour) (int, metrics.SearchMetric) {
	mustNotBeOver(state)
	m.metrics.Start(metrics.MCTS)
	m.nodes = 0

	root := newNode(state.Clone(), -1, nil)
	if m.episodes > 0 {
		m.iterate(root)
	} else {
		m.countdown(root)
	}

	move := root.findBestMove()
	metric := m.metrics.Complete()
	log.Debug().
		Str("disc", root.player.String()).
		Int("column", move).
		Int("episodes", root.visits).
		Int("nodes", m.nodes).
		Msg("mcts-move")
	return move, metric
}

func (m *MCTS) iterate(root *node) {
	for i := 0; i < m.episodes; i++ {
		m.simulate(root)
	}
}

// countdown runs at least one iteration and checks the budget between iterations only, so the
// last rollout may overrun it.
func (m *MCTS) countdown(root *node) {
	start := time.Now()
	for {
		m.simulate(root)
		if time.Since(start) >= m.duration {
			return
		}
	}
}

func (m *MCTS) simulate(root *node) {
	leaf := selectLeaf(root, m.exploration)
	if !leaf.state.IsGameOver() {
		added := leaf.expand()
		m.nodes += added
		m.metrics.AddNodes(added)
	}
	// Roll out from a random child of a freshly expanded leaf rather than the leaf itself
	if !leaf.isLeaf() {
		leaf = leaf.children[m.rng.Intn(len(leaf.children))]
	}
	winner := rollout(leaf.state, m.rng)
	backup(leaf, winner)

	m.metrics.AddEpisode()
	m.metrics.ReachDepth(leaf.depth())
}

func selectLeaf(root *node, exploration float64) *node {
	current := root
	for !current.isLeaf() {
		current = current.pickChild(exploration)
	}
	return current
}

// rollout plays random moves on a copy of state until the game ends. It returns game.Empty
// on a draw.
func rollout(state *game.ConnectFour, rng *rand.Rand) game.Disc {
	state = state.Clone()
	for !state.IsGameOver() {
		moves := state.FreeColumns()
		mustPlay(state, moves[rng.Intn(len(moves))])
	}
	winner, _ := state.Winner()
	return winner
}

func backup(leaf *node, winner game.Disc) {
	for current := leaf; current != nil; current = current.parent {
		current.visits++
		if winner != game.Empty && current.player == winner {
			current.wins += WIN
		}
	}
}
