package searcher

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"fmt"
	"math"
)

// Hyperparameters

const DefaultDepth = 3 // Minimax plies searched below each root move

const DefaultExploration = 1.5 // UCB1 exploration constant

const WIN = 1.0 // Credit for a won rollout

// Searcher picks a column for the side to move. Implementations leave state unmodified and
// panic when called on a finished game.
type Searcher interface {
	FindNextMove(state *game.ConnectFour) int
	Search(state *game.ConnectFour) (int, metrics.SearchMetric)
}

func ucb1(wins float64, visits int, parentVisits int, exploration float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	n := float64(visits)
	return wins/n + exploration*math.Sqrt(math.Log(float64(parentVisits))/n)
}

// mustPlay applies a self-derived legal move. Failing to do so is a bug in the caller.
func mustPlay(state *game.ConnectFour, column int) {
	if err := state.Play(column); err != nil {
		panic(fmt.Sprintf("cannot play column %d: %v", column, err))
	}
}

func mustNotBeOver(state *game.ConnectFour) {
	if state.IsGameOver() {
		panic("cannot search a finished game")
	}
}
