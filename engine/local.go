package engine

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/meta"
	"connectfour/searcher"
	"connectfour/utils"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Engine pits two searchers against each other, Agents[0] playing Red.
type Engine struct {
	State  *game.ConnectFour
	Agents [2]searcher.Searcher
}

var _ Runner = (*Engine)(nil)

func LocalEngine(red, yellow searcher.Searcher) *Engine {
	if red == nil || yellow == nil {
		panic("need two agents")
	}
	return &Engine{
		State:  game.NewConnectFour(),
		Agents: [2]searcher.Searcher{red, yellow},
	}
}

func (e *Engine) agentFor(disc game.Disc) searcher.Searcher {
	if disc == game.Red {
		return e.Agents[0]
	}
	return e.Agents[1]
}

// Run executes the game loop until the game is over.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingDisc: e.State.NextDisc().String(),
		StartTime:    time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.State.NextDisc())

	for turn := 1; !e.State.IsGameOver() && turn <= meta.MAX_TURNS; turn++ {
		disc := e.State.NextDisc()

		// Agents search a copy so they cannot corrupt the live game
		column, searchMetric := e.agentFor(disc).Search(e.State.Clone())

		free := e.State.FreeColumns()
		if utils.FindIndex(free, column) < 0 {
			log.Warn().Msgf("%s returned illegal column %d => forcing column %d", disc, column, free[0])
			column = free[0]
		}

		if err := e.State.Play(column); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("turn %d: %s playing column %d: %w", turn, disc, column, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Disc:         disc.String(),
			Column:       column,
			SearchMetric: searchMetric,
		})

		log.Debug().Int("turn", turn).Str("disc", disc.String()).Int("column", column).Msg("played")
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.Turns()
	if winner, ok := e.State.Winner(); ok {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("game ended with a winner: %s", winner)
	} else {
		log.Info().Msg("game ended in a draw")
	}

	return gameMetric, moveMetrics, nil
}
