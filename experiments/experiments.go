package experiments

import (
	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/searcher"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const TimeBudget = 100 * time.Millisecond

var strengthConfigs = []metrics.AgentConfig{
	{ID: 1, Algorithm: metrics.Minimax, Depth: 2},
	{ID: 2, Algorithm: metrics.Minimax, Depth: searcher.DefaultDepth},
	{ID: 3, Algorithm: metrics.Minimax, Depth: 5},
	{ID: 4, Algorithm: metrics.MCTS, Duration: TimeBudget, Exploration: searcher.DefaultExploration},
	{ID: 5, Algorithm: metrics.MCTS, Duration: TimeBudget, Exploration: 0.5},
}

// RunStrengthExperiment pairs every minimax config against every MCTS config.
func RunStrengthExperiment(root string, games int) (string, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, a := range strengthConfigs {
		for _, b := range strengthConfigs {
			if a.Algorithm == metrics.Minimax && b.Algorithm == metrics.MCTS {
				matchUps = append(matchUps, []metrics.AgentConfig{a, b})
			}
		}
	}

	return RunExperiment(root, "strength", strengthConfigs, matchUps, games)
}

// RunExperiment plays games per matchup, alternating which agent plays Red, and stores the
// results under root. It returns the directory the results were written to.
func RunExperiment(root, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, games int) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < games; i++ {
			red, yellow := matchup[0], matchup[1]
			if i%2 == 1 {
				red, yellow = yellow, red
			}

			var e engine.Runner = engine.LocalEngine(NewAgent(red), NewAgent(yellow))
			gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Red:        red.ID,
				Yellow:     yellow.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// NewAgent builds the searcher described by config, collecting metrics.
func NewAgent(config metrics.AgentConfig) searcher.Searcher {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.Seed > 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}

	switch config.Algorithm {
	case metrics.Minimax:
		return searcher.NewMinimax(options...)
	case metrics.MCTS:
		return searcher.NewMCTS(options...)
	default:
		panic(fmt.Sprintf("unknown algorithm %q", config.Algorithm))
	}
}
