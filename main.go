package main

import (
	"connectfour/experiments"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/gamemaster"
	"connectfour/meta"
	"connectfour/player"
	"connectfour/searcher"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play, match or experiment")
	opponent := flag.String("opponent", gamemaster.Minimax, "AI opponent in play mode: minimax or mcts")
	human := flag.String("human", "red", "Disc played by the human: red or yellow")
	depth := flag.Int("depth", searcher.DefaultDepth, "Minimax plies searched below each root move")
	duration := flag.Duration("duration", time.Second, "MCTS time budget per move")
	exploration := flag.Float64("exploration", searcher.DefaultExploration, "MCTS exploration constant")
	episodes := flag.Int("episodes", 0, "MCTS episodes per move, overrides -duration when set")
	seed := flag.Uint64("seed", 0, "MCTS random seed, time based when 0")
	games := flag.Int("games", meta.NUM_GAMES, "Games per matchup")
	out := flag.String("out", meta.EXPERIMENTS_DIR, "Directory for experiment results")
	debug := flag.Bool("debug", false, "Log search details")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	minimax := metrics.AgentConfig{ID: 1, Algorithm: metrics.Minimax, Depth: *depth}
	mcts := metrics.AgentConfig{
		ID:          2,
		Algorithm:   metrics.MCTS,
		Duration:    *duration,
		Episodes:    *episodes,
		Exploration: *exploration,
		Seed:        *seed,
	}

	switch *mode {
	case "play":
		disc := game.Red
		if *human == "yellow" {
			disc = game.Yellow
		}
		gm := gamemaster.NewGameMaster(map[string]searcher.Searcher{
			gamemaster.Minimax: experiments.NewAgent(minimax),
			gamemaster.MCTS:    experiments.NewAgent(mcts),
		})
		// The terminal belongs to the UI
		if !*debug {
			zerolog.SetGlobalLevel(zerolog.Disabled)
		}
		if err := player.Run(gm, *opponent, disc); err != nil {
			log.Fatal().Err(err).Msg("terminal UI failed")
		}
	case "match":
		configs := []metrics.AgentConfig{minimax, mcts}
		dir, err := experiments.RunExperiment(*out, "match", configs, [][]metrics.AgentConfig{configs}, *games)
		if err != nil {
			log.Fatal().Err(err).Msg("match failed")
		}
		log.Info().Str("dir", dir).Msg("match results written")
	case "experiment":
		dir, err := experiments.RunStrengthExperiment(*out, *games)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		log.Info().Str("dir", dir).Msg("experiment results written")
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
