package searcher

import (
	"connectfour/experiments/metrics"
	"connectfour/game"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(s *settings)

// settings are shared by both searchers, each reading the fields it needs.
type settings struct {
	depth       int
	evaluate    game.Evaluate
	duration    time.Duration
	episodes    int
	exploration float64
	rng         *rand.Rand
	metrics     metrics.Collector
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		depth:       DefaultDepth,
		evaluate:    game.EvaluateLines,
		duration:    time.Second,
		exploration: DefaultExploration,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithDuration sets the deliberation time of each MCTS search.
func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

// WithEpisodes runs a fixed number of MCTS iterations instead of a timed search.
func WithEpisodes(episodes int) Option {
	return func(s *settings) {
		if episodes > 0 {
			s.episodes = episodes
		}
	}
}

func WithExploration(exploration float64) Option {
	return func(s *settings) {
		if exploration >= 0 {
			s.exploration = exploration
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}
