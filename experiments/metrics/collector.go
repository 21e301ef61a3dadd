package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm string
	Duration  time.Duration
	Episodes  int // MCTS iterations
	Nodes     int // Tree nodes created (MCTS) or positions evaluated (minimax)
	Cutoffs   int // Alpha-beta prunes
	MaxDepth  int
}

type MoveMetric struct {
	Step   int
	Disc   string
	Column int
	SearchMetric
}

type GameMetric struct {
	StartingDisc string
	Winner       string // "" on a draw
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

type Collector interface {
	Start(algorithm string)
	AddEpisode()
	AddNodes(n int)
	AddCutoff()
	ReachDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	algorithm string
	startTime time.Time
	episodes  atomic.Int64
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	maxDepth  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string) {
	m.algorithm = algorithm
	m.startTime = time.Now()
	m.episodes.Store(0)
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int64(n))
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) ReachDepth(depth int) {
	for {
		current := m.maxDepth.Load()
		if int64(depth) <= current || m.maxDepth.CompareAndSwap(current, int64(depth)) {
			return
		}
	}
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Duration:  time.Since(m.startTime),
		Episodes:  int(m.episodes.Load()),
		Nodes:     int(m.nodes.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		MaxDepth:  int(m.maxDepth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string) {}
func (m *dummyCollector) AddEpisode()            {}
func (m *dummyCollector) AddNodes(n int)         {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) ReachDepth(depth int)   {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
