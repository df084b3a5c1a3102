package metrics

import (
	"sync/atomic"
	"time"

	"g2048/game"
)

type SearchMetric struct {
	Budget       time.Duration
	MaxDepth     int
	Duration     time.Duration
	Iterations   int // Depth limits attempted, including one cut short
	DepthReached int // Deepest depth limit whose move was kept, -1 if none
	Nodes        int
	Leaves       int
	Cutoffs      int
	TimedOut     bool
}

type MoveMetric struct {
	Step int
	Move game.Move
	SearchMetric
}

type GameMetric struct {
	Seed       uint64
	Score      int
	MaxTile    int
	TotalMoves int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

type Collector interface {
	Start(budget time.Duration, maxDepth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	CompleteIteration(depth int)
	SetTimedOut()
	Complete() SearchMetric
}

type collector struct {
	budget       time.Duration
	maxDepth     int
	startTime    time.Time
	iterations   atomic.Int32
	depthReached atomic.Int32
	nodes        atomic.Int64
	leaves       atomic.Int64
	cutoffs      atomic.Int64
	timedOut     atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new decision.
func (m *collector) Start(budget time.Duration, maxDepth int) {
	m.startTime = time.Now()
	m.budget = budget
	m.maxDepth = maxDepth
	m.iterations.Store(0)
	m.depthReached.Store(-1)
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.timedOut.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) CompleteIteration(depth int) {
	m.iterations.Add(1)
	if depth >= 0 {
		m.depthReached.Store(int32(depth))
	}
}

func (m *collector) SetTimedOut() {
	m.timedOut.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Budget:       m.budget,
		MaxDepth:     m.maxDepth,
		Duration:     time.Since(m.startTime),
		Iterations:   int(m.iterations.Load()),
		DepthReached: int(m.depthReached.Load()),
		Nodes:        int(m.nodes.Load()),
		Leaves:       int(m.leaves.Load()),
		Cutoffs:      int(m.cutoffs.Load()),
		TimedOut:     m.timedOut.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(budget time.Duration, maxDepth int) {}
func (m *dummyCollector) AddNode()                                 {}
func (m *dummyCollector) AddLeaf()                                 {}
func (m *dummyCollector) AddCutoff()                               {}
func (m *dummyCollector) CompleteIteration(depth int)              {}
func (m *dummyCollector) SetTimedOut()                             {}
func (m *dummyCollector) Complete() SearchMetric                   { return SearchMetric{DepthReached: -1} }
