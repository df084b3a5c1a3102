package metrics

import "time"

const (
	ExpectimaxAgent = "expectimax"
	RandomAgent     = "random"

	WeightedEvaluation  = "weighted"
	EmptinessEvaluation = "emptiness"
)

// AgentConfig describes one agent taking part in an experiment.
type AgentConfig struct {
	ID       int           `yaml:"id"`
	Name     string        `yaml:"name"`
	Kind     string        `yaml:"kind"`
	Budget   time.Duration `yaml:"budget"`
	MaxDepth int           `yaml:"max_depth"`
	Evaluate string        `yaml:"evaluate"`
}
