package experiments

import (
	"fmt"
	"os"
	"time"

	"g2048/experiments/metrics"
	"g2048/game"
	"g2048/searcher"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type configFile struct {
	Agents []metrics.AgentConfig `yaml:"agents"`
}

// DefaultConfigs compares the search at a few time budgets against a random baseline.
func DefaultConfigs() []metrics.AgentConfig {
	return []metrics.AgentConfig{
		{ID: 1, Name: "random", Kind: metrics.RandomAgent},
		{ID: 2, Name: "expectimax-10ms", Kind: metrics.ExpectimaxAgent, Budget: 10 * time.Millisecond, MaxDepth: searcher.MaxDepth, Evaluate: metrics.WeightedEvaluation},
		{ID: 3, Name: "expectimax-50ms", Kind: metrics.ExpectimaxAgent, Budget: 50 * time.Millisecond, MaxDepth: searcher.MaxDepth, Evaluate: metrics.WeightedEvaluation},
		{ID: 4, Name: "expectimax-150ms", Kind: metrics.ExpectimaxAgent, Budget: searcher.DefaultBudget, MaxDepth: searcher.MaxDepth, Evaluate: metrics.WeightedEvaluation},
		{ID: 5, Name: "emptiness-50ms", Kind: metrics.ExpectimaxAgent, Budget: 50 * time.Millisecond, MaxDepth: searcher.MaxDepth, Evaluate: metrics.EmptinessEvaluation},
	}
}

// LoadConfigs reads agent configs from a YAML file with a top-level agents list.
func LoadConfigs(path string) ([]metrics.AgentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read agent configs: %w", err)
	}

	var file configFile
	err = yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse agent configs: %w", err)
	}

	configs := lo.Map(file.Agents, func(config metrics.AgentConfig, _ int) metrics.AgentConfig {
		return withDefaults(config)
	})
	err = validate(configs)
	if err != nil {
		return nil, err
	}
	return configs, nil
}

func withDefaults(config metrics.AgentConfig) metrics.AgentConfig {
	if config.Kind != metrics.ExpectimaxAgent {
		return config
	}
	if config.Budget <= 0 {
		config.Budget = searcher.DefaultBudget
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = searcher.MaxDepth
	}
	if config.Evaluate == "" {
		config.Evaluate = metrics.WeightedEvaluation
	}
	return config
}

func validate(configs []metrics.AgentConfig) error {
	if len(configs) == 0 {
		return fmt.Errorf("no agent configs")
	}
	if dup := lo.FindDuplicatesBy(configs, func(c metrics.AgentConfig) int { return c.ID }); len(dup) > 0 {
		return fmt.Errorf("duplicate agent config id %d", dup[0].ID)
	}
	for _, config := range configs {
		switch config.Kind {
		case metrics.RandomAgent:
		case metrics.ExpectimaxAgent:
			if _, err := evaluation(config.Evaluate); err != nil {
				return fmt.Errorf("agent config %d: %w", config.ID, err)
			}
		default:
			return fmt.Errorf("agent config %d: unknown kind %q", config.ID, config.Kind)
		}
	}
	return nil
}

func evaluation(name string) (game.Evaluate, error) {
	switch name {
	case metrics.WeightedEvaluation:
		return game.EvaluateWeighted, nil
	case metrics.EmptinessEvaluation:
		return game.EvaluateEmptiness, nil
	}
	return nil, fmt.Errorf("unknown evaluation %q", name)
}
