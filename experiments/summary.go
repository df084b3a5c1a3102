package experiments

import (
	"g2048/experiments/metrics"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Agent       int
	Name        string
	Games       int
	MeanScore   float64
	StdScore    float64 // 0 with fewer than two games
	MeanMaxTile float64
	BestTile    int
	MeanMoves   float64
}

// Summarize aggregates game records per agent config, in config order.
// Configs without records are left out.
func Summarize(configs []metrics.AgentConfig, records []metrics.GameRecord) []Summary {
	byAgent := lo.GroupBy(records, func(r metrics.GameRecord) int { return r.Agent })

	summaries := []Summary{}
	for _, config := range configs {
		games := byAgent[config.ID]
		if len(games) == 0 {
			continue
		}
		scores := lo.Map(games, func(r metrics.GameRecord, _ int) float64 { return float64(r.Score) })
		tiles := lo.Map(games, func(r metrics.GameRecord, _ int) float64 { return float64(r.MaxTile) })
		moves := lo.Map(games, func(r metrics.GameRecord, _ int) float64 { return float64(r.TotalMoves) })

		s := Summary{
			Agent:       config.ID,
			Name:        config.Name,
			Games:       len(games),
			MeanMaxTile: stat.Mean(tiles, nil),
			BestTile:    lo.MaxBy(games, func(a, b metrics.GameRecord) bool { return a.MaxTile > b.MaxTile }).MaxTile,
			MeanMoves:   stat.Mean(moves, nil),
		}
		if len(scores) > 1 {
			s.MeanScore, s.StdScore = stat.MeanStdDev(scores, nil)
		} else {
			s.MeanScore = scores[0]
		}
		summaries = append(summaries, s)
	}
	return summaries
}
