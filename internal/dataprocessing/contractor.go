package dataprocessing

import (
	"sort"

	"dpwhcli/pkg/contracts/domain"
)

// ContractorConfig controls which contractors qualify for the ranking
type ContractorConfig struct {
	MinProjects  int
	Top          int
	DelayHorizon float64
}

// BuildContractorRanking groups records by contractor, drops contractors with
// fewer than MinProjects records and ranks the rest by TotalCost descending
// (ties by name). Only the first Top rows are returned, ranked 1..Top.
func BuildContractorRanking(records []domain.ProjectRecord, cfg ContractorConfig) []domain.ContractorSummary {
	groups := GroupBy(records, func(r domain.ProjectRecord) []string {
		return []string{r.Contractor}
	})

	rows := make([]domain.ContractorSummary, 0, groups.Len())
	for _, g := range groups.All() {
		if Count(g.Items) < cfg.MinProjects {
			continue
		}

		row := domain.ContractorSummary{
			Contractor:   g.Parts[0],
			TotalCost:    Sum(Project(g.Items, func(r domain.ProjectRecord) float64 { return r.ContractCostNum })),
			NumProjects:  Count(g.Items),
			AvgDelay:     Mean(Project(g.Items, func(r domain.ProjectRecord) float64 { return float64(r.CompletionDelayDays) })),
			TotalSavings: Sum(Project(g.Items, func(r domain.ProjectRecord) float64 { return r.CostSavings })),
		}
		row.ReliabilityIndex = ReliabilityIndex(row.AvgDelay, row.TotalSavings, row.TotalCost, cfg.DelayHorizon)
		row.RiskFlag = RiskFlag(row.ReliabilityIndex)
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalCost != rows[j].TotalCost {
			return rows[i].TotalCost > rows[j].TotalCost
		}
		return rows[i].Contractor < rows[j].Contractor
	})

	if cfg.Top > 0 && len(rows) > cfg.Top {
		rows = rows[:cfg.Top]
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows
}

// ReliabilityIndex is (1 - avgDelay/horizon) x (totalSavings/totalCost) x 100
// clamped to [0,100]. The savings ratio is 0 when totalCost is 0.
func ReliabilityIndex(avgDelay, totalSavings, totalCost, horizon float64) float64 {
	var ratio float64
	if totalCost != 0 {
		ratio = totalSavings / totalCost
	}
	return ClampIndex((1 - avgDelay/horizon) * ratio * 100)
}

// ClampIndex limits a raw score to [0,100]
func ClampIndex(raw float64) float64 {
	return clamp(raw, 0, 100)
}

// RiskFlag labels indexes below 50 as high risk
func RiskFlag(index float64) string {
	if index < 50 {
		return domain.RiskFlagHigh
	}
	return domain.RiskFlagLow
}
