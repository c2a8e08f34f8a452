package dataprocessing

import (
	"math"
	"sort"

	"dpwhcli/pkg/contracts/domain"
)

// BuildRegionalReport groups records by (Region, MainIsland) and scores each
// group. Rows are sorted by EfficiencyScore descending, then Region and
// MainIsland ascending.
func BuildRegionalReport(records []domain.ProjectRecord, highDelayDays int) []domain.RegionSummary {
	groups := GroupBy(records, func(r domain.ProjectRecord) []string {
		return []string{r.Region, r.MainIsland}
	})

	rows := make([]domain.RegionSummary, 0, groups.Len())
	for _, g := range groups.All() {
		delays := Project(g.Items, func(r domain.ProjectRecord) float64 { return float64(r.CompletionDelayDays) })
		highDelay := Percentage(g.Items, func(r domain.ProjectRecord) bool {
			return r.CompletionDelayDays > highDelayDays
		})

		row := domain.RegionSummary{
			Region:        g.Parts[0],
			MainIsland:    g.Parts[1],
			TotalBudget:   Sum(Project(g.Items, func(r domain.ProjectRecord) float64 { return r.ApprovedBudget })),
			MedianSavings: Median(Project(g.Items, func(r domain.ProjectRecord) float64 { return r.CostSavings })),
			AvgDelay:      Mean(delays),
			HighDelayPct:  highDelay,
		}
		row.RawEfficiency = RawEfficiency(row.MedianSavings, row.AvgDelay)
		rows = append(rows, row)
	}

	NormalizeEfficiency(rows)

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.EfficiencyScore != b.EfficiencyScore {
			return a.EfficiencyScore > b.EfficiencyScore
		}
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		return a.MainIsland < b.MainIsland
	})

	return rows
}

// RawEfficiency is MedianSavings / AvgDelay x 100, or 0 when AvgDelay is not positive
func RawEfficiency(medianSavings, avgDelay float64) float64 {
	if avgDelay <= 0 {
		return 0
	}
	return medianSavings / avgDelay * 100
}

// NormalizeEfficiency scales every RawEfficiency by the largest one so the
// best region scores 100. Scores are floored at 0; if no region has a positive
// raw value every score is 0.
func NormalizeEfficiency(rows []domain.RegionSummary) {
	maxRaw := math.Inf(-1)
	for _, r := range rows {
		if r.RawEfficiency > maxRaw {
			maxRaw = r.RawEfficiency
		}
	}

	for i := range rows {
		if maxRaw <= 0 {
			rows[i].EfficiencyScore = 0
			continue
		}
		rows[i].EfficiencyScore = clamp(rows[i].RawEfficiency/maxRaw*100, 0, 100)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
