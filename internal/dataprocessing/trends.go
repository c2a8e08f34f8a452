package dataprocessing

import (
	"sort"
	"strconv"

	"dpwhcli/pkg/contracts/domain"
)

// BuildAnnualTrends groups records by (FundingYear, TypeOfWork). Each type's
// baselineYear AvgSavings is the reference for its later years' YoY change.
// Rows are sorted by year ascending, then AvgSavings descending, then TypeOfWork.
func BuildAnnualTrends(records []domain.ProjectRecord, baselineYear int) []domain.AnnualTrend {
	groups := GroupBy(records, func(r domain.ProjectRecord) []string {
		return []string{strconv.Itoa(r.FundingYear), r.TypeOfWork}
	})

	rows := make([]domain.AnnualTrend, 0, groups.Len())
	for _, g := range groups.All() {
		rows = append(rows, domain.AnnualTrend{
			FundingYear:   g.Items[0].FundingYear,
			TypeOfWork:    g.Parts[1],
			TotalProjects: Count(g.Items),
			AvgSavings:    Mean(Project(g.Items, func(r domain.ProjectRecord) float64 { return r.CostSavings })),
			OverrunRate:   Percentage(g.Items, domain.ProjectRecord.IsOverrun),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.FundingYear != b.FundingYear {
			return a.FundingYear < b.FundingYear
		}
		if a.AvgSavings != b.AvgSavings {
			return a.AvgSavings > b.AvgSavings
		}
		return a.TypeOfWork < b.TypeOfWork
	})

	// rows are in ascending year order, so every baseline is captured before it is needed
	baseline := make(map[string]float64)
	for i := range rows {
		row := &rows[i]
		if row.FundingYear == baselineYear {
			if _, seen := baseline[row.TypeOfWork]; !seen {
				baseline[row.TypeOfWork] = row.AvgSavings
			}
			row.YoYChangePercent = 0
			continue
		}
		base, ok := baseline[row.TypeOfWork]
		row.YoYChangePercent = YoYChange(row.AvgSavings, base, ok)
	}

	return rows
}

// YoYChange is the percent change from baseline, 0 without a usable baseline
func YoYChange(avgSavings, baseline float64, hasBaseline bool) float64 {
	if !hasBaseline || baseline == 0 {
		return 0
	}
	return (avgSavings - baseline) / baseline * 100
}
