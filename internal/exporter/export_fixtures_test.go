package exporter

import (
	"testing"
	"time"

	"dpwhcli/internal/config"
	"dpwhcli/pkg/contracts/domain"
)

func sampleReportSet() *domain.ReportSet {
	provinces := 4
	return &domain.ReportSet{
		Regional: []domain.RegionSummary{
			{Region: "Region VII", MainIsland: "Visayas", TotalBudget: 2400000, MedianSavings: 75000, AvgDelay: 23.75, HighDelayPct: 25, EfficiencyScore: 100},
			{Region: "NCR", MainIsland: "Luzon", TotalBudget: 3900000, MedianSavings: 60000, AvgDelay: 28.75, HighDelayPct: 25, EfficiencyScore: 66.08695},
		},
		Contractors: []domain.ContractorSummary{
			{Rank: 1, Contractor: "Alpha Builders", TotalCost: 4200000, NumProjects: 5, AvgDelay: 22, TotalSavings: 400000, ReliabilityIndex: 7.195767, RiskFlag: domain.RiskFlagHigh},
		},
		Trends: []domain.AnnualTrend{
			{FundingYear: 2021, TypeOfWork: "Flood Mitigation", TotalProjects: 2, AvgSavings: 60000, OverrunRate: 0, YoYChangePercent: 0},
			{FundingYear: 2022, TypeOfWork: "Drainage", TotalProjects: 1, AvgSavings: -50000, OverrunRate: 100, YoYChangePercent: -200},
		},
		Summary: domain.Summary{
			TotalProjects:    8,
			TotalContractors: 2,
			TotalProvinces:   &provinces,
			GlobalAvgDelay:   26.25,
			TotalSavings:     470000,
		},
		GeneratedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func testPaths(t *testing.T) *config.Paths {
	t.Helper()
	cfg := config.Default()
	cfg.Pipeline.OutputDir = t.TempDir()
	return config.NewPaths(cfg)
}
