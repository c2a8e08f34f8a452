package domain

import (
	"time"
)

// RegionSummary is one row of the regional efficiency report
type RegionSummary struct {
	Region          string  `json:"region"`
	MainIsland      string  `json:"main_island"`
	TotalBudget     float64 `json:"total_budget"`
	MedianSavings   float64 `json:"median_savings"`
	AvgDelay        float64 `json:"avg_delay"`
	HighDelayPct    float64 `json:"high_delay_pct"`
	RawEfficiency   float64 `json:"-"`
	EfficiencyScore float64 `json:"efficiency_score"`
}

// ContractorSummary is one row of the contractor reliability ranking
type ContractorSummary struct {
	Rank             int     `json:"rank"`
	Contractor       string  `json:"contractor"`
	TotalCost        float64 `json:"total_cost"`
	NumProjects      int     `json:"num_projects"`
	AvgDelay         float64 `json:"avg_delay"`
	TotalSavings     float64 `json:"total_savings"`
	ReliabilityIndex float64 `json:"reliability_index"`
	RiskFlag         string  `json:"risk_flag"`
}

// Risk flags assigned from the reliability index
const (
	RiskFlagHigh = "High Risk"
	RiskFlagLow  = "Low Risk"
)

// AnnualTrend is one row of the annual project-type trend report
type AnnualTrend struct {
	FundingYear      int     `json:"funding_year"`
	TypeOfWork       string  `json:"type_of_work"`
	TotalProjects    int     `json:"total_projects"`
	AvgSavings       float64 `json:"avg_savings"`
	OverrunRate      float64 `json:"overrun_rate"`
	YoYChangePercent float64 `json:"yoy_change_percent"`
}

// Summary is the dataset-wide record written to summary.json
type Summary struct {
	TotalProjects    int     `json:"TotalProjects"`
	TotalContractors int     `json:"TotalContractors"`
	TotalProvinces   *int    `json:"TotalProvinces,omitempty"`
	GlobalAvgDelay   float64 `json:"GlobalAvgDelay"`
	TotalSavings     float64 `json:"TotalSavings"`
}

// ReportSet holds everything one Generate call produced
type ReportSet struct {
	Regional    []RegionSummary     `json:"regional"`
	Contractors []ContractorSummary `json:"contractors"`
	Trends      []AnnualTrend       `json:"trends"`
	Summary     Summary             `json:"summary"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// ReportFormat defines the format of a written artifact
type ReportFormat string

const (
	ReportFormatCSV     ReportFormat = "csv"
	ReportFormatJSON    ReportFormat = "json"
	ReportFormatExcel   ReportFormat = "excel"
	ReportFormatPNG     ReportFormat = "png"
	ReportFormatMetrics ReportFormat = "metrics"
)

// Artifact describes a file written by a Generate or Load call
type Artifact struct {
	Name   string       `json:"name"`
	Format ReportFormat `json:"format"`
	Path   string       `json:"path"`
	Rows   int          `json:"rows"`
}
