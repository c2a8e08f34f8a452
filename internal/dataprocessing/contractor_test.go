package dataprocessing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dpwhcli/pkg/contracts/domain"
)

func TestReliabilityIndex(t *testing.T) {
	tests := []struct {
		name         string
		avgDelay     float64
		totalSavings float64
		totalCost    float64
		want         float64
	}{
		{name: "raw 140 clamps to 100", avgDelay: 0, totalSavings: 140, totalCost: 100, want: 100},
		{name: "raw -10 clamps to 0", avgDelay: 0, totalSavings: -10, totalCost: 100, want: 0},
		{name: "zero cost", avgDelay: 10, totalSavings: 50, totalCost: 0, want: 0},
		{name: "half delay half savings", avgDelay: 45, totalSavings: 50, totalCost: 100, want: 25},
		{name: "delay past horizon", avgDelay: 180, totalSavings: 50, totalCost: 100, want: 0},
		{name: "exactly fifty", avgDelay: 0, totalSavings: 50, totalCost: 100, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReliabilityIndex(tt.avgDelay, tt.totalSavings, tt.totalCost, 90)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 100.0, ClampIndex(140))
	assert.Equal(t, 0.0, ClampIndex(-10))
	assert.Equal(t, 42.0, ClampIndex(42))
}

func TestRiskFlag(t *testing.T) {
	assert.Equal(t, domain.RiskFlagHigh, RiskFlag(49.99))
	assert.Equal(t, domain.RiskFlagLow, RiskFlag(50))
	assert.Equal(t, domain.RiskFlagLow, RiskFlag(100))
}

func repeatRecords(contractor string, n int, cost float64) []domain.ProjectRecord {
	out := make([]domain.ProjectRecord, n)
	for i := range out {
		out[i] = rec("NCR", "Luzon", contractor, "FM", 2022, cost*1.1, cost, 9)
	}
	return out
}

func TestBuildContractorRanking(t *testing.T) {
	cfg := ContractorConfig{MinProjects: 5, Top: 15, DelayHorizon: 90}

	var records []domain.ProjectRecord
	records = append(records, repeatRecords("Small", 3, 1_000_000)...)
	records = append(records, repeatRecords("Mid", 5, 100)...)
	records = append(records, repeatRecords("Big", 6, 200)...)

	rows := BuildContractorRanking(records, cfg)
	require.Len(t, rows, 2, "contractors under five projects are dropped")

	assert.Equal(t, "Big", rows[0].Contractor)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 6, rows[0].NumProjects)
	assert.InDelta(t, 1200.0, rows[0].TotalCost, 1e-9)
	assert.InDelta(t, 120.0, rows[0].TotalSavings, 1e-9)
	assert.Equal(t, 9.0, rows[0].AvgDelay)
	// (1 - 9/90) x 0.1 x 100 = 9
	assert.InDelta(t, 9.0, rows[0].ReliabilityIndex, 1e-9)
	assert.Equal(t, domain.RiskFlagHigh, rows[0].RiskFlag)

	assert.Equal(t, "Mid", rows[1].Contractor)
	assert.Equal(t, 2, rows[1].Rank)
}

func TestBuildContractorRanking_TopAndTies(t *testing.T) {
	cfg := ContractorConfig{MinProjects: 1, Top: 15, DelayHorizon: 90}

	var records []domain.ProjectRecord
	for i := 0; i < 20; i++ {
		records = append(records, repeatRecords(fmt.Sprintf("C%02d", i), 1, float64(100+i))...)
	}
	// tie with C19 on cost, sorts before it by name
	records = append(records, repeatRecords("B-tie", 1, 119)...)

	rows := BuildContractorRanking(records, cfg)
	require.Len(t, rows, 15)

	assert.Equal(t, "B-tie", rows[0].Contractor)
	assert.Equal(t, "C19", rows[1].Contractor)
	for i, r := range rows {
		assert.Equal(t, i+1, r.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, rows[i-1].TotalCost, r.TotalCost)
		}
	}
}

func TestBuildContractorRanking_NoneQualify(t *testing.T) {
	rows := BuildContractorRanking(repeatRecords("Solo", 2, 10), ContractorConfig{MinProjects: 5, Top: 15, DelayHorizon: 90})
	assert.Empty(t, rows)
}
