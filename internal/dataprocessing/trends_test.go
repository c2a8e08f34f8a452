package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dpwhcli/pkg/contracts/domain"
)

func TestBuildAnnualTrends(t *testing.T) {
	records := []domain.ProjectRecord{
		rec("NCR", "Luzon", "A", "Type1", 2022, 250, 100, 0), // savings 150
		rec("NCR", "Luzon", "A", "Type1", 2021, 200, 100, 0), // savings 100
		rec("NCR", "Luzon", "A", "Type2", 2022, 300, 100, 0), // savings 200, no 2021 baseline
		rec("NCR", "Luzon", "A", "Type3", 2021, 100, 100, 0), // savings 0
		rec("NCR", "Luzon", "A", "Type3", 2022, 110, 100, 0), // savings 10, zero baseline
		rec("NCR", "Luzon", "A", "Type1", 2023, 50, 100, 0),  // savings -50
	}

	rows := BuildAnnualTrends(records, 2021)
	require.Len(t, rows, 6)

	type key struct {
		year int
		typ  string
	}
	got := make([]key, len(rows))
	for i, r := range rows {
		got[i] = key{r.FundingYear, r.TypeOfWork}
	}
	assert.Equal(t, []key{
		{2021, "Type1"}, {2021, "Type3"},
		{2022, "Type2"}, {2022, "Type1"}, {2022, "Type3"},
		{2023, "Type1"},
	}, got)

	byKey := make(map[key]domain.AnnualTrend)
	for _, r := range rows {
		byKey[key{r.FundingYear, r.TypeOfWork}] = r
	}

	assert.Equal(t, 0.0, byKey[key{2021, "Type1"}].YoYChangePercent)
	assert.InDelta(t, 50.0, byKey[key{2022, "Type1"}].YoYChangePercent, 1e-9)
	assert.Equal(t, 0.0, byKey[key{2022, "Type2"}].YoYChangePercent)
	assert.Equal(t, 0.0, byKey[key{2022, "Type3"}].YoYChangePercent)
	assert.InDelta(t, -150.0, byKey[key{2023, "Type1"}].YoYChangePercent, 1e-9)

	assert.Equal(t, 100.0, byKey[key{2023, "Type1"}].OverrunRate)
	assert.Equal(t, 0.0, byKey[key{2022, "Type1"}].OverrunRate)
	assert.Equal(t, 1, byKey[key{2022, "Type2"}].TotalProjects)
}

func TestBuildAnnualTrends_AveragesAndOverrun(t *testing.T) {
	records := []domain.ProjectRecord{
		rec("NCR", "Luzon", "A", "Drainage", 2022, 100, 150, 0),
		rec("NCR", "Luzon", "A", "Drainage", 2022, 100, 50, 0),
		rec("NCR", "Luzon", "A", "Drainage", 2022, 100, 70, 0),
		rec("NCR", "Luzon", "A", "Drainage", 2022, 100, 120, 0),
	}

	rows := BuildAnnualTrends(records, 2021)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].TotalProjects)
	assert.InDelta(t, 2.5, rows[0].AvgSavings, 1e-9)
	assert.Equal(t, 50.0, rows[0].OverrunRate)
}

func TestYoYChange(t *testing.T) {
	assert.InDelta(t, 50.0, YoYChange(150, 100, true), 1e-9)
	assert.Equal(t, 0.0, YoYChange(150, 100, false))
	assert.Equal(t, 0.0, YoYChange(150, 0, true))
	assert.InDelta(t, -300.0, YoYChange(-100, 50, true), 1e-9)
}
