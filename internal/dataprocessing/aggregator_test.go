package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dpwhcli/pkg/contracts/domain"
)

// rec builds a record with derived fields already filled in
func rec(region, island, contractor, typeOfWork string, year int, budget, cost float64, delay int) domain.ProjectRecord {
	return domain.ProjectRecord{
		Region:              region,
		MainIsland:          island,
		Contractor:          contractor,
		TypeOfWork:          typeOfWork,
		FundingYear:         year,
		ApprovedBudget:      budget,
		ContractCostNum:     cost,
		CostSavings:         budget - cost,
		CompletionDelayDays: delay,
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "even count", values: []float64{1, 2, 3, 4}, want: 2.5},
		{name: "odd count", values: []float64{1, 2, 3}, want: 2},
		{name: "unsorted", values: []float64{9, -1, 4}, want: 4},
		{name: "single", values: []float64{7}, want: 7},
		{name: "empty", values: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(tt.values))
		})
	}

	t.Run("does not reorder input", func(t *testing.T) {
		values := []float64{3, 1, 2}
		Median(values)
		assert.Equal(t, []float64{3, 1, 2}, values)
	})
}

func TestSumMeanCount(t *testing.T) {
	assert.Equal(t, 10.0, Sum([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 2.5, Mean([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 3, Count([]int{1, 2, 3}))
}

func TestPercentage(t *testing.T) {
	isLate := func(d int) bool { return d > 30 }

	assert.Equal(t, 50.0, Percentage([]int{10, 31, 45, 30}, isLate))
	assert.Equal(t, 0.0, Percentage([]int{}, isLate))
	assert.Equal(t, 100.0, Percentage([]int{31}, isLate))
}

func TestGroupBy(t *testing.T) {
	records := []domain.ProjectRecord{
		rec("NCR", "Luzon", "A", "FM", 2021, 10, 5, 1),
		rec("R7", "Visayas", "B", "FM", 2021, 10, 5, 2),
		rec("NCR", "Luzon", "C", "FM", 2021, 10, 5, 3),
		rec("NCR", "Mindanao", "D", "FM", 2021, 10, 5, 4),
	}

	groups := GroupBy(records, func(r domain.ProjectRecord) []string {
		return []string{r.Region, r.MainIsland}
	})

	require.Equal(t, 3, groups.Len())
	all := groups.All()
	assert.Equal(t, []string{"NCR", "Luzon"}, all[0].Parts)
	assert.Equal(t, []string{"R7", "Visayas"}, all[1].Parts)
	assert.Equal(t, []string{"NCR", "Mindanao"}, all[2].Parts)

	ncr := all[0]
	assert.Equal(t, JoinKey("NCR", "Luzon"), ncr.Key)
	require.Len(t, ncr.Items, 2)
	assert.Equal(t, "A", ncr.Items[0].Contractor)
	assert.Equal(t, "C", ncr.Items[1].Contractor)
}

func TestCompositeKeys(t *testing.T) {
	// "a|b"+"c" and "a"+"b|c" must not collide
	k1 := JoinKey("a|b", "c")
	k2 := JoinKey("a", "b|c")
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, "a|b"+KeySeparator+"c", k1)
}

func TestDistinct(t *testing.T) {
	values := []string{"x", "y", "", "x"}
	assert.Equal(t, 2, Distinct(values, func(s string) string { return s }))
}
