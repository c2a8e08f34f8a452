package domain

// Source column names. Columns with more than one accepted spelling list the
// preferred header first.
var (
	ColumnRegion               = []string{"Region"}
	ColumnMainIsland           = []string{"MainIsland"}
	ColumnProvince             = []string{"Province"}
	ColumnContractor           = []string{"Contractor", "ContractorName"}
	ColumnTypeOfWork           = []string{"TypeOfWork"}
	ColumnFundingYear          = []string{"FundingYear"}
	ColumnApprovedBudget       = []string{"ApprovedBudgetForContract", "ApprovedBudget"}
	ColumnContractCost         = []string{"ContractCost", "ContractCostNum"}
	ColumnStartDate            = []string{"StartDate"}
	ColumnActualCompletionDate = []string{"ActualCompletionDate"}
)

// RequiredColumns lists every column a source file must provide.
// Province is optional.
var RequiredColumns = [][]string{
	ColumnRegion,
	ColumnMainIsland,
	ColumnContractor,
	ColumnTypeOfWork,
	ColumnFundingYear,
	ColumnApprovedBudget,
	ColumnContractCost,
	ColumnStartDate,
	ColumnActualCompletionDate,
}

// Report column orders
var (
	RegionalColumns = []string{
		"Region", "MainIsland", "TotalBudget", "MedianSavings",
		"AvgDelay", "HighDelayPct", "EfficiencyScore",
	}
	ContractorColumns = []string{
		"Rank", "Contractor", "TotalCost", "NumProjects",
		"AvgDelay", "TotalSavings", "ReliabilityIndex", "RiskFlag",
	}
	TrendColumns = []string{
		"FundingYear", "TypeOfWork", "TotalProjects",
		"AvgSavings", "OverrunRate", "YoYChangePercent",
	}
	CleanedColumns = []string{
		"Region", "MainIsland", "Province", "Contractor", "TypeOfWork",
		"FundingYear", "ApprovedBudget", "ContractCostNum", "StartDate",
		"ActualCompletionDate", "CostSavings", "CompletionDelayDays",
	}
)

// HasColumn reports whether headers contain any spelling of column
func HasColumn(headers []string, column []string) bool {
	for _, h := range headers {
		for _, name := range column {
			if h == name {
				return true
			}
		}
	}
	return false
}
