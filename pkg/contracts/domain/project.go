package domain

import (
	"time"
)

// RawRow maps header names to raw string fields for a single CSV line
type RawRow map[string]string

// Get returns the value for the first of names present in the row
func (r RawRow) Get(names ...string) (string, bool) {
	for _, name := range names {
		if v, ok := r[name]; ok {
			return v, true
		}
	}
	return "", false
}

// ProjectRecord is a validated flood-control project row with derived fields
type ProjectRecord struct {
	Region               string    `json:"region"`
	MainIsland           string    `json:"main_island"`
	Province             string    `json:"province,omitempty"`
	Contractor           string    `json:"contractor"`
	TypeOfWork           string    `json:"type_of_work"`
	FundingYear          int       `json:"funding_year" validate:"gt=0"`
	ApprovedBudget       float64   `json:"approved_budget"`
	ContractCostNum      float64   `json:"contract_cost"`
	StartDate            time.Time `json:"start_date"`
	ActualCompletionDate time.Time `json:"actual_completion_date"`

	// Derived fields
	CostSavings         float64 `json:"cost_savings"`
	CompletionDelayDays int     `json:"completion_delay_days"`
}

// IsOverrun reports whether the contract cost exceeded the approved budget
func (p ProjectRecord) IsOverrun() bool {
	return p.CostSavings < 0
}

// ProjectDataset is the filtered result of one Load. It is never mutated after
// construction; a later Load replaces it entirely.
type ProjectDataset struct {
	Records     []ProjectRecord `json:"records"`
	HasProvince bool            `json:"has_province"`
	SourcePath  string          `json:"source_path"`
	LoadedAt    time.Time       `json:"loaded_at"`
}

// Len returns the number of retained records
func (d *ProjectDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// IsEmpty reports whether the dataset holds no records
func (d *ProjectDataset) IsEmpty() bool {
	return d.Len() == 0
}

// LoadStats counts the rows seen during a Load
type LoadStats struct {
	RowsRead           int `json:"rows_read"`
	RowsRetained       int `json:"rows_retained"`
	ParseRejected      int `json:"parse_rejected"`
	ValidationRejected int `json:"validation_rejected"`
}

// Skipped returns the number of rows dropped for any reason
func (s LoadStats) Skipped() int {
	return s.ParseRejected + s.ValidationRejected
}
