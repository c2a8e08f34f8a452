package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ProjectsHeader is the column layout of the public DPWH export
const ProjectsHeader = "Region,MainIsland,Province,ContractorName,TypeOfWork,FundingYear,ApprovedBudgetForContract,ContractCost,StartDate,ActualCompletionDate"

// ProjectsCSV holds 11 data rows: 8 retained records across two regions and
// two contractors (Alpha Builders with 5, Beta Corp with 3), one 2020 row, one
// row with an unparsable budget and one truncated row.
//
// Retained totals: 210 delay days (avg 26.25), 470000.00 savings, 4 provinces.
const ProjectsCSV = "\ufeff" + ProjectsHeader + "\r\n" +
	`NCR,Luzon,Manila,Alpha Builders,Flood Mitigation,2021,"1,000,000.00",900000,2021-01-01,2021-01-11` + "\r\n" +
	`NCR,Luzon,Manila,Alpha Builders,Flood Mitigation,2022,"2,000,000.00","1,800,000.00",2022-02-01,2022-03-03` + "\r\n" +
	`NCR,Luzon,Quezon City,Alpha Builders,Drainage,2022,500000,550000,2022-04-01,2022-05-16` + "\r\n" +
	`Region VII,Visayas,Cebu,Alpha Builders,Flood Mitigation,2023,800000,700000,2023-01-01,2023-01-21` + "\r\n" +
	`Region VII,Visayas,Cebu,Alpha Builders,Drainage,2021,300000,250000,2021-06-01,2021-06-06` + "\r\n" +
	`NCR,Luzon,Manila,Beta Corp,Flood Mitigation,2021,400000,380000,2021-03-01,2021-03-31` + "\r\n" +
	"\r\n" +
	`Region VII,Visayas,Bohol,Beta Corp,Drainage,2023,600000,650000,2023-02-01,2023-04-02` + "\r\n" +
	`Region VII,Visayas,Bohol,Beta Corp,Flood Mitigation,2022,700000,600000,2022-07-01,2022-07-11` + "\r\n" +
	`NCR,Luzon,Manila,Beta Corp,Flood Mitigation,2020,400000,100000,2020-01-01,2020-02-01` + "\r\n" +
	`NCR,Luzon,Manila,Beta Corp,Flood Mitigation,2022,N/A,100,2022-01-01,2022-01-02` + "\r\n" +
	`NCR,Luzon` + "\r\n"

// Expected load counters for ProjectsCSV
const (
	ProjectsRowsRead           = 11
	ProjectsRowsRetained       = 8
	ProjectsParseRejected      = 1
	ProjectsValidationRejected = 2
)

// WriteProjectsCSV writes ProjectsCSV into dir and returns its path
func WriteProjectsCSV(t *testing.T, dir string) string {
	t.Helper()
	return WriteFile(t, dir, "dpwh_flood_control_projects.csv", ProjectsCSV)
}

// WriteFile writes content to dir/name and returns the path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}
