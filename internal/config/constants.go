package config

// Application constants for the flood-control analysis pipeline
const (
	// Application Info
	AppName   = "Flood Control Data Analysis Pipeline"
	EnvPrefix = "DPWH"

	// Input
	DefaultInputFile = "dpwh_flood_control_projects.csv"
	DefaultOutputDir = "."
	DefaultLogsDir   = "logs"
	DefaultLogFile   = DefaultLogsDir + "/pipeline.log"

	// Output file names (relative to the output directory)
	CleanedDataCSV      = "cleaned_dpwh_flood_control_projects.csv"
	RegionalReportCSV   = "report1_regional_summary.csv"
	ContractorReportCSV = "report2_contractor_ranking.csv"
	TrendsReportCSV     = "report3_annual_trends.csv"
	SummaryJSON         = "summary.json"
	ReportsWorkbook     = "reports.xlsx"
	EfficiencyChartPNG  = "efficiency_scores.png"
	MetricsTextfile     = "pipeline_metrics.prom"

	// Filter and scoring defaults
	DefaultMinYear                 = 2021
	DefaultMaxYear                 = 2023
	DefaultMinContractorProjects   = 5
	DefaultTopContractors          = 15
	DefaultHighDelayDays           = 30
	DefaultReliabilityDelayHorizon = 90.0
	DefaultPreviewRows             = 3

	// MaxMissingColumns is how many trailing optional columns a row may lack
	MaxMissingColumns = 5

	// Report titles shown in the console preview. The contractor title takes
	// the top count and minimum projects; the subtitle takes the year range.
	RegionalReportTitle         = "Regional Flood Mitigation Efficiency Summary"
	ContractorReportTitleFormat = "Top Contractors Performance Ranking (Top %d, >=%d Projects)"
	TrendsReportTitle           = "Annual Project Type Cost Overrun Trends"
	FilteredSubtitleFormat      = "(Filtered: %d-%d Projects)"

	// Shell messages
	MsgLoadFirst  = "Please load the file first (option 1)."
	MsgBadChoice  = "Invalid choice. Please enter 1, 2, or 3."
	MsgGoodbye    = "Thank you for using the Flood Control Data Analysis Pipeline!"
	MsgGenerating = "Generating reports..."
	MsgNotANumber = "Invalid input. Please enter a number."
	MsgMenuPrompt = "Enter your choice: "
	MsgBackPrompt = "Back to Report Selection (Y/N): "
	MsgStale      = "Previously generated reports are out of date. Choose [2] to regenerate."
)
