package exporter

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"dpwhcli/internal/config"
	"dpwhcli/pkg/contracts/domain"
)

// PreviewOptions controls what the console preview shows
type PreviewOptions struct {
	Rows           int
	MinYear        int
	MaxYear        int
	TopContractors int
	MinProjects    int
}

// DefaultPreviewOptions returns the options matching the default pipeline config
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptionsFromPipeline(config.Default().Pipeline)
}

// PreviewOptionsFromPipeline derives preview options from the pipeline config
func PreviewOptionsFromPipeline(cfg config.PipelineConfig) PreviewOptions {
	return PreviewOptions{
		Rows:           cfg.PreviewRows,
		MinYear:        cfg.MinYear,
		MaxYear:        cfg.MaxYear,
		TopContractors: cfg.TopContractors,
		MinProjects:    cfg.MinContractorProjects,
	}
}

// Previewer prints the first rows of each report to a console writer.
// Numbers are grouped for readability; the files stay machine-parseable.
type Previewer struct {
	out     io.Writer
	opts    PreviewOptions
	printer *message.Printer
}

// NewPreviewer creates a previewer writing to out
func NewPreviewer(out io.Writer, opts PreviewOptions) *Previewer {
	if opts.Rows <= 0 {
		opts.Rows = config.DefaultPreviewRows
	}
	return &Previewer{
		out:     out,
		opts:    opts,
		printer: message.NewPrinter(language.English),
	}
}

// RenderReports prints the three report previews followed by the summary
func (p *Previewer) RenderReports(set *domain.ReportSet, paths *config.Paths) error {
	subtitle := fmt.Sprintf(config.FilteredSubtitleFormat, p.opts.MinYear, p.opts.MaxYear)

	regional := make([][]string, len(set.Regional))
	for i, r := range set.Regional {
		regional[i] = []string{
			r.Region, r.MainIsland, p.number(r.TotalBudget), p.number(r.MedianSavings),
			p.number(r.AvgDelay), p.number(r.HighDelayPct), p.number(r.EfficiencyScore),
		}
	}
	p.renderTable(1, config.RegionalReportTitle, subtitle, domain.RegionalColumns, regional, paths.RegionalReport)

	contractors := make([][]string, len(set.Contractors))
	for i, r := range set.Contractors {
		contractors[i] = []string{
			formatInt(r.Rank), r.Contractor, p.number(r.TotalCost), formatInt(r.NumProjects),
			p.number(r.AvgDelay), p.number(r.TotalSavings), p.number(r.ReliabilityIndex), r.RiskFlag,
		}
	}
	title := fmt.Sprintf(config.ContractorReportTitleFormat, p.opts.TopContractors, p.opts.MinProjects)
	p.renderTable(2, title, subtitle, domain.ContractorColumns, contractors, paths.ContractorReport)

	trends := make([][]string, len(set.Trends))
	for i, r := range set.Trends {
		trends[i] = []string{
			formatInt(r.FundingYear), r.TypeOfWork, formatInt(r.TotalProjects),
			p.number(r.AvgSavings), p.number(r.OverrunRate), p.number(r.YoYChangePercent),
		}
	}
	p.renderTable(3, config.TrendsReportTitle, subtitle, domain.TrendColumns, trends, paths.TrendsReport)

	return p.RenderSummary(set.Summary, paths.SummaryFile)
}

// RenderSummary prints the summary record as written to summaryPath plus two highlight lines
func (p *Previewer) RenderSummary(summary domain.Summary, summaryPath string) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Summary Stats (%s):\n%s\n\n", filepath.Base(summaryPath), data)
	fmt.Fprintf(p.out, "Global Average Delay: %s days\n", p.number(summary.GlobalAvgDelay))
	fmt.Fprintf(p.out, "Total Savings: %s\n\n", p.number(summary.TotalSavings))
	return nil
}

func (p *Previewer) renderTable(n int, title, subtitle string, headers []string, rows [][]string, file string) {
	fmt.Fprintf(p.out, "Report %d: %s\n", n, title)
	fmt.Fprintln(p.out, subtitle)

	table := tablewriter.NewWriter(p.out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(headers)
	for i, row := range rows {
		if i >= p.opts.Rows {
			break
		}
		table.Append(row)
	}
	table.Render()

	fmt.Fprintf(p.out, "(%d rows total, full table exported to %s)\n\n", len(rows), filepath.Base(file))
}

func (p *Previewer) number(f float64) string {
	s := p.printer.Sprintf("%.2f", f)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
