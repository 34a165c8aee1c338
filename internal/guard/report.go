package guard

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

const (
	reportBannerConstant             = "============================================================"
	reportStatusLineTemplateConstant = "%s %s\n"
	reportStatusTagTemplateConstant  = "[%s]"
	reportErrorLineTemplateConstant  = "Error: %s\n"
	reportTimestampTemplateConstant  = "Timestamp: %s\n"
	summaryTitleConstant             = "AUDIT SUMMARY"
	summaryTotalTemplateConstant     = "Total files audited: %d\n"
	summaryRejectTemplateConstant    = "REJECT: %d\n"
	summaryFlagTemplateConstant      = "FLAG: %d\n"
	summaryPassTemplateConstant      = "PASS: %d\n"
)

var severityColors = map[Severity]*color.Color{
	SeverityReject: color.New(color.FgRed),
	SeverityFlag:   color.New(color.FgYellow),
	SeverityPass:   color.New(color.FgGreen),
}

// Summary aggregates verdict counts across a batch of audit results.
type Summary struct {
	Total    int
	Rejected int
	Flagged  int
	Passed   int
}

// Summarize reduces audit results to per-severity counts.
func Summarize(results []AuditResult) Summary {
	summary := Summary{Total: len(results)}
	for _, result := range results {
		switch result.Status {
		case SeverityReject:
			summary.Rejected++
		case SeverityFlag:
			summary.Flagged++
		case SeverityPass:
			summary.Passed++
		}
	}
	return summary
}

// ReportRenderer formats audit results and summaries for terminal display.
type ReportRenderer struct{}

// NewReportRenderer constructs a ReportRenderer.
func NewReportRenderer() *ReportRenderer {
	return &ReportRenderer{}
}

// Render writes a banner-delimited block describing one audit result.
func (renderer *ReportRenderer) Render(outputWriter io.Writer, result AuditResult) {
	statusTag := fmt.Sprintf(reportStatusTagTemplateConstant, result.Status)
	if severityColor, known := severityColors[result.Status]; known {
		statusTag = severityColor.Sprintf(reportStatusTagTemplateConstant, result.Status)
	}

	fmt.Fprintln(outputWriter)
	fmt.Fprintln(outputWriter, reportBannerConstant)
	fmt.Fprintf(outputWriter, reportStatusLineTemplateConstant, statusTag, result.FilePath)
	fmt.Fprintln(outputWriter, reportBannerConstant)

	if len(result.ErrorMessage) > 0 {
		fmt.Fprintf(outputWriter, reportErrorLineTemplateConstant, result.ErrorMessage)
	} else if len(result.Report) > 0 {
		fmt.Fprintln(outputWriter, result.Report)
	}

	fmt.Fprintf(outputWriter, reportTimestampTemplateConstant, result.Timestamp.Format(time.RFC3339))
}

// RenderSummary writes the aggregate verdict counts for a batch.
func (renderer *ReportRenderer) RenderSummary(outputWriter io.Writer, summary Summary) {
	fmt.Fprintln(outputWriter)
	fmt.Fprintln(outputWriter, reportBannerConstant)
	fmt.Fprintln(outputWriter, summaryTitleConstant)
	fmt.Fprintln(outputWriter, reportBannerConstant)
	fmt.Fprintf(outputWriter, summaryTotalTemplateConstant, summary.Total)
	fmt.Fprintf(outputWriter, summaryRejectTemplateConstant, summary.Rejected)
	fmt.Fprintf(outputWriter, summaryFlagTemplateConstant, summary.Flagged)
	fmt.Fprintf(outputWriter, summaryPassTemplateConstant, summary.Passed)
	fmt.Fprintln(outputWriter, reportBannerConstant)
}
