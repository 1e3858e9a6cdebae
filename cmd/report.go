package cmd

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/spf13/cobra"

	"github.com/securecheck/sslcheck-cli/internal/analyzer"
	consts "github.com/securecheck/sslcheck-cli/internal/shared/constants"
)

const (
	htmlTemplatePath     = "templates/report.html"
	markdownTemplatePath = "templates/report.md"
)

//go:embed templates/report.html templates/report.md
var reportTemplateFS embed.FS

// TemplateData is what the report templates render.
type TemplateData struct {
	Report *analyzer.Report
	Result *analyzer.Result
}

var reportTemplateFuncs = map[string]interface{}{
	"join":               strings.Join,
	"formatTime":         formatShortTimestamp,
	"severityBadgeClass": severityBadgeClass,
	"days":               derefDays,
}

// derefDays renders an optional day count for templates.
func derefDays(d *int) int {
	if d == nil {
		return 0
	}
	return *d
}

var (
	htmlReportTemplate = template.Must(
		template.New("report.html").Funcs(reportTemplateFuncs).ParseFS(reportTemplateFS, htmlTemplatePath),
	)
	markdownReportTemplate = texttemplate.Must(
		texttemplate.New("report.md").Funcs(reportTemplateFuncs).ParseFS(reportTemplateFS, markdownTemplatePath),
	)
)

var reportCmd = &cobra.Command{
	Use:   "report <report.json>",
	Short: "Render a saved analysis report as Markdown, HTML or PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		report, err := loadReport(args[0])
		if err != nil {
			return err
		}
		data := TemplateData{Report: report, Result: report.SSLResult}

		var rendered []byte
		switch strings.ToLower(format) {
		case "md", "markdown":
			var buf bytes.Buffer
			if err := markdownReportTemplate.Execute(&buf, data); err != nil {
				return fmt.Errorf("render markdown report: %w", err)
			}
			rendered = buf.Bytes()
		case "html":
			var buf bytes.Buffer
			if err := htmlReportTemplate.Execute(&buf, data); err != nil {
				return fmt.Errorf("render HTML report: %w", err)
			}
			rendered = buf.Bytes()
		case "pdf":
			rendered, err = generatePDFReportBytes(data)
			if err != nil {
				return fmt.Errorf("render PDF report: %w", err)
			}
		default:
			return fmt.Errorf("unsupported format %q (expected md, html or pdf)", format)
		}

		if outputPath == "" {
			outputPath = fmt.Sprintf("%s-report.%s", data.Result.Domain, normalizeExtension(format))
		}
		if err := os.WriteFile(outputPath, rendered, consts.DefaultFilePerm); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("%s report written to %s\n", colorSuccess("✓"), outputPath)
		return nil
	},
}

func loadReport(path string) (*analyzer.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var report analyzer.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report file: %w", err)
	}
	if report.SSLResult == nil {
		return nil, fmt.Errorf("report file %s has no ssl_result", path)
	}
	return &report, nil
}

func generatePDFReportBytes(data TemplateData) ([]byte, error) {
	res := data.Result
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("TLS Posture Report: %s", res.Domain), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// Summary
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Grade: %s | Score: %d/100", res.SSLGrade, data.Report.SecurityScore), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s (%s)", res.SSLStatus, res.AnalysisResult), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Analyzed: %s", formatShortTimestamp(data.Report.AnalyzedAt)), "", 1, "", false, 0, "")
	pdf.Ln(4)

	// Certificate
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Certificate", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if res.DaysUntilExpiry != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Subject: %s | Issuer: %s", res.CertificateSubject, res.CertificateIssuer), "", 1, "", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Valid: %s to %s (%d days remaining)",
			res.CertificateStartDate, res.CertificateEndDate, *res.DaysUntilExpiry), "", 1, "", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, "No certificate was retrieved.", "", 1, "", false, 0, "")
	}
	pdf.Ln(4)

	// Headers
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Security Headers", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if len(res.MissingSecurityHeaders) > 0 {
		pdf.MultiCell(0, 5, fmt.Sprintf("Missing: %s", strings.Join(res.MissingSecurityHeaders, ", ")), "", "", false)
	} else {
		pdf.CellFormat(0, 6, "All audited security headers are present.", "", 1, "", false, 0, "")
	}
	pdf.Ln(4)

	// Issues
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Issues", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, issue := range data.Report.Issues {
		if pdf.GetY() > 260 {
			pdf.AddPage()
		}
		pdf.MultiCell(0, 5, fmt.Sprintf("[%s] %s - %s", strings.ToUpper(issue.Severity), issue.Title, issue.Description), "", "", false)
	}
	if len(data.Report.Issues) == 0 {
		pdf.CellFormat(0, 6, "No issues found.", "", 1, "", false, 0, "")
	}
	pdf.Ln(4)

	// Business impact
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Business Impact", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Annual revenue loss: $%d | SEO: %d%% | User trust: %d%%",
		data.Report.BusinessImpact.RevenueLossAnnual,
		data.Report.BusinessImpact.SEOImpact,
		data.Report.BusinessImpact.UserTrustImpact), "", 1, "", false, 0, "")
	pdf.Ln(4)

	// Recommendations
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Recommendations", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, rec := range data.Report.Recommendations {
		if pdf.GetY() > 260 {
			pdf.AddPage()
		}
		pdf.MultiCell(0, 5, fmt.Sprintf("[%s] %s - %s", strings.ToUpper(rec.Priority), rec.Title, rec.Description), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatShortTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 02 2006 15:04 MST")
}

func severityBadgeClass(severity string) string {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "critical":
		return "badge-critical"
	case "high":
		return "badge-high"
	case "medium":
		return "badge-medium"
	default:
		return "badge-low"
	}
}

func normalizeExtension(format string) string {
	switch strings.ToLower(format) {
	case "markdown":
		return "md"
	default:
		return strings.ToLower(format)
	}
}

func init() {
	reportCmd.Flags().StringP("format", "f", "md", "Output format: md, html or pdf")
	reportCmd.Flags().StringP("output", "o", "", "Output file (default <domain>-report.<ext>)")
}
