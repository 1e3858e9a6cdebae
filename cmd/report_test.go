package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/securecheck/sslcheck-cli/internal/analyzer"
)

func sampleReport() *analyzer.Report {
	days := 42
	return &analyzer.Report{
		SSLResult: &analyzer.Result{
			Domain:               "example.com",
			Port:                 443,
			SSLGrade:             analyzer.GradeB,
			SSLStatus:            analyzer.StatusValid,
			AnalysisResult:       "Certificate valid",
			CertificateValid:     true,
			DaysUntilExpiry:      &days,
			CertificateIssuer:    "Trusted CA",
			CertificateSubject:   "example.com",
			CertificateStartDate: "2026-01-01",
			CertificateEndDate:   "2026-12-31",
			MissingSecurityHeaders: []string{
				"Content-Security-Policy",
			},
		},
		SecurityScore: 65,
		Issues: []analyzer.SecurityIssue{
			{Type: analyzer.IssueSecurityHeader, Severity: analyzer.SeverityMedium,
				Title: "Missing Content-Security-Policy", Description: "Header not set"},
		},
		BusinessImpact: analyzer.BusinessImpact{
			RevenueLossAnnual: 500000,
			SEOImpact:         15,
			UserTrustImpact:   20,
		},
		Recommendations: []analyzer.Recommendation{
			{Priority: analyzer.SeverityHigh, Title: "Add a Content-Security-Policy header",
				Description: "Define a policy"},
		},
		AnalyzedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func writeSampleReportFile(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(sampleReport())
	if err != nil {
		t.Fatalf("failed to marshal sample report: %v", err)
	}
	path := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write sample report: %v", err)
	}
	return path
}

func TestLoadReport(t *testing.T) {
	path := writeSampleReportFile(t)

	report, err := loadReport(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.SSLResult.Domain != "example.com" {
		t.Errorf("expected example.com, got %s", report.SSLResult.Domain)
	}
	if report.SecurityScore != 65 {
		t.Errorf("expected score 65, got %d", report.SecurityScore)
	}
}

func TestLoadReport_MissingFile(t *testing.T) {
	if _, err := loadReport(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadReport_NoSSLResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte(`{"security_score": 10}`), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := loadReport(path); err == nil {
		t.Error("expected an error when ssl_result is absent")
	}
}

func TestMarkdownReportTemplate(t *testing.T) {
	report := sampleReport()
	data := TemplateData{Report: report, Result: report.SSLResult}

	var buf bytes.Buffer
	if err := markdownReportTemplate.Execute(&buf, data); err != nil {
		t.Fatalf("failed to render: %v", err)
	}

	rendered := buf.String()
	for _, want := range []string{
		"# TLS Posture Report: example.com",
		"**Grade:** B",
		"65/100",
		"Days until expiry: 42",
		"Missing: Content-Security-Policy",
		"Missing Content-Security-Policy",
		"$500000",
		"Add a Content-Security-Policy header",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered markdown missing %q", want)
		}
	}
}

func TestMarkdownReportTemplate_NoCertificate(t *testing.T) {
	report := sampleReport()
	report.SSLResult.DaysUntilExpiry = nil
	data := TemplateData{Report: report, Result: report.SSLResult}

	var buf bytes.Buffer
	if err := markdownReportTemplate.Execute(&buf, data); err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	if !strings.Contains(buf.String(), "No certificate was retrieved.") {
		t.Error("expected the no-certificate branch")
	}
}

func TestHTMLReportTemplate(t *testing.T) {
	report := sampleReport()
	data := TemplateData{Report: report, Result: report.SSLResult}

	var buf bytes.Buffer
	if err := htmlReportTemplate.Execute(&buf, data); err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	if !strings.Contains(buf.String(), "example.com") {
		t.Error("rendered HTML missing the domain")
	}
}

func TestGeneratePDFReportBytes(t *testing.T) {
	report := sampleReport()
	data := TemplateData{Report: report, Result: report.SSLResult}

	rendered, err := generatePDFReportBytes(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(rendered, []byte("%PDF")) {
		t.Error("expected a PDF header")
	}
}

func TestSeverityBadgeClass(t *testing.T) {
	tests := []struct {
		severity string
		want     string
	}{
		{"critical", "badge-critical"},
		{"CRITICAL", "badge-critical"},
		{"high", "badge-high"},
		{"medium", "badge-medium"},
		{"low", "badge-low"},
		{"", "badge-low"},
		{"  High  ", "badge-high"},
	}
	for _, tt := range tests {
		if got := severityBadgeClass(tt.severity); got != tt.want {
			t.Errorf("severityBadgeClass(%q): expected %s, got %s", tt.severity, tt.want, got)
		}
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := []struct{ format, want string }{
		{"md", "md"},
		{"markdown", "md"},
		{"HTML", "html"},
		{"pdf", "pdf"},
	}
	for _, tt := range tests {
		if got := normalizeExtension(tt.format); got != tt.want {
			t.Errorf("normalizeExtension(%q): expected %s, got %s", tt.format, tt.want, got)
		}
	}
}
