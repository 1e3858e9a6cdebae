package cmd

import (
	"github.com/fatih/color"

	"github.com/securecheck/sslcheck-cli/internal/analyzer"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

// formatGradeWithColor colors a grade by how alarming it is.
func formatGradeWithColor(grade analyzer.Grade) string {
	switch grade {
	case analyzer.GradeAPlus, analyzer.GradeA:
		return colorSuccess(string(grade))
	case analyzer.GradeB, analyzer.GradeC:
		return colorWarn(string(grade))
	default:
		return colorError(string(grade))
	}
}

func formatSeverityWithColor(severity string) string {
	switch severity {
	case analyzer.SeverityCritical, analyzer.SeverityHigh:
		return colorError(severity)
	case analyzer.SeverityMedium:
		return colorWarn(severity)
	default:
		return colorInfo(severity)
	}
}
