package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/securecheck/sslcheck-cli/internal/analyzer"
	consts "github.com/securecheck/sslcheck-cli/internal/shared/constants"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <target> [target...]",
	Short: "Run a one-pass TLS posture analysis against one or more hosts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		outputPath, _ := cmd.Flags().GetString("output")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		rateLimit, _ := cmd.Flags().GetInt("rate-limit")

		engine := analyzer.New(engineConfig(), logger)

		if len(args) == 1 {
			report, err := engine.Analyze(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("analysis of %s failed: %w", args[0], err)
			}
			if outputPath != "" {
				if err := writeReportFile(outputPath, report); err != nil {
					return err
				}
				fmt.Printf("%s report written to %s\n", colorSuccess("✓"), outputPath)
			}
			if asJSON {
				return printJSON(report)
			}
			printReport(report)
			return nil
		}

		runner := &analyzer.Runner{Concurrency: concurrency, RateLimit: rateLimit}
		results := runner.Run(cmd.Context(), engine, args)

		if outputPath != "" {
			if err := writeReportFile(outputPath, results); err != nil {
				return err
			}
			fmt.Printf("%s results written to %s\n", colorSuccess("✓"), outputPath)
		}
		if asJSON {
			return printJSON(results)
		}
		for _, r := range results {
			if r.Error != "" {
				fmt.Printf("%-30s %s %s\n", r.Target, colorError("error"), r.Error)
				continue
			}
			res := r.Report.SSLResult
			fmt.Printf("%-30s grade=%s score=%d status=%s\n",
				r.Target, formatGradeWithColor(res.SSLGrade), r.Report.SecurityScore, res.SSLStatus)
		}
		return nil
	},
}

func printReport(report *analyzer.Report) {
	res := report.SSLResult

	fmt.Printf("\n%s %s (port %d)\n", colorInfo("▸"), res.Domain, res.Port)
	fmt.Printf("  Grade:  %s   Score: %d/100\n", formatGradeWithColor(res.SSLGrade), report.SecurityScore)
	fmt.Printf("  Status: %s — %s\n", res.SSLStatus, res.AnalysisResult)

	if res.DaysUntilExpiry != nil {
		fmt.Printf("  Certificate: %s (issued by %s), expires in %d days\n",
			res.CertificateSubject, res.CertificateIssuer, *res.DaysUntilExpiry)
	}

	if len(res.SecurityHeaders) > 0 {
		names := make([]string, 0, len(res.SecurityHeaders))
		for name := range res.SecurityHeaders {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Printf("  Headers present: %s\n", strings.Join(names, ", "))
	}
	if len(res.MissingSecurityHeaders) > 0 {
		fmt.Printf("  Headers missing: %s\n", colorWarn(strings.Join(res.MissingSecurityHeaders, ", ")))
	}

	if len(report.Issues) > 0 {
		fmt.Printf("\n  Issues:\n")
		for _, issue := range report.Issues {
			fmt.Printf("    [%s] %s — %s\n", formatSeverityWithColor(issue.Severity), issue.Title, issue.Description)
		}
	}

	fmt.Printf("\n  Estimated impact: $%d/yr revenue, %d%% SEO, %d%% user trust\n",
		report.BusinessImpact.RevenueLossAnnual, report.BusinessImpact.SEOImpact, report.BusinessImpact.UserTrustImpact)

	fmt.Printf("\n  Recommendations:\n")
	for _, rec := range report.Recommendations {
		fmt.Printf("    [%s] %s — %s\n", formatSeverityWithColor(rec.Priority), rec.Title, rec.Description)
	}
	fmt.Println()
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeReportFile(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := os.WriteFile(path, data, consts.DefaultFilePerm); err != nil {
		return fmt.Errorf("write results file: %w", err)
	}
	return nil
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "Print the full report as JSON")
	analyzeCmd.Flags().StringP("output", "O", "", "Write the report/results JSON to a file")
	analyzeCmd.Flags().Int("concurrency", 5, "Concurrent analyses when multiple targets are given")
	analyzeCmd.Flags().Int("rate-limit", 10, "Analyses started per second (0 = unlimited)")
}
