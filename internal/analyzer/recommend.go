package analyzer

// BuildRecommendations evaluates the remediation rules in order. Every
// matching rule contributes an entry; when none fire, a single routine
// review entry is returned so the list is never empty.
func BuildRecommendations(cfg *Config, res *Result) []Recommendation {
	recs := []Recommendation{}

	if res.SSLGrade == GradeF || res.SSLGrade == GradeD {
		recs = append(recs, Recommendation{
			Title:       "Overhaul the TLS configuration",
			Description: "Review the entire SSL/TLS setup and deploy a certificate from a trusted CA with modern protocol settings.",
			Priority:    SeverityCritical,
		})
	}

	if containsHeader(res.MissingSecurityHeaders, "Strict-Transport-Security") {
		recs = append(recs, Recommendation{
			Title:       "Enable HSTS",
			Description: "Set the Strict-Transport-Security header so browsers always connect over HTTPS.",
			Priority:    SeverityHigh,
		})
	}

	if containsHeader(res.MissingSecurityHeaders, "Content-Security-Policy") {
		recs = append(recs, Recommendation{
			Title:       "Enable a Content Security Policy",
			Description: "Set the Content-Security-Policy header to reduce the impact of XSS attacks.",
			Priority:    SeverityHigh,
		})
	}

	if res.DaysUntilExpiry != nil && *res.DaysUntilExpiry < cfg.RenewalAdviceDays {
		recs = append(recs, Recommendation{
			Title:       "Set up automatic certificate renewal",
			Description: "Automate certificate renewal so the site never serves an expired certificate.",
			Priority:    SeverityMedium,
		})
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Title:       "Perform routine security reviews",
			Description: "Keep monitoring the TLS configuration and security headers on a regular schedule.",
			Priority:    SeverityLow,
		})
	}

	return recs
}

func containsHeader(headers []string, name string) bool {
	for _, h := range headers {
		if h == name {
			return true
		}
	}
	return false
}
