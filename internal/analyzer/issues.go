package analyzer

import "fmt"

// ExtractIssues derives the ordered list of discrete findings from an
// assembled result. Pure function; the order below is part of the contract.
func ExtractIssues(cfg *Config, res *Result) []SecurityIssue {
	issues := []SecurityIssue{}

	if res.SSLStatus == StatusNoSSL || !res.Port443Open {
		issues = append(issues,
			SecurityIssue{
				Type:        IssueSSLService,
				Severity:    SeverityCritical,
				Title:       "No HTTPS service",
				Description: fmt.Sprintf("Port %d is closed; the site offers no HTTPS service at all.", res.Port),
			},
			SecurityIssue{
				Type:        IssueDataEncryption,
				Severity:    SeverityCritical,
				Title:       "All traffic unencrypted",
				Description: "Without TLS every request and response travels in plaintext and can be intercepted.",
			},
		)
	}

	if res.SSLStatus == StatusExpired {
		issues = append(issues, SecurityIssue{
			Type:        IssueCertificate,
			Severity:    SeverityCritical,
			Title:       "SSL certificate expired",
			Description: "The certificate has expired; browsers show a full-page security warning.",
		})
	}

	if res.IsSelfSigned {
		issues = append(issues, SecurityIssue{
			Type:        IssueCertificate,
			Severity:    SeverityHigh,
			Title:       "Self-signed certificate",
			Description: "The certificate was not issued by a trusted CA; browsers warn visitors before connecting.",
		})
	}

	if res.DaysUntilExpiry != nil && *res.DaysUntilExpiry < cfg.WarningExpiryDays {
		severity := SeverityMedium
		if *res.DaysUntilExpiry < cfg.CriticalExpiryDays {
			severity = SeverityCritical
		}
		issues = append(issues, SecurityIssue{
			Type:        IssueCertificate,
			Severity:    severity,
			Title:       "SSL certificate expiring soon",
			Description: fmt.Sprintf("The certificate expires in %d days.", *res.DaysUntilExpiry),
		})
	}

	for _, header := range res.MissingSecurityHeaders {
		issues = append(issues, SecurityIssue{
			Type:        IssueSecurityHeader,
			Severity:    SeverityMedium,
			Title:       fmt.Sprintf("%s header missing", header),
			Description: fmt.Sprintf("The %s security header is not set on responses.", header),
		})
	}

	return issues
}
