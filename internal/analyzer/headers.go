package analyzer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
)

// HeaderFinding is the outcome of the response-header audit.
type HeaderFinding struct {
	Missing     []string          // catalog entries absent, in catalog order
	Present     map[string]string // observed values for present entries
	HSTSEnabled bool
}

// AuditHeaders fetches the target over HTTPS and compares the response
// headers against the security header catalog. Any HTTP status counts as a
// response; redirects are followed up to the configured limit. Request
// failures are treated as "every header missing" rather than errors, so the
// audit degrades the result instead of aborting the analysis.
func (a *Analyzer) AuditHeaders(ctx context.Context, rawURL string) HeaderFinding {
	client := &http.Client{
		Timeout: a.cfg.HeaderTimeout,
		Transport: &http.Transport{
			// The certificate probe owns trust decisions; header auditing
			// still needs a response from hosts with broken chains.
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= a.cfg.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", a.cfg.MaxRedirects)
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return allHeadersMissing()
	}

	resp, err := client.Do(req)
	if err != nil {
		return allHeadersMissing()
	}
	defer resp.Body.Close()

	finding := HeaderFinding{
		Missing: []string{},
		Present: map[string]string{},
	}
	for _, name := range SecurityHeaderCatalog {
		if value := resp.Header.Get(name); value != "" {
			finding.Present[name] = value
		} else {
			finding.Missing = append(finding.Missing, name)
		}
	}
	finding.HSTSEnabled = resp.Header.Get("Strict-Transport-Security") != ""
	return finding
}

func allHeadersMissing() HeaderFinding {
	missing := make([]string, len(SecurityHeaderCatalog))
	copy(missing, SecurityHeaderCatalog)
	return HeaderFinding{Missing: missing, Present: map[string]string{}}
}
