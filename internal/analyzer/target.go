package analyzer

import (
	"net/url"
	"strings"

	sharederrors "github.com/securecheck/sslcheck-cli/internal/shared/errors"
)

// TargetInfo contains the parsed pieces of an analysis target.
type TargetInfo struct {
	Original string
	Scheme   string // https when the input carried no scheme
	Domain   string // bare hostname, no port or path
}

// ParseTarget normalizes a bare domain or URL into a TargetInfo. Inputs
// without a scheme are treated as https. Handles:
//   - example.com
//   - https://example.com/path
//   - example.com:8443 (port is ignored; the probe port is fixed)
func ParseTarget(target string) (*TargetInfo, error) {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		return nil, sharederrors.ErrEmptyTarget
	}

	raw := trimmed
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		return nil, sharederrors.ErrInvalidTarget
	}

	return &TargetInfo{
		Original: trimmed,
		Scheme:   parsed.Scheme,
		Domain:   parsed.Hostname(),
	}, nil
}
