package analyzer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/securecheck/sslcheck-cli/internal/shared/constants"
)

// Analyzer is the engine entry point. It is safe for concurrent use: the
// configuration tables are read-only and each call owns its own result.
type Analyzer struct {
	cfg    *Config
	logger *zap.SugaredLogger
	port   int
}

// New builds an Analyzer. A nil config selects DefaultConfig; a nil logger
// disables logging.
func New(cfg *Config, logger *zap.SugaredLogger) *Analyzer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Analyzer{cfg: cfg, logger: logger, port: constants.HTTPSPort}
}

// Analyze runs one full analysis pass against a bare domain or URL. Network
// failures never surface as errors; they are classified into the result's
// ssl_status. Only unparseable input returns an error, before any probe
// runs.
func (a *Analyzer) Analyze(ctx context.Context, target string) (*Report, error) {
	info, err := ParseTarget(target)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Domain:                 info.Domain,
		Port:                   a.port,
		AnalyzedAt:             time.Now().UTC(),
		URLScheme:              info.Scheme,
		SSLStatus:              StatusConnectionError,
		MissingSecurityHeaders: []string{},
		SecurityHeaders:        map[string]string{},
	}

	res.Port443Open = a.ProbePort(ctx, info.Domain, a.port)
	a.logger.Debugw("port probe finished", "domain", info.Domain, "port", a.port, "open", res.Port443Open)

	if !res.Port443Open {
		res.SSLStatus = StatusNoSSL
		res.AnalysisResult = fmt.Sprintf("port %d is closed; the host serves no TLS", a.port)
		res.MissingSecurityHeaders = append(res.MissingSecurityHeaders, SecurityHeaderCatalog...)
		res.SSLGrade = CalculateGrade(a.cfg, res)
		return a.assemble(res), nil
	}

	// The certificate and header probes have no data dependency on each
	// other; running them together bounds latency to the slower timeout.
	var (
		wg      sync.WaitGroup
		cert    CertificateFinding
		headers HeaderFinding
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cert = a.InspectCertificate(ctx, info.Domain, a.port)
	}()
	go func() {
		defer wg.Done()
		headers = a.AuditHeaders(ctx, a.targetURL(info.Domain))
	}()
	wg.Wait()

	res.SSLStatus = cert.Status
	res.CertificateValid = cert.Valid
	res.AnalysisResult = cert.Summary
	if cert.Retrieved {
		days := cert.Days
		res.DaysUntilExpiry = &days
		res.IsSelfSigned = cert.SelfSigned
		res.CertificateIssuer = cert.Issuer
		res.CertificateSubject = cert.Subject
		res.CertificateStartDate = cert.NotBefore.Format(time.RFC3339)
		res.CertificateEndDate = cert.NotAfter.Format(time.RFC3339)
	}

	res.MissingSecurityHeaders = headers.Missing
	res.SecurityHeaders = headers.Present
	res.HSTSEnabled = headers.HSTSEnabled

	res.SSLGrade = CalculateGrade(a.cfg, res)
	a.logger.Infow("analysis complete",
		"domain", res.Domain,
		"status", res.SSLStatus,
		"grade", res.SSLGrade,
	)

	return a.assemble(res), nil
}

// assemble derives the score, issues, impact estimate and recommendations
// from a finished result. All derivations are pure functions over res.
func (a *Analyzer) assemble(res *Result) *Report {
	return &Report{
		SSLResult:       res,
		SecurityScore:   CalculateScore(a.cfg, res),
		Issues:          ExtractIssues(a.cfg, res),
		BusinessImpact:  MapBusinessImpact(a.cfg, res.SSLGrade),
		Recommendations: BuildRecommendations(a.cfg, res),
		AnalyzedAt:      res.AnalyzedAt,
	}
}

func (a *Analyzer) targetURL(domain string) string {
	if a.port == constants.HTTPSPort {
		return "https://" + domain
	}
	return fmt.Sprintf("https://%s:%d", domain, a.port)
}
