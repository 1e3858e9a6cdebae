package analyzer

import "time"

// SSLStatus classifies the outcome of the TLS probe. Exactly one value is
// assigned per analysis.
type SSLStatus string

const (
	StatusValid           SSLStatus = "valid"
	StatusExpired         SSLStatus = "expired"
	StatusSelfSigned      SSLStatus = "self_signed"
	StatusVerifyFailed    SSLStatus = "verify_failed"
	StatusNoSSL           SSLStatus = "no_ssl"
	StatusConnectionError SSLStatus = "connection_error"
)

// Grade is the six-level ordinal posture classification, A+ best to F worst.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// Severity levels used by issues and recommendations.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Issue types.
const (
	IssueSSLService     = "ssl_service"
	IssueCertificate    = "certificate"
	IssueSecurityHeader = "security_header"
	IssueDataEncryption = "data_encryption"
	IssueBrowserWarning = "browser_warning"
)

// Result is the assembled outcome of one analysis. Immutable once returned.
type Result struct {
	Domain           string    `json:"domain"`
	Port             int       `json:"port"`
	AnalyzedAt       time.Time `json:"analyzed_at"`
	URLScheme        string    `json:"url_scheme"`
	Port443Open      bool      `json:"port_443_open"`
	SSLGrade         Grade     `json:"ssl_grade"`
	CertificateValid bool      `json:"certificate_valid"`
	SSLStatus        SSLStatus `json:"ssl_status"`
	AnalysisResult   string    `json:"analysis_result"`

	// Present only when a certificate was retrieved.
	DaysUntilExpiry      *int   `json:"days_until_expiry,omitempty"`
	IsSelfSigned         bool   `json:"is_self_signed,omitempty"`
	CertificateIssuer    string `json:"certificate_issuer,omitempty"`
	CertificateSubject   string `json:"certificate_subject,omitempty"`
	CertificateStartDate string `json:"certificate_start_date,omitempty"`
	CertificateEndDate   string `json:"certificate_end_date,omitempty"`

	MissingSecurityHeaders []string          `json:"missing_security_headers"`
	HSTSEnabled            bool              `json:"hsts_enabled"`
	SecurityHeaders        map[string]string `json:"security_headers"`
}

// SecurityIssue is one discrete, severity-tagged finding. Derived per
// request, never persisted.
type SecurityIssue struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BusinessImpact estimates the downstream cost of the observed grade.
type BusinessImpact struct {
	RevenueLossAnnual int `json:"revenue_loss_annual"`
	SEOImpact         int `json:"seo_impact"`
	UserTrustImpact   int `json:"user_trust_impact"`
}

// Recommendation is one priority-tagged remediation suggestion.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Report is the full engine output consumed by the API layer and the
// report exporter. Field names are part of the wire contract.
type Report struct {
	SSLResult       *Result          `json:"ssl_result"`
	SecurityScore   int              `json:"security_score"`
	Issues          []SecurityIssue  `json:"issues"`
	BusinessImpact  BusinessImpact   `json:"business_impact"`
	Recommendations []Recommendation `json:"recommendations"`
	AnalyzedAt      time.Time        `json:"analyzed_at"`
}
