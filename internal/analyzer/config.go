package analyzer

import "time"

// SecurityHeaderCatalog is the fixed set of response headers the auditor
// looks for, in reporting order.
var SecurityHeaderCatalog = []string{
	"Strict-Transport-Security",
	"Content-Security-Policy",
	"X-Frame-Options",
	"X-Content-Type-Options",
	"X-XSS-Protection",
	"Referrer-Policy",
}

// CriticalSecurityHeaders is the subset of the catalog that drives grade
// downgrades.
var CriticalSecurityHeaders = []string{
	"Strict-Transport-Security",
	"Content-Security-Policy",
	"X-Frame-Options",
}

// Config holds the immutable rule tables and probe tunables. Built once at
// process start and shared read-only across concurrent analyses.
type Config struct {
	// Base score per grade, used when the certificate chain is valid.
	GradeScores map[Grade]int

	// Fixed scores per non-valid SSL status; grade is not consulted.
	StatusScores map[SSLStatus]int

	// Points deducted per missing security header.
	HeaderPenalty int
	// Points deducted when the certificate expires inside the warning window.
	ExpiryPenalty int

	// Business impact lookup tables, indexed by grade.
	RevenueLossPerGrade map[Grade]int
	SEOImpactPerGrade   map[Grade]int
	TrustImpactPerGrade map[Grade]int

	// Certificate expiry thresholds, in days.
	WarningExpiryDays  int
	CriticalExpiryDays int
	RenewalAdviceDays  int

	// Probe tunables.
	PortTimeout      time.Duration
	HandshakeTimeout time.Duration
	HeaderTimeout    time.Duration
	MaxRedirects     int
}

// DefaultConfig returns the standard rule tables.
func DefaultConfig() *Config {
	return &Config{
		GradeScores: map[Grade]int{
			GradeAPlus: 95,
			GradeA:     85,
			GradeB:     70,
			GradeC:     50,
			GradeD:     30,
			GradeF:     10,
		},
		StatusScores: map[SSLStatus]int{
			StatusNoSSL:           0,
			StatusConnectionError: 0,
			StatusExpired:         10,
			StatusSelfSigned:      20,
			StatusVerifyFailed:    15,
		},
		HeaderPenalty: 5,
		ExpiryPenalty: 10,
		RevenueLossPerGrade: map[Grade]int{
			GradeF:     2000000,
			GradeD:     1500000,
			GradeC:     1000000,
			GradeB:     500000,
			GradeA:     200000,
			GradeAPlus: 100000,
		},
		SEOImpactPerGrade: map[Grade]int{
			GradeF:     30,
			GradeD:     25,
			GradeC:     20,
			GradeB:     15,
			GradeA:     10,
			GradeAPlus: 5,
		},
		TrustImpactPerGrade: map[Grade]int{
			GradeF:     50,
			GradeD:     40,
			GradeC:     30,
			GradeB:     20,
			GradeA:     10,
			GradeAPlus: 5,
		},
		WarningExpiryDays:  30,
		CriticalExpiryDays: 7,
		RenewalAdviceDays:  60,
		PortTimeout:        5 * time.Second,
		HandshakeTimeout:   10 * time.Second,
		HeaderTimeout:      10 * time.Second,
		MaxRedirects:       5,
	}
}
