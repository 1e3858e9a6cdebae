package analyzer

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"testing"
	"time"
)

func testCert(subjectCN, issuerCN string, notAfter time.Time) *x509.Certificate {
	return &x509.Certificate{
		Subject:   pkix.Name{CommonName: subjectCN},
		Issuer:    pkix.Name{CommonName: issuerCN},
		NotBefore: notAfter.AddDate(-1, 0, 0),
		NotAfter:  notAfter,
	}
}

func TestClassifyCertificate_Valid(t *testing.T) {
	now := time.Now()
	cert := testCert("example.com", "Trusted CA", now.AddDate(0, 6, 0))

	finding := classifyCertificate(cert, true, now)

	if finding.Status != StatusValid {
		t.Errorf("expected valid, got %s", finding.Status)
	}
	if !finding.Valid || !finding.Retrieved {
		t.Error("expected Valid and Retrieved to be true")
	}
}

func TestClassifyCertificate_ExpiredWinsOverSelfSigned(t *testing.T) {
	now := time.Now()
	cert := testCert("example.com", "example.com", now.Add(-24*time.Hour))

	// Expired takes precedence even though issuer CN == subject CN.
	finding := classifyCertificate(cert, false, now)

	if finding.Status != StatusExpired {
		t.Errorf("expected expired, got %s", finding.Status)
	}
	if finding.Days >= 0 {
		t.Errorf("expected negative days until expiry, got %d", finding.Days)
	}
}

func TestClassifyCertificate_SelfSignedWinsOverVerifyFailed(t *testing.T) {
	now := time.Now()
	cert := testCert("internal.local", "internal.local", now.AddDate(0, 3, 0))

	finding := classifyCertificate(cert, false, now)

	if finding.Status != StatusSelfSigned {
		t.Errorf("expected self_signed, got %s", finding.Status)
	}
	if !finding.SelfSigned {
		t.Error("expected SelfSigned flag")
	}
}

func TestClassifyCertificate_VerifyFailed(t *testing.T) {
	now := time.Now()
	cert := testCert("example.com", "Untrusted CA", now.AddDate(0, 3, 0))

	finding := classifyCertificate(cert, false, now)

	if finding.Status != StatusVerifyFailed {
		t.Errorf("expected verify_failed, got %s", finding.Status)
	}
	if finding.Valid {
		t.Error("verify_failed must not be marked valid")
	}
}

func TestClassifyCertificate_DaysUntilExpiryFloors(t *testing.T) {
	now := time.Now()

	// 36 hours out floors to 1 day.
	cert := testCert("example.com", "Trusted CA", now.Add(36*time.Hour))
	finding := classifyCertificate(cert, true, now)
	if finding.Days != 1 {
		t.Errorf("expected 1 day, got %d", finding.Days)
	}

	// 36 hours past floors to -2 days.
	cert = testCert("example.com", "Trusted CA", now.Add(-36*time.Hour))
	finding = classifyCertificate(cert, true, now)
	if finding.Days != -2 {
		t.Errorf("expected -2 days, got %d", finding.Days)
	}
}

func TestIssuerName_OrganizationFallback(t *testing.T) {
	cert := &x509.Certificate{
		Issuer: pkix.Name{Organization: []string{"Acme Co"}},
	}
	if got := issuerName(cert); got != "Acme Co" {
		t.Errorf("expected organization fallback, got %s", got)
	}

	cert = &x509.Certificate{}
	if got := issuerName(cert); got != "Unknown" {
		t.Errorf("expected Unknown, got %s", got)
	}
}
