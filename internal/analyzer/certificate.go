package analyzer

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"math"
	"net"
	"strconv"
	"time"
)

// CertificateFinding is the classified outcome of the TLS probe.
type CertificateFinding struct {
	Status     SSLStatus
	Valid      bool
	Summary    string
	Retrieved  bool // certificate fields below populated only when true
	Days       int  // floor days until NotAfter; negative when expired
	SelfSigned bool
	Issuer     string
	Subject    string
	NotBefore  time.Time
	NotAfter   time.Time
}

// InspectCertificate performs a TLS handshake against host:port and
// classifies the presented certificate. Chain validation failures do not
// abort the handshake; the certificate is still extracted and the chain
// verdict recorded separately. Network failures yield a connection_error
// finding rather than an error.
func (a *Analyzer) InspectCertificate(ctx context.Context, host string, port int) CertificateFinding {
	dialCtx, cancel := context.WithTimeout(ctx, a.cfg.HandshakeTimeout)
	defer cancel()

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: a.cfg.HandshakeTimeout},
		Config: &tls.Config{
			ServerName: host,
			// Untrusted chains must still hand us the certificate; the
			// chain verdict is computed below via x509 verification.
			InsecureSkipVerify: true, // #nosec G402
		},
	}

	conn, err := dialer.DialContext(dialCtx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return CertificateFinding{
			Status:  StatusConnectionError,
			Summary: fmt.Sprintf("TLS connection failed: %v", err),
		}
	}
	defer conn.Close()

	state := conn.(*tls.Conn).ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return CertificateFinding{
			Status:  StatusConnectionError,
			Summary: "server presented no certificate",
		}
	}

	leaf := state.PeerCertificates[0]
	authorized := chainAuthorized(leaf, state.PeerCertificates[1:], host)
	return classifyCertificate(leaf, authorized, time.Now())
}

// chainAuthorized reports whether the presented chain verifies against the
// system roots for the given hostname.
func chainAuthorized(leaf *x509.Certificate, rest []*x509.Certificate, host string) bool {
	intermediates := x509.NewCertPool()
	for _, c := range rest {
		intermediates.AddCert(c)
	}
	_, err := leaf.Verify(x509.VerifyOptions{
		DNSName:       host,
		Intermediates: intermediates,
	})
	return err == nil
}

// classifyCertificate applies the classification precedence: expired, then
// self-signed (issuer CN equals subject CN), then chain verification
// failure, then valid. First match wins.
func classifyCertificate(leaf *x509.Certificate, authorized bool, now time.Time) CertificateFinding {
	finding := CertificateFinding{
		Retrieved:  true,
		Days:       int(math.Floor(leaf.NotAfter.Sub(now).Hours() / 24)),
		SelfSigned: leaf.Issuer.CommonName == leaf.Subject.CommonName,
		Issuer:     issuerName(leaf),
		Subject:    subjectName(leaf),
		NotBefore:  leaf.NotBefore,
		NotAfter:   leaf.NotAfter,
	}

	switch {
	case now.After(leaf.NotAfter):
		finding.Status = StatusExpired
		finding.Summary = "SSL certificate has expired"
	case finding.SelfSigned:
		finding.Status = StatusSelfSigned
		finding.Summary = "self-signed SSL certificate"
	case !authorized:
		finding.Status = StatusVerifyFailed
		finding.Summary = "SSL certificate verification failed"
	default:
		finding.Status = StatusValid
		finding.Valid = true
		finding.Summary = "valid SSL certificate"
	}
	return finding
}

func issuerName(cert *x509.Certificate) string {
	if cert.Issuer.CommonName != "" {
		return cert.Issuer.CommonName
	}
	if len(cert.Issuer.Organization) > 0 {
		return cert.Issuer.Organization[0]
	}
	return "Unknown"
}

func subjectName(cert *x509.Certificate) string {
	if cert.Subject.CommonName != "" {
		return cert.Subject.CommonName
	}
	return "Unknown"
}
