package analyzer

import (
	"context"
	"net"
	"strconv"
)

// ProbePort reports whether a TCP connection to host:port succeeds within
// the configured timeout. Refusal, timeout, and resolution failures are all
// normal outcomes, reported as false.
func (a *Analyzer) ProbePort(ctx context.Context, host string, port int) bool {
	dialer := &net.Dialer{Timeout: a.cfg.PortTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
