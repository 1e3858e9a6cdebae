package analyzer

import (
	"context"
	"net"
	"strconv"
	"testing"
)

func TestProbePort_Open(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	defer ln.Close()

	_, portStr, _ := net.SplitHostPort(ln.Addr().String())
	port, _ := strconv.Atoi(portStr)

	if !newTestAnalyzer().ProbePort(context.Background(), "127.0.0.1", port) {
		t.Error("expected open port to be reported as open")
	}
}

func TestProbePort_Closed(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	_, portStr, _ := net.SplitHostPort(ln.Addr().String())
	port, _ := strconv.Atoi(portStr)
	ln.Close()

	if newTestAnalyzer().ProbePort(context.Background(), "127.0.0.1", port) {
		t.Error("expected closed port to be reported as closed")
	}
}
