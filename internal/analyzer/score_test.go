package analyzer

import "testing"

func TestCalculateScore_StatusScores(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		status SSLStatus
		want   int
	}{
		{StatusNoSSL, 0},
		{StatusConnectionError, 0},
		{StatusExpired, 10},
		{StatusSelfSigned, 20},
		{StatusVerifyFailed, 15},
	}

	for _, tt := range tests {
		// Grade is deliberately ignored for non-valid statuses.
		res := &Result{SSLStatus: tt.status, SSLGrade: GradeA}
		if got := CalculateScore(cfg, res); got != tt.want {
			t.Errorf("status %s: expected score %d, got %d", tt.status, tt.want, got)
		}
	}
}

func TestCalculateScore_ValidFromGradeBase(t *testing.T) {
	cfg := DefaultConfig()

	res := validResult(200, []string{}, true)
	res.SSLGrade = GradeAPlus
	if got := CalculateScore(cfg, res); got != 95 {
		t.Errorf("A+ with no penalties: expected 95, got %d", got)
	}
}

func TestCalculateScore_HeaderPenalty(t *testing.T) {
	cfg := DefaultConfig()

	res := validResult(200, []string{"X-XSS-Protection", "Referrer-Policy"}, true)
	res.SSLGrade = GradeA
	// 85 - 2*5
	if got := CalculateScore(cfg, res); got != 75 {
		t.Errorf("expected 75, got %d", got)
	}
}

func TestCalculateScore_ExpiryPenalty(t *testing.T) {
	cfg := DefaultConfig()

	res := validResult(29, []string{}, true)
	res.SSLGrade = GradeB
	// 70 - 10
	if got := CalculateScore(cfg, res); got != 60 {
		t.Errorf("expected 60, got %d", got)
	}

	res = validResult(30, []string{}, true)
	res.SSLGrade = GradeB
	if got := CalculateScore(cfg, res); got != 70 {
		t.Errorf("expected 70 without expiry penalty, got %d", got)
	}
}

func TestCalculateScore_ClampedAtZero(t *testing.T) {
	cfg := DefaultConfig()

	missing := make([]string, len(SecurityHeaderCatalog))
	copy(missing, SecurityHeaderCatalog)
	res := validResult(5, missing, false)
	res.SSLGrade = GradeF
	// 10 - 6*5 - 10 would be negative
	if got := CalculateScore(cfg, res); got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}
}
