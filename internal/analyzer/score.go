package analyzer

// CalculateScore maps the result to a 0-100 score. Non-valid statuses get a
// fixed per-status score; valid certificates start from the grade's base
// score and take header and expiry penalties.
func CalculateScore(cfg *Config, res *Result) int {
	if score, ok := cfg.StatusScores[res.SSLStatus]; ok {
		return score
	}
	if res.SSLStatus != StatusValid {
		return 0
	}

	score := cfg.GradeScores[res.SSLGrade]
	score -= len(res.MissingSecurityHeaders) * cfg.HeaderPenalty
	if res.DaysUntilExpiry != nil && *res.DaysUntilExpiry < cfg.WarningExpiryDays {
		score -= cfg.ExpiryPenalty
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
