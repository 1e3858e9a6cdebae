package analyzer

// CalculateGrade maps an assembled result to a letter grade using an
// ordered decision table. The first matching status rule wins; only valid
// certificates go through the downgrade cascade.
//
// The cascade is deliberately non-additive: a single missing critical
// header only downgrades a grade that is still A. Once an earlier rule has
// already moved the grade below A, that branch does nothing.
func CalculateGrade(cfg *Config, res *Result) Grade {
	switch res.SSLStatus {
	case StatusNoSSL, StatusConnectionError:
		return GradeF
	case StatusExpired, StatusVerifyFailed:
		return GradeF
	case StatusSelfSigned:
		return GradeD
	}

	grade := GradeA

	if res.DaysUntilExpiry != nil && *res.DaysUntilExpiry < cfg.WarningExpiryDays {
		grade = GradeB
	}

	switch missing := countMissingCritical(res.MissingSecurityHeaders); {
	case missing >= 3:
		grade = GradeC
	case missing >= 2:
		grade = GradeB
	case missing >= 1:
		if grade == GradeA {
			grade = GradeB
		}
	}

	// A+ requires a clean sweep: nothing missing and HSTS actually served.
	if grade == GradeA && len(res.MissingSecurityHeaders) == 0 && res.HSTSEnabled {
		grade = GradeAPlus
	}

	return grade
}

func countMissingCritical(missing []string) int {
	count := 0
	for _, name := range missing {
		for _, critical := range CriticalSecurityHeaders {
			if name == critical {
				count++
				break
			}
		}
	}
	return count
}
