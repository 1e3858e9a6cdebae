package analyzer

// MapBusinessImpact looks up the estimated annual revenue loss, SEO impact
// and user trust impact for a grade. Static table lookup, no computation.
func MapBusinessImpact(cfg *Config, grade Grade) BusinessImpact {
	return BusinessImpact{
		RevenueLossAnnual: cfg.RevenueLossPerGrade[grade],
		SEOImpact:         cfg.SEOImpactPerGrade[grade],
		UserTrustImpact:   cfg.TrustImpactPerGrade[grade],
	}
}
