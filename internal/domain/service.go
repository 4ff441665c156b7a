package domain

// serviceLabels maps the service keys accepted by the booking form to their
// human-readable names. Built once, read-only afterwards, so it is safe to
// share across concurrent requests without locking.
var serviceLabels = map[string]string{
	"training":              "Individual Training",
	"consulting":            "Business Consulting",
	"team-training":         "Team Training",
	"bi-setup":              "BI Implementation",
	"data-audit":            "Data Audit",
	"monitoring-evaluation": "Monitoring & Evaluation",
}

// ServiceLabel resolves a service key to its display name. Unrecognized keys
// are passed through verbatim: the booking endpoint rejects a *missing*
// service but deliberately accepts an unknown one (observed behavior, kept
// pending product-owner confirmation).
func ServiceLabel(key string) string {
	if label, ok := serviceLabels[key]; ok {
		return label
	}
	return key
}

// ServiceKeys returns the recognized service keys in display order.
func ServiceKeys() []string {
	return []string{
		"training",
		"consulting",
		"team-training",
		"bi-setup",
		"data-audit",
		"monitoring-evaluation",
	}
}
