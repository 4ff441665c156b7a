package domain_test

import (
	"testing"

	"go-rotech-website/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestServiceLabelKnownKeys(t *testing.T) {
	expected := map[string]string{
		"training":              "Individual Training",
		"consulting":            "Business Consulting",
		"team-training":         "Team Training",
		"bi-setup":              "BI Implementation",
		"data-audit":            "Data Audit",
		"monitoring-evaluation": "Monitoring & Evaluation",
	}

	for key, label := range expected {
		assert.Equal(t, label, domain.ServiceLabel(key))
	}
}

func TestServiceLabelUnknownKeyPassesThrough(t *testing.T) {
	assert.Equal(t, "devops", domain.ServiceLabel("devops"))
	assert.Equal(t, "", domain.ServiceLabel(""))
}

func TestServiceKeysCoverCatalog(t *testing.T) {
	keys := domain.ServiceKeys()
	assert.Len(t, keys, 6)
	for _, key := range keys {
		// Every advertised key must resolve to a real label, not fall
		// through to the raw value.
		assert.NotEqual(t, key, domain.ServiceLabel(key))
	}
}
