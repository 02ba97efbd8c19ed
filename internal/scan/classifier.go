// Package scan enumerates Cline task folders and decodes their metadata and
// message logs into usage events.
package scan

import (
	"encoding/json"
	"strings"

	"github.com/mwaldt/clinespend/internal/models"
)

// ProviderID is the provider whose tasks are counted. Tasks billed through
// any other provider are excluded.
const ProviderID = "claude-code"

type usageRecord struct {
	ProviderID string `json:"model_provider_id"`
	ModelID    string `json:"model_id"`
}

type taskMetadata struct {
	ModelUsage []usageRecord `json:"model_usage"`
}

// tierPrefixes is checked in order, more specific ids before generic ones.
var tierPrefixes = []struct {
	prefix string
	tier   models.ModelTier
}{
	{"claude-sonnet-4", models.TierSonnet4},
	{"claude-opus-4", models.TierOpus4},
	{"claude-3-7-sonnet", models.TierSonnet37},
	{"claude-3-5-sonnet", models.TierSonnet35},
	{"claude-3-5-haiku", models.TierHaiku35},
}

// Classify inspects a raw task_metadata.json document and reports whether
// the task belongs to the target provider, and under which tier. The first
// usage record matching the provider decides the tier. Malformed metadata
// means excluded, never an error.
func Classify(metadata []byte) (models.ModelTier, bool) {
	var meta taskMetadata
	if err := json.Unmarshal(metadata, &meta); err != nil {
		return models.TierOther, false
	}
	for _, rec := range meta.ModelUsage {
		if rec.ProviderID == ProviderID {
			return ClassifyModelID(rec.ModelID), true
		}
	}
	return models.TierOther, false
}

// ClassifyModelID maps a model identifier to its pricing tier by ordered
// prefix match.
func ClassifyModelID(id string) models.ModelTier {
	for _, p := range tierPrefixes {
		if strings.HasPrefix(id, p.prefix) {
			return p.tier
		}
	}
	return models.TierOther
}
