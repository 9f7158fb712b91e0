package scan

import (
	"encoding/json"
	"strings"

	"github.com/ceugb69-B/yen-tracker2/internal/core"
)

// ReconcileDraft turns raw model output into a usable draft. It never fails:
// missing, malformed, or non-JSON output yields the default draft, and
// individual fields fall back independently. A category outside the
// canonical set falls back to the default rather than inventing a new one,
// so the form's category selector always has a valid preselection.
func ReconcileDraft(raw string) core.Draft {
	draft := core.DefaultDraft()

	payload := extractJSON(raw)
	if payload == "" {
		return draft
	}

	var parsed struct {
		Item     string          `json:"item"`
		Amount   json.RawMessage `json:"amount"`
		Category string          `json:"category"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return draft
	}

	draft.Item = strings.TrimSpace(parsed.Item)

	if yen, ok := coerceAmount(parsed.Amount); ok && yen > 0 {
		draft.Amount = yen
	}

	if cat := core.Category(parsed.Category); cat.IsValid() {
		draft.Category = cat.Canonical()
	}

	return draft
}

// coerceAmount accepts both a JSON number and a stringified amount (models
// return either), normalized through the same yen parser as ingest.
func coerceAmount(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		if asNumber < 0 {
			return 0, false
		}
		return int64(asNumber), true
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if yen, err := core.ParseYen(asString); err == nil {
			return yen, true
		}
	}
	return 0, false
}

// extractJSON strips markdown code fences and isolates the first JSON object
// in the text. Models wrap their output in ```json fences or pad it with
// prose often enough that this cannot be skipped.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.Index(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
