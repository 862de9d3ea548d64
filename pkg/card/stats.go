package card

import (
	"encoding/json"
	"fmt"
	"strings"

	"cardsmith/pkg/schema"
	"cardsmith/pkg/utils"
)

// ParseStats decodes raw text-model output into CardStats.
// The output may be wrapped in a markdown code fence. Every stat field must be
// present and of the right JSON type; numeric ranges are not enforced.
func ParseStats(raw string) (schema.CardStats, error) {
	trimmed := strings.TrimSpace(raw)
	cleaned := []byte(utils.CleanJSON(trimmed))

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(cleaned, &fields); err != nil {
		return schema.CardStats{}, &ModelOutputError{Raw: trimmed, Err: err}
	}

	var missing []string
	for _, name := range schema.StatFields {
		if v, ok := fields[name]; !ok || string(v) == "null" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return schema.CardStats{}, &ModelOutputError{
			Raw: trimmed,
			Err: fmt.Errorf("missing fields: %s", strings.Join(missing, ", ")),
		}
	}

	var stats schema.CardStats
	if err := json.Unmarshal(cleaned, &stats); err != nil {
		return schema.CardStats{}, &ModelOutputError{Raw: trimmed, Err: err}
	}
	return stats, nil
}
