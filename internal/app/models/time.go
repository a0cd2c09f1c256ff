package models

import (
	"fmt"
	"strings"
	"time"

	"acuity-dashboard/internal/pkg/constvars"
)

// Timestamp wraps time.Time to accept the timestamp variants the scheduling
// backend emits: RFC3339, the Acuity "-0700" zone form, and zone-less values.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339,
	constvars.TimeLayoutAcuity,
	constvars.TimeLayoutNaive,
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format: %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Time.Format(time.RFC3339) + `"`), nil
}
