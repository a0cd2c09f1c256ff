package responses

import (
	"time"

	"github.com/goccy/go-json"
)

// DummyOpening decorates a backend opening with its local hour and the number
// of dummies the dashboard suggests creating for it.
type DummyOpening struct {
	Time             time.Time `json:"time"`
	Hour             string    `json:"hour"`
	SlotsAvailable   int       `json:"slots_available"`
	SuggestedDummies int       `json:"suggested_dummies"`
}

type CreateDummiesResult struct {
	DateTime        string          `json:"date_time"`
	NumRequested    int             `json:"num_requested"`
	NumCreated      int             `json:"num_created"`
	BackendResponse json.RawMessage `json:"backend_response,omitempty"`
}
