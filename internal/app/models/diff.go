package models

// HourlyDiff is one hour's worth of schedule changes computed by the backend
// since its last snapshot. The client consumes it opaquely.
type HourlyDiff struct {
	Hour    string        `json:"hour"`
	Added   []Appointment `json:"added"`
	Deleted []Appointment `json:"deleted"`
}
