package models

// DummyOpening is one open dummy-appointment slot as reported by the backend.
type DummyOpening struct {
	Time           Timestamp `json:"time"`
	SlotsAvailable int       `json:"slotsAvailable"`
}
