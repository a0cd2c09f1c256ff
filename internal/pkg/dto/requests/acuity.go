package requests

// CreateDummyAppointments is the POST /acuity/openings/dummy body. DateTime
// must match an opening returned by the backend for that day.
type CreateDummyAppointments struct {
	DateTime        string `json:"date_time" validate:"required"`
	NumAppointments int    `json:"num_appointments" validate:"required,min=1"`
}

// DummyOpeningsQuery mirrors the backend's query contract: today by default,
// or an explicit date.
type DummyOpeningsQuery struct {
	Today bool
	Date  string
}
