package models

import "acuity-dashboard/internal/pkg/constvars"

// Appointment is one record from the scheduling backend's /schedule payload.
// Only the identity, name and start time matter to the aggregation core; the
// remaining fields are carried through for display.
type Appointment struct {
	ID              string    `json:"id"`
	AcuityID        int64     `json:"acuity_id,omitempty"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	StartTime       Timestamp `json:"start_time"`
	Duration        int       `json:"duration,omitempty"`
	AcuityCreatedAt Timestamp `json:"acuity_created_at,omitempty"`
	LastModified    Timestamp `json:"last_modified_here,omitempty"`
	IsCanceled      bool      `json:"is_canceled,omitempty"`
}

// IsDummy reports whether this is a placeholder appointment created purely to
// block a schedule slot. The reserved first name is matched exactly.
func (a Appointment) IsDummy() bool {
	return a.FirstName == constvars.DummyFirstName
}
