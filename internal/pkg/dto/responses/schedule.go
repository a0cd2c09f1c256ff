package responses

import (
	"time"

	"acuity-dashboard/internal/app/models"
)

// HourAppointments is one hour bucket: every appointment whose start time
// falls in that local hour, in original schedule order.
type HourAppointments struct {
	Hour         string               `json:"hour"`
	Appointments []models.Appointment `json:"appointments"`
}

// HourCount carries the non-placeholder appointment count for one hour. Hours
// with no real appointments are omitted entirely rather than listed as zero.
type HourCount struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

type ScheduleView struct {
	AppointmentsByHour []HourAppointments `json:"appointments_by_hour"`
	NonDummyByHour     []HourCount        `json:"non_dummy_by_hour"`
	FetchedAt          time.Time          `json:"fetched_at"`
}

type SnapshotStatus struct {
	Expected     bool   `json:"expected"`
	SnapshotTime string `json:"snapshot_time"`
}
