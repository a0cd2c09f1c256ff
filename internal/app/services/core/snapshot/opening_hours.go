package snapshot

import (
	"time"

	"acuity-dashboard/internal/pkg/constvars"
)

// DayHours is one day's opening window, both bounds in the local "15:04"
// clock form. A day with Open and Close both "00:00" is closed all day.
type DayHours struct {
	Open  string
	Close string
}

// OpeningHours maps weekdays to their opening window. Keys follow
// time.Weekday, so Sunday is 0.
type OpeningHours map[time.Weekday]DayHours

// DefaultOpeningHours returns the scheduling center's standard week.
func DefaultOpeningHours() OpeningHours {
	return OpeningHours{
		time.Sunday:    {Open: "00:00", Close: "00:00"},
		time.Monday:    {Open: "16:00", Close: "20:00"},
		time.Tuesday:   {Open: "16:00", Close: "20:00"},
		time.Wednesday: {Open: "16:00", Close: "20:00"},
		time.Thursday:  {Open: "16:00", Close: "20:00"},
		time.Friday:    {Open: "16:00", Close: "19:00"},
		time.Saturday:  {Open: "10:00", Close: "13:00"},
	}
}

// ClosedAllDay reports whether the center never opens on the given weekday.
// Missing days count as closed.
func (h OpeningHours) ClosedAllDay(day time.Weekday) bool {
	dayHours, ok := h[day]
	if !ok {
		return true
	}
	return dayHours.Open == "00:00" && dayHours.Close == "00:00"
}

// OpeningAt returns the moment the center opens on the calendar day of the
// given time, in that time's location. The second return is false when the
// center is closed that day or the configured clock value cannot be parsed.
func (h OpeningHours) OpeningAt(moment time.Time) (time.Time, bool) {
	day := moment.Weekday()
	if h.ClosedAllDay(day) {
		return time.Time{}, false
	}

	clock, err := time.Parse(constvars.TimeLayoutHourMinute, h[day].Open)
	if err != nil {
		return time.Time{}, false
	}

	year, month, dayOfMonth := moment.Date()
	openAt := time.Date(year, month, dayOfMonth, clock.Hour(), clock.Minute(), 0, 0, moment.Location())
	return openAt, true
}
