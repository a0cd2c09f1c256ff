package snapshot

import (
	"time"

	"acuity-dashboard/internal/pkg/constvars"
)

// SnapshotLeadTime is how far ahead of opening the backend takes its daily
// snapshot of the schedule.
const SnapshotLeadTime = 30 * time.Minute

// WasTaken reports whether today's backend snapshot should exist as of the
// given moment: true from exactly SnapshotLeadTime before opening onward,
// false before that and on days the center is closed.
func WasTaken(now time.Time, hours OpeningHours) bool {
	openAt, ok := hours.OpeningAt(now)
	if !ok {
		return false
	}
	return !now.Before(openAt.Add(-SnapshotLeadTime))
}

// TimeFor returns the clock time of today's snapshot in "15:04" form, or the
// closed sentinel on a day with no opening.
func TimeFor(now time.Time, hours OpeningHours) string {
	openAt, ok := hours.OpeningAt(now)
	if !ok {
		return constvars.SnapshotClosedSentinel
	}
	return openAt.Add(-SnapshotLeadTime).Format(constvars.TimeLayoutHourMinute)
}
