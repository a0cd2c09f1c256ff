package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mountainTime(t *testing.T) *time.Location {
	t.Helper()
	location, err := time.LoadLocation("America/Denver")
	assert.NoError(t, err)
	return location
}

func TestWasTaken(t *testing.T) {
	hours := DefaultOpeningHours()
	location := mountainTime(t)

	t.Run("ExactlyAtLeadTimeBeforeOpening", func(t *testing.T) {
		// Monday opens 16:00, so the snapshot lands at 15:30.
		now := time.Date(2025, 6, 2, 15, 30, 0, 0, location)
		assert.Equal(t, time.Monday, now.Weekday())
		assert.True(t, WasTaken(now, hours))
	})

	t.Run("OneMinuteBeforeSnapshotTime", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 15, 29, 0, 0, location)
		assert.False(t, WasTaken(now, hours))
	})

	t.Run("WellAfterOpening", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 18, 45, 0, 0, location)
		assert.True(t, WasTaken(now, hours))
	})

	t.Run("EarlyMorningBeforeSnapshot", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 8, 0, 0, 0, location)
		assert.False(t, WasTaken(now, hours))
	})

	t.Run("ClosedDayIsAlwaysFalse", func(t *testing.T) {
		// Sundays are closed all day.
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, location)
		assert.Equal(t, time.Sunday, now.Weekday())
		assert.False(t, WasTaken(now, hours))
	})

	t.Run("SaturdayMorningWindow", func(t *testing.T) {
		// Saturday opens 10:00, snapshot at 09:30.
		before := time.Date(2025, 6, 7, 9, 29, 59, 0, location)
		at := time.Date(2025, 6, 7, 9, 30, 0, 0, location)
		assert.Equal(t, time.Saturday, at.Weekday())
		assert.False(t, WasTaken(before, hours))
		assert.True(t, WasTaken(at, hours))
	})

	t.Run("MissingDayCountsAsClosed", func(t *testing.T) {
		partial := OpeningHours{time.Monday: {Open: "16:00", Close: "20:00"}}
		now := time.Date(2025, 6, 3, 12, 0, 0, 0, location)
		assert.Equal(t, time.Tuesday, now.Weekday())
		assert.False(t, WasTaken(now, partial))
	})
}

func TestTimeFor(t *testing.T) {
	hours := DefaultOpeningHours()
	location := mountainTime(t)

	t.Run("WeekdaySnapshotTime", func(t *testing.T) {
		now := time.Date(2025, 6, 4, 9, 0, 0, 0, location)
		assert.Equal(t, "15:30", TimeFor(now, hours))
	})

	t.Run("FridayUsesFridayOpening", func(t *testing.T) {
		now := time.Date(2025, 6, 6, 9, 0, 0, 0, location)
		assert.Equal(t, time.Friday, now.Weekday())
		assert.Equal(t, "15:30", TimeFor(now, hours))
	})

	t.Run("SaturdaySnapshotTime", func(t *testing.T) {
		now := time.Date(2025, 6, 7, 9, 0, 0, 0, location)
		assert.Equal(t, "09:30", TimeFor(now, hours))
	})

	t.Run("ClosedDaySentinel", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 9, 0, 0, 0, location)
		assert.Equal(t, "Closed", TimeFor(now, hours))
	})
}

func TestOpeningHoursWeekdayAnchor(t *testing.T) {
	hours := DefaultOpeningHours()

	// The map is keyed by time.Weekday, whose zero value is Sunday. Pin that
	// here so a reordering of the defaults cannot silently shift the week.
	assert.True(t, hours.ClosedAllDay(time.Sunday))
	assert.False(t, hours.ClosedAllDay(time.Monday))
	assert.Equal(t, "10:00", hours[time.Saturday].Open)
	assert.Equal(t, "19:00", hours[time.Friday].Close)
}
