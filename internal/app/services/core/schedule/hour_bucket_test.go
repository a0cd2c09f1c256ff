package schedule

import (
	"testing"
	"time"

	"acuity-dashboard/internal/app/models"
	"acuity-dashboard/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
)

func appointmentAt(t *testing.T, firstName string, value string) models.Appointment {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	assert.NoError(t, err)
	return models.Appointment{
		ID:        firstName + "-" + value,
		FirstName: firstName,
		LastName:  "Tester",
		StartTime: models.Timestamp{Time: parsed},
	}
}

func TestBucketAppointmentsByHour(t *testing.T) {
	location, err := time.LoadLocation("America/Denver")
	assert.NoError(t, err)

	t.Run("NilInputStaysNil", func(t *testing.T) {
		assert.Nil(t, BucketAppointmentsByHour(nil, location))
	})

	t.Run("EmptyInputYieldsEmptySlice", func(t *testing.T) {
		buckets := BucketAppointmentsByHour([]models.Appointment{}, location)
		assert.NotNil(t, buckets)
		assert.Empty(t, buckets)
	})

	t.Run("BucketsKeepFirstSeenOrder", func(t *testing.T) {
		appointments := []models.Appointment{
			appointmentAt(t, "Ada", "2025-06-02T17:00:00-06:00"),
			appointmentAt(t, "Ben", "2025-06-02T16:15:00-06:00"),
			appointmentAt(t, "Cal", "2025-06-02T17:30:00-06:00"),
		}

		buckets := BucketAppointmentsByHour(appointments, location)
		assert.Len(t, buckets, 2)
		assert.Equal(t, "17", buckets[0].Hour)
		assert.Equal(t, "16", buckets[1].Hour)
		assert.Len(t, buckets[0].Appointments, 2)
		assert.Equal(t, "Ada", buckets[0].Appointments[0].FirstName)
		assert.Equal(t, "Cal", buckets[0].Appointments[1].FirstName)
	})

	t.Run("HourKeyHasNoLeadingZero", func(t *testing.T) {
		appointments := []models.Appointment{
			appointmentAt(t, "Ada", "2025-06-07T09:30:00-06:00"),
		}

		buckets := BucketAppointmentsByHour(appointments, location)
		assert.Len(t, buckets, 1)
		assert.Equal(t, "9", buckets[0].Hour)
	})

	t.Run("HourFollowsTheGivenLocation", func(t *testing.T) {
		// 16:00 in Denver is 22:00 UTC; the bucket must follow the location
		// passed in, not the timestamp's own zone.
		appointments := []models.Appointment{
			appointmentAt(t, "Ada", "2025-06-02T22:00:00Z"),
		}

		denver := BucketAppointmentsByHour(appointments, location)
		utc := BucketAppointmentsByHour(appointments, time.UTC)
		assert.Equal(t, "16", denver[0].Hour)
		assert.Equal(t, "22", utc[0].Hour)
	})
}

func TestCountNonDummyByHour(t *testing.T) {
	location, err := time.LoadLocation("America/Denver")
	assert.NoError(t, err)

	t.Run("PlaceholdersAreSkipped", func(t *testing.T) {
		appointments := []models.Appointment{
			appointmentAt(t, "Dummy", "2025-06-02T16:00:00-06:00"),
			appointmentAt(t, "Ada", "2025-06-02T16:15:00-06:00"),
			appointmentAt(t, "Dummy", "2025-06-02T17:00:00-06:00"),
		}

		counts := CountNonDummyByHour(appointments, location)
		assert.Len(t, counts, 1)
		assert.Equal(t, "16", counts[0].Hour)
		assert.Equal(t, 1, counts[0].Count)
	})

	t.Run("MatchIsCaseSensitiveAndExact", func(t *testing.T) {
		appointments := []models.Appointment{
			appointmentAt(t, "dummy", "2025-06-02T16:00:00-06:00"),
			appointmentAt(t, "Dummy Jones", "2025-06-02T16:10:00-06:00"),
		}

		counts := CountNonDummyByHour(appointments, location)
		assert.Len(t, counts, 1)
		assert.Equal(t, 2, counts[0].Count)
	})

	t.Run("AllPlaceholdersYieldsEmptySlice", func(t *testing.T) {
		appointments := []models.Appointment{
			appointmentAt(t, "Dummy", "2025-06-02T16:00:00-06:00"),
		}

		counts := CountNonDummyByHour(appointments, location)
		assert.NotNil(t, counts)
		assert.Empty(t, counts)
	})

	t.Run("NilInputStaysNil", func(t *testing.T) {
		assert.Nil(t, CountNonDummyByHour(nil, location))
	})
}

func TestCountForHour(t *testing.T) {
	counts := []responses.HourCount{
		{Hour: "16", Count: 3},
		{Hour: "17", Count: 1},
	}

	assert.Equal(t, 3, CountForHour(counts, "16"))
	assert.Equal(t, 1, CountForHour(counts, "17"))
	assert.Equal(t, 0, CountForHour(counts, "18"))
	assert.Equal(t, 0, CountForHour(nil, "16"))
}
