package schedule

import (
	"strconv"
	"time"

	"acuity-dashboard/internal/app/models"
	"acuity-dashboard/internal/pkg/dto/responses"
)

// BucketAppointmentsByHour groups appointments by the local hour of their
// start time. The hour key is the plain hour number without a leading zero
// ("9", "16"). Buckets appear in the order their hour is first seen and
// appointments keep their input order within a bucket. A nil input returns
// nil; an empty input returns an empty slice.
func BucketAppointmentsByHour(appointments []models.Appointment, location *time.Location) []responses.HourAppointments {
	if appointments == nil {
		return nil
	}

	buckets := make([]responses.HourAppointments, 0)
	indexByHour := make(map[string]int)
	for _, appointment := range appointments {
		hour := hourKey(appointment.StartTime.Time, location)
		index, seen := indexByHour[hour]
		if !seen {
			index = len(buckets)
			indexByHour[hour] = index
			buckets = append(buckets, responses.HourAppointments{Hour: hour})
		}
		buckets[index].Appointments = append(buckets[index].Appointments, appointment)
	}
	return buckets
}

// CountNonDummyByHour counts real appointments per local hour, skipping
// placeholder entries entirely. Hours with no real appointments get no entry.
func CountNonDummyByHour(appointments []models.Appointment, location *time.Location) []responses.HourCount {
	if appointments == nil {
		return nil
	}

	counts := make([]responses.HourCount, 0)
	indexByHour := make(map[string]int)
	for _, appointment := range appointments {
		if appointment.IsDummy() {
			continue
		}
		hour := hourKey(appointment.StartTime.Time, location)
		index, seen := indexByHour[hour]
		if !seen {
			index = len(counts)
			indexByHour[hour] = index
			counts = append(counts, responses.HourCount{Hour: hour})
		}
		counts[index].Count++
	}
	return counts
}

// CountForHour looks up the count for one hour key, zero when absent.
func CountForHour(counts []responses.HourCount, hour string) int {
	for _, count := range counts {
		if count.Hour == hour {
			return count.Count
		}
	}
	return 0
}

func hourKey(startTime time.Time, location *time.Location) string {
	return strconv.Itoa(startTime.In(location).Hour())
}
