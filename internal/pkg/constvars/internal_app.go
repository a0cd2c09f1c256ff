package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
)

// Placeholder appointments are created under this reserved first name to block
// schedule slots. The match is exact and case-sensitive.
const DummyFirstName = "Dummy"

// Backend API paths, relative to the configured base URL.
const (
	EndpointSchedule      = "/schedule"
	EndpointScheduleDiff  = "/schedule/diff"
	EndpointSnapshot      = "/acuity/snapshot"
	EndpointDummyOpenings = "/acuity/openings/dummy"
)

const (
	QueryParamToday = "today"
	QueryParamDate  = "date"
)

// MaxDummyAppointmentsPerSlot caps how many placeholder appointments a single
// request may create for one slot.
const MaxDummyAppointmentsPerSlot = 4

const (
	TimeLayoutAcuity     = "2006-01-02T15:04:05-0700"
	TimeLayoutNaive      = "2006-01-02T15:04:05"
	TimeLayoutHourMinute = "15:04"
	TimeLayoutDateOnly   = "2006-01-02"
)

// SnapshotClosedSentinel is returned by the snapshot time accessor on a day
// the center is closed all day.
const SnapshotClosedSentinel = "Closed"

const ResponseUnknown = "unknown"
