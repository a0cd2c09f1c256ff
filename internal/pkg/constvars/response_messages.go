package constvars

const (
	ResponseScheduleFetched       = "Schedule fetched successfully"
	ResponseScheduleDiffFetched   = "Schedule diff fetched successfully"
	ResponseScheduleRefreshed     = "Schedule refreshed successfully"
	ResponseSnapshotStatusFetched = "Snapshot status fetched successfully"
	ResponseSnapshotTaken         = "Snapshot taken successfully"
	ResponseDummyOpeningsFetched  = "Dummy openings fetched successfully"
	ResponseDummiesCreated        = "Dummy appointments created successfully"
)
