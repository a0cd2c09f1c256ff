package schedule

import (
	"context"
	"sync"
	"time"

	"acuity-dashboard/internal/app/contracts"
	"acuity-dashboard/internal/app/models"
	"acuity-dashboard/internal/app/services/core/snapshot"
	"acuity-dashboard/internal/pkg/constvars"
	"acuity-dashboard/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

var (
	scheduleUsecaseInstance contracts.ScheduleUsecase
	onceScheduleUsecase     sync.Once
)

type scheduleUsecase struct {
	ScheduleClient contracts.ScheduleBackendClient
	OpeningHours   snapshot.OpeningHours
	Location       *time.Location
	Log            *zap.Logger

	mu           sync.Mutex
	appointments []models.Appointment
	fetched      bool
	fetchedAt    time.Time
	diff         []models.HourlyDiff
	diffFetched  bool
}

func NewScheduleUsecase(
	scheduleClient contracts.ScheduleBackendClient,
	openingHours snapshot.OpeningHours,
	location *time.Location,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	onceScheduleUsecase.Do(func() {
		scheduleUsecaseInstance = &scheduleUsecase{
			ScheduleClient: scheduleClient,
			OpeningHours:   openingHours,
			Location:       location,
			Log:            logger,
		}
	})
	return scheduleUsecaseInstance
}

func (u *scheduleUsecase) RefreshSchedule(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("scheduleUsecase.RefreshSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := u.ScheduleClient.GetSchedule(ctx)
	if err != nil {
		u.Log.Error("scheduleUsecase.RefreshSchedule error fetching schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}

	u.mu.Lock()
	u.appointments = appointments
	u.fetched = true
	u.fetchedAt = time.Now().In(u.Location)
	u.mu.Unlock()

	u.Log.Info("scheduleUsecase.RefreshSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return nil
}

func (u *scheduleUsecase) RefreshDiff(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("scheduleUsecase.RefreshDiff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	diff, err := u.ScheduleClient.GetScheduleDiff(ctx)
	if err != nil {
		u.Log.Error("scheduleUsecase.RefreshDiff error fetching diff",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if diff == nil {
		diff = []models.HourlyDiff{}
	}

	u.mu.Lock()
	u.diff = diff
	u.diffFetched = true
	u.mu.Unlock()

	u.Log.Info("scheduleUsecase.RefreshDiff succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDiffHourCountKey, len(diff)),
	)
	return nil
}

func (u *scheduleUsecase) CurrentSchedule(ctx context.Context) *responses.ScheduleView {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.fetched {
		return nil
	}
	return &responses.ScheduleView{
		AppointmentsByHour: BucketAppointmentsByHour(u.appointments, u.Location),
		NonDummyByHour:     CountNonDummyByHour(u.appointments, u.Location),
		FetchedAt:          u.fetchedAt,
	}
}

func (u *scheduleUsecase) CurrentDiff(ctx context.Context) []models.HourlyDiff {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.diffFetched {
		return nil
	}
	return u.diff
}

func (u *scheduleUsecase) SnapshotStatus(ctx context.Context) responses.SnapshotStatus {
	now := time.Now().In(u.Location)
	return responses.SnapshotStatus{
		Expected:     snapshot.WasTaken(now, u.OpeningHours),
		SnapshotTime: snapshot.TimeFor(now, u.OpeningHours),
	}
}
