package poller

import (
	"context"
	"time"

	"acuity-dashboard/internal/app/contracts"
	"acuity-dashboard/internal/pkg/constvars"
	"acuity-dashboard/internal/pkg/utils"

	"go.uber.org/zap"
)

// Poller keeps the dashboard's schedule state warm: one full schedule fetch
// at startup, then a diff refresh immediately and on every interval tick. A
// failed refresh is logged and the previous state stays in place until the
// next tick.
type Poller struct {
	Schedule contracts.ScheduleUsecase
	Interval time.Duration
	Log      *zap.Logger
}

func New(scheduleUsecase contracts.ScheduleUsecase, interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{
		Schedule: scheduleUsecase,
		Interval: interval,
		Log:      logger,
	}
}

// Start launches the polling loop and returns a stop function. The stop
// function is safe to call more than once.
func (p *Poller) Start(ctx context.Context) func() {
	ctx, cancel := context.WithCancel(ctx)
	go p.run(ctx)
	return cancel
}

func (p *Poller) run(ctx context.Context) {
	p.Log.Info("poller started",
		zap.Duration(constvars.LoggingPollIntervalKey, p.Interval),
	)

	cycleCtx := p.cycleContext(ctx)
	if err := p.Schedule.RefreshSchedule(cycleCtx); err != nil {
		p.Log.Warn("poller initial schedule refresh failed, keeping empty state",
			zap.Error(err),
		)
	}
	p.refreshDiff(cycleCtx)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.Log.Info("poller stopped")
			return
		case <-ticker.C:
			p.refreshDiff(p.cycleContext(ctx))
		}
	}
}

func (p *Poller) refreshDiff(ctx context.Context) {
	if err := p.Schedule.RefreshDiff(ctx); err != nil {
		p.Log.Warn("poller diff refresh failed, keeping previous state",
			zap.Error(err),
		)
	}
}

// cycleContext tags each polling cycle with its own request id so backend
// calls from one cycle correlate in the logs.
func (p *Poller) cycleContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
}
