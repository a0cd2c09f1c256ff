package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"acuity-dashboard/internal/app/config"
	"acuity-dashboard/internal/app/contracts"
	"acuity-dashboard/internal/app/models"
	"acuity-dashboard/internal/pkg/constvars"
	"acuity-dashboard/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	scheduleBackendClientInstance contracts.ScheduleBackendClient
	onceScheduleBackendClient     sync.Once
)

type scheduleBackendClient struct {
	BaseUrl string
	APIKey  string
	Log     *zap.Logger
}

func NewScheduleBackendClient(backendConfig config.Backend, logger *zap.Logger) contracts.ScheduleBackendClient {
	onceScheduleBackendClient.Do(func() {
		client := &scheduleBackendClient{
			BaseUrl: backendConfig.BaseUrl,
			APIKey:  backendConfig.APIKey,
			Log:     logger,
		}
		scheduleBackendClientInstance = client
	})
	return scheduleBackendClientInstance
}

func (c *scheduleBackendClient) GetSchedule(ctx context.Context) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := c.BaseUrl + constvars.EndpointSchedule
	c.Log.Info("scheduleBackendClient.GetSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBackendUrlKey, url),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		c.Log.Error("scheduleBackendClient.GetSchedule error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBuildHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXAPIKey, c.APIKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("scheduleBackendClient.GetSchedule error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		c.Log.Error("scheduleBackendClient.GetSchedule backend returned non-2xx status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendBadStatus(resp.StatusCode)
	}

	var appointments []models.Appointment
	err = json.NewDecoder(resp.Body).Decode(&appointments)
	if err != nil {
		c.Log.Error("scheduleBackendClient.GetSchedule error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "schedule")
	}

	c.Log.Info("scheduleBackendClient.GetSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return appointments, nil
}

func (c *scheduleBackendClient) GetScheduleDiff(ctx context.Context) ([]models.HourlyDiff, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := c.BaseUrl + constvars.EndpointScheduleDiff
	c.Log.Info("scheduleBackendClient.GetScheduleDiff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBackendUrlKey, url),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		c.Log.Error("scheduleBackendClient.GetScheduleDiff error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBuildHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXAPIKey, c.APIKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("scheduleBackendClient.GetScheduleDiff error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		c.Log.Error("scheduleBackendClient.GetScheduleDiff backend returned non-2xx status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendBadStatus(resp.StatusCode)
	}

	var diffs []models.HourlyDiff
	err = json.NewDecoder(resp.Body).Decode(&diffs)
	if err != nil {
		c.Log.Error("scheduleBackendClient.GetScheduleDiff error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "schedule diff")
	}

	c.Log.Info("scheduleBackendClient.GetScheduleDiff succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDiffHourCountKey, len(diffs)),
	)
	return diffs, nil
}
