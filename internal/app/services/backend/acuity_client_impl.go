package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"acuity-dashboard/internal/app/config"
	"acuity-dashboard/internal/app/contracts"
	"acuity-dashboard/internal/app/models"
	"acuity-dashboard/internal/pkg/constvars"
	"acuity-dashboard/internal/pkg/dto/requests"
	"acuity-dashboard/internal/pkg/exceptions"

	goccy "github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	acuityBackendClientInstance contracts.AcuityBackendClient
	onceAcuityBackendClient     sync.Once
)

type acuityBackendClient struct {
	BaseUrl string
	APIKey  string
	Log     *zap.Logger
}

func NewAcuityBackendClient(backendConfig config.Backend, logger *zap.Logger) contracts.AcuityBackendClient {
	onceAcuityBackendClient.Do(func() {
		client := &acuityBackendClient{
			BaseUrl: backendConfig.BaseUrl,
			APIKey:  backendConfig.APIKey,
			Log:     logger,
		}
		acuityBackendClientInstance = client
	})
	return acuityBackendClientInstance
}

func (c *acuityBackendClient) TakeSnapshot(ctx context.Context) (goccy.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	snapshotUrl := c.BaseUrl + constvars.EndpointSnapshot
	c.Log.Info("acuityBackendClient.TakeSnapshot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBackendUrlKey, snapshotUrl),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, snapshotUrl, nil)
	if err != nil {
		c.Log.Error("acuityBackendClient.TakeSnapshot error creating HTTP request",
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
		c.Log.Error("acuityBackendClient.TakeSnapshot error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		c.Log.Error("acuityBackendClient.TakeSnapshot backend returned non-2xx status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendBadStatus(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("acuityBackendClient.TakeSnapshot error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "snapshot")
	}

	c.Log.Info("acuityBackendClient.TakeSnapshot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return goccy.RawMessage(body), nil
}

func (c *acuityBackendClient) GetDummyOpenings(ctx context.Context, query *requests.DummyOpeningsQuery) ([]models.DummyOpening, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	params := url.Values{}
	if query.Date != "" {
		params.Set(constvars.QueryParamDate, query.Date)
	} else {
		params.Set(constvars.QueryParamToday, strconv.FormatBool(true))
	}
	openingsUrl := c.BaseUrl + constvars.EndpointDummyOpenings + "?" + params.Encode()
	c.Log.Info("acuityBackendClient.GetDummyOpenings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBackendUrlKey, openingsUrl),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, openingsUrl, nil)
	if err != nil {
		c.Log.Error("acuityBackendClient.GetDummyOpenings error creating HTTP request",
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
		c.Log.Error("acuityBackendClient.GetDummyOpenings error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		c.Log.Error("acuityBackendClient.GetDummyOpenings backend returned non-2xx status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendBadStatus(resp.StatusCode)
	}

	var openings []models.DummyOpening
	err = json.NewDecoder(resp.Body).Decode(&openings)
	if err != nil {
		c.Log.Error("acuityBackendClient.GetDummyOpenings error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "dummy openings")
	}

	c.Log.Info("acuityBackendClient.GetDummyOpenings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOpeningCountKey, len(openings)),
	)
	return openings, nil
}

func (c *acuityBackendClient) CreateDummyAppointments(ctx context.Context, request *requests.CreateDummyAppointments) (goccy.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	createUrl := c.BaseUrl + constvars.EndpointDummyOpenings
	c.Log.Info("acuityBackendClient.CreateDummyAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBackendUrlKey, createUrl),
		zap.String(constvars.LoggingDateTimeKey, request.DateTime),
		zap.Int(constvars.LoggingNumAppointmentsKey, request.NumAppointments),
	)

	payload, err := goccy.Marshal(request)
	if err != nil {
		c.Log.Error("acuityBackendClient.CreateDummyAppointments error marshaling request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, createUrl, bytes.NewBuffer(payload))
	if err != nil {
		c.Log.Error("acuityBackendClient.CreateDummyAppointments error creating HTTP request",
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
		c.Log.Error("acuityBackendClient.CreateDummyAppointments error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		c.Log.Error("acuityBackendClient.CreateDummyAppointments backend returned non-2xx status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrBackendBadStatus(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("acuityBackendClient.CreateDummyAppointments error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, "dummy appointments")
	}

	c.Log.Info("acuityBackendClient.CreateDummyAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return goccy.RawMessage(body), nil
}
