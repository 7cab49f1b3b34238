// Package adapters provides implementations for external service integrations.
package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// FootprintService implements adapter.FootprintService against the remote
// footprint accounting API over HTTP/JSON.
type FootprintService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewFootprintService creates a new footprint API client.
func NewFootprintService(baseURL, apiKey string, timeout time.Duration) *FootprintService {
	return &FootprintService{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// itemPayload is the wire format for item create/update requests.
type itemPayload struct {
	DataItemUID string `json:"dataItemUid,omitempty"`
	Name        string `json:"name"`
	Field       string `json:"field"`
	Amount      string `json:"amount"`
	Unit        string `json:"unit"`
}

// itemResponse is the wire format for item responses. TotalAmount is decoded
// with shopspring/decimal, which accepts both JSON numbers and strings.
type itemResponse struct {
	UID         string          `json:"uid"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// drillResponse is the wire format for drill-down resolutions.
type drillResponse struct {
	DataItemUID string `json:"dataItemUid"`
}

// CreateItem creates a profile item under the category path.
func (s *FootprintService) CreateItem(ctx context.Context, profileUID, categoryPath string, req adapter.FootprintItemRequest) (*adapter.FootprintItem, error) {
	url := fmt.Sprintf("%s/profiles/%s/items?category=%s", s.baseURL, profileUID, categoryPath)
	return s.submitItem(ctx, http.MethodPost, url, req)
}

// UpdateItem re-submits the field values of an existing profile item.
func (s *FootprintService) UpdateItem(ctx context.Context, profileUID, itemUID string, req adapter.FootprintItemRequest) (*adapter.FootprintItem, error) {
	url := fmt.Sprintf("%s/profiles/%s/items/%s", s.baseURL, profileUID, itemUID)
	return s.submitItem(ctx, http.MethodPut, url, req)
}

// DeleteItem removes a profile item.
func (s *FootprintService) DeleteItem(ctx context.Context, profileUID, itemUID string) error {
	url := fmt.Sprintf("%s/profiles/%s/items/%s", s.baseURL, profileUID, itemUID)

	resp, err := s.do(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	return s.checkStatus(resp)
}

// FetchItem retrieves a profile item and its current computed total.
func (s *FootprintService) FetchItem(ctx context.Context, profileUID, itemUID string) (*adapter.FootprintItem, error) {
	url := fmt.Sprintf("%s/profiles/%s/items/%s", s.baseURL, profileUID, itemUID)

	resp, err := s.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := s.checkStatus(resp); err != nil {
		return nil, err
	}

	return decodeItem(resp.Body)
}

// DrillDown resolves a drill-down selector to a concrete data item UID.
func (s *FootprintService) DrillDown(ctx context.Context, drillPath string) (string, error) {
	resp, err := s.do(ctx, http.MethodGet, s.baseURL+drillPath, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := s.checkStatus(resp); err != nil {
		return "", err
	}

	var drill drillResponse
	if err := json.NewDecoder(resp.Body).Decode(&drill); err != nil {
		return "", domainerror.NewFootprintError(
			domainerror.ErrCodeDrillDownFailed,
			"failed to decode drill-down response",
			err,
		)
	}
	if drill.DataItemUID == "" {
		return "", domainerror.NewFootprintError(
			domainerror.ErrCodeDrillDownFailed,
			"drill-down path "+drillPath+" did not resolve to a data item",
			domainerror.ErrDrillDownFailed,
		)
	}

	return drill.DataItemUID, nil
}

func (s *FootprintService) submitItem(ctx context.Context, method, url string, req adapter.FootprintItemRequest) (*adapter.FootprintItem, error) {
	payload := itemPayload{
		DataItemUID: req.DataItemUID,
		Name:        req.Name,
		Field:       req.FieldName,
		Amount:      req.Amount.String(),
		Unit:        req.UnitCode,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item payload: %w", err)
	}

	resp, err := s.do(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := s.checkStatus(resp); err != nil {
		return nil, err
	}

	return decodeItem(resp.Body)
}

func (s *FootprintService) do(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build footprint request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, domainerror.NewFootprintError(
			domainerror.ErrCodeFootprintUnavailable,
			"footprint api request failed",
			err,
		)
	}

	return resp, nil
}

func (s *FootprintService) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Bounded read keeps a hostile response from ballooning the error message.
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	if resp.StatusCode == http.StatusNotFound {
		return domainerror.NewFootprintError(
			domainerror.ErrCodeFootprintItemNotFound,
			"footprint api returned 404",
			domainerror.ErrFootprintItemNotFound,
		)
	}

	return domainerror.NewFootprintError(
		domainerror.ErrCodeFootprintRequestFailed,
		fmt.Sprintf("footprint api returned %d: %s", resp.StatusCode, string(detail)),
		domainerror.ErrFootprintRequestFailed,
	)
}

func decodeItem(body io.Reader) (*adapter.FootprintItem, error) {
	var item itemResponse
	if err := json.NewDecoder(body).Decode(&item); err != nil {
		return nil, domainerror.NewFootprintError(
			domainerror.ErrCodeFootprintRequestFailed,
			"failed to decode footprint item response",
			err,
		)
	}

	return &adapter.FootprintItem{
		UID:         item.UID,
		TotalAmount: item.TotalAmount,
	}, nil
}
