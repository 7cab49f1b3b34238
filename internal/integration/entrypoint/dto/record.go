// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/carbon-tracker/backend/internal/application/usecase/record"
)

// CreateRecordRequest represents the request body for carbon record creation.
// Amount stays a string end to end so non-numeric input reaches validation
// instead of failing JSON binding with an opaque error.
type CreateRecordRequest struct {
	RecordType  string  `json:"record_type" binding:"required,min=1,max=64"`
	Name        string  `json:"name,omitempty" binding:"omitempty,max=255"`
	Amount      string  `json:"amount" binding:"required"`
	Unit        string  `json:"unit" binding:"required,min=1,max=16"`
	Repetitions *int    `json:"repetitions,omitempty" binding:"omitempty,min=1"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

// UpdateRecordRequest represents the request body for carbon record update.
type UpdateRecordRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Amount      *string `json:"amount,omitempty"`
	Unit        *string `json:"unit,omitempty" binding:"omitempty,min=1,max=16"`
	Repetitions *int    `json:"repetitions,omitempty" binding:"omitempty,min=1"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

// RecordResponse represents a single carbon record in API responses.
type RecordResponse struct {
	ID          string  `json:"id"`
	ProfileUID  string  `json:"profile_uid"`
	RecordType  string  `json:"record_type"`
	Name        string  `json:"name"`
	Amount      string  `json:"amount"`
	Unit        string  `json:"unit"`
	Repetitions *int    `json:"repetitions,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	ItemUID     string  `json:"item_uid"`
	CachedTotal string  `json:"cached_total"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// RecordListResponse represents the response for listing carbon records.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
}

// DeleteRecordResponse reports the outcome of a deletion. remote_deleted is
// false when the footprint API deletion failed and the remote item may linger.
type DeleteRecordResponse struct {
	RemoteDeleted bool `json:"remote_deleted"`
}

// RefreshTotalsResponse reports the outcome of a bulk cached-total refresh.
type RefreshTotalsResponse struct {
	Refreshed int `json:"refreshed"`
	Failed    int `json:"failed"`
}

// ToRecordResponse converts a use case record output to a RecordResponse DTO.
func ToRecordResponse(r *record.RecordOutput) RecordResponse {
	return RecordResponse{
		ID:          r.ID.String(),
		ProfileUID:  r.ProfileUID,
		RecordType:  r.RecordType,
		Name:        r.Name,
		Amount:      r.Amount.String(),
		Unit:        r.Unit,
		Repetitions: r.Repetitions,
		StartDate:   formatDate(r.StartDate),
		EndDate:     formatDate(r.EndDate),
		ItemUID:     r.ItemUID,
		CachedTotal: r.CachedTotal.String(),
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToRecordListResponse converts use case record outputs to a RecordListResponse DTO.
func ToRecordListResponse(records []*record.RecordOutput) RecordListResponse {
	response := RecordListResponse{Records: make([]RecordResponse, len(records))}
	for i, r := range records {
		response.Records[i] = ToRecordResponse(r)
	}
	return response
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
