// Package record contains carbon record-related use cases.
package record

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// RecordOutput represents a carbon record in use case outputs.
type RecordOutput struct {
	ID          uuid.UUID
	ProfileUID  string
	RecordType  string
	Name        string
	Amount      decimal.Decimal
	Unit        string
	Repetitions *int
	StartDate   *time.Time
	EndDate     *time.Time
	ItemUID     string
	CachedTotal decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toRecordOutput(r *entity.CarbonRecord) *RecordOutput {
	return &RecordOutput{
		ID:          r.ID,
		ProfileUID:  r.ProfileUID,
		RecordType:  r.RecordType,
		Name:        r.Name,
		Amount:      r.Amount,
		Unit:        r.Unit,
		Repetitions: r.Repetitions,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		ItemUID:     r.ItemUID,
		CachedTotal: r.CachedTotal,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
