// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarbonRecord is a locally persisted footprint record mirrored to the remote
// footprint API. ItemUID and CachedTotal are owned by the remote system; the
// local columns are copies kept in sync by the record use cases.
type CarbonRecord struct {
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

// NewCarbonRecord creates a new CarbonRecord entity.
func NewCarbonRecord(profileUID, recordType, name string, amount decimal.Decimal, unit string) *CarbonRecord {
	now := time.Now().UTC()

	return &CarbonRecord{
		ID:         uuid.New(),
		ProfileUID: profileUID,
		RecordType: recordType,
		Name:       name,
		Amount:     amount,
		Unit:       unit,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// EffectiveAmount computes the quantity submitted to the footprint API.
// An alternate unit takes priority: its conversion factor is applied and
// repetitions are ignored. Otherwise, when repetition mode is enabled and a
// repetition count is set, the amount is multiplied by it.
func (r *CarbonRecord) EffectiveAmount(category *Category, repetitionsEnabled bool) decimal.Decimal {
	if factor, ok := category.ConversionFactor(r.Unit); ok {
		return r.Amount.Mul(factor)
	}
	if repetitionsEnabled && r.Repetitions != nil {
		return r.Amount.Mul(decimal.NewFromInt(int64(*r.Repetitions)))
	}
	return r.Amount
}

// EffectiveUnitCode returns the unit code submitted to the footprint API:
// the conversion target for an alternate unit, the stored code otherwise.
func (r *CarbonRecord) EffectiveUnitCode(category *Category) string {
	if target, ok := category.ConvertsTo(r.Unit); ok {
		return target.Code()
	}
	return r.Unit
}

// TrackedFieldsChanged reports whether any field that the footprint API cares
// about differs from the previously loaded state. Untracked fields never
// trigger a remote update.
func (r *CarbonRecord) TrackedFieldsChanged(loaded *CarbonRecord) bool {
	if r.Name != loaded.Name || r.Unit != loaded.Unit {
		return true
	}
	if !r.Amount.Equal(loaded.Amount) {
		return true
	}
	return !intPtrEqual(r.Repetitions, loaded.Repetitions)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// RangesOverlap reports whether two date ranges overlap. Two ranges overlap
// unless one entirely precedes the other; exact end-to-start adjacency does
// not count as overlapping.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
