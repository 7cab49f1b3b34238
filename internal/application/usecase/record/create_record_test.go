// Package record contains carbon record-related use cases.
package record

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

func TestCreateRecord_Success(t *testing.T) {
	repo := newFakeRecordRepository()
	footprint := newFakeFootprintService()
	cache := newFakeDrilldownCache()
	uc := NewCreateRecordUseCase(repo, footprint, cache, entity.DefaultCatalog())

	reps := 4
	output, err := uc.Execute(context.Background(), CreateRecordInput{
		ProfileUID:  "profile-1",
		RecordType:  "waste",
		Name:        "weekly bins",
		Amount:      "3",
		Unit:        "kg",
		Repetitions: &reps,
	})
	require.NoError(t, err)

	assert.Equal(t, "item-uid-1", output.Record.ItemUID)
	assert.True(t, output.Record.CachedTotal.Equal(decimal.RequireFromString("42.5")))

	require.Len(t, footprint.createCalls, 1)
	req := footprint.createCalls[0]
	assert.Equal(t, "data-item-uid-1", req.DataItemUID)
	assert.Equal(t, "mass", req.FieldName)
	assert.Equal(t, "kg", req.UnitCode)
	// Repetition mode multiplies the submitted amount.
	assert.True(t, req.Amount.Equal(decimal.RequireFromString("12")))

	stored, err := repo.FindByID(context.Background(), output.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, "item-uid-1", stored.ItemUID)
}

func TestCreateRecord_AlternateUnit(t *testing.T) {
	repo := newFakeRecordRepository()
	footprint := newFakeFootprintService()
	cache := newFakeDrilldownCache()
	uc := NewCreateRecordUseCase(repo, footprint, cache, entity.DefaultCatalog())

	reps := 4
	_, err := uc.Execute(context.Background(), CreateRecordInput{
		ProfileUID:  "profile-1",
		RecordType:  "waste",
		Name:        "weekly bins",
		Amount:      "3",
		Unit:        "sack",
		Repetitions: &reps,
	})
	require.NoError(t, err)

	require.Len(t, footprint.createCalls, 1)
	req := footprint.createCalls[0]
	// The alternate unit converts to kilograms and ignores repetitions.
	assert.Equal(t, "kg", req.UnitCode)
	assert.True(t, req.Amount.Equal(decimal.RequireFromString("30")))
}

func TestCreateRecord_AutoName(t *testing.T) {
	repo := newFakeRecordRepository()
	footprint := newFakeFootprintService()
	uc := NewCreateRecordUseCase(repo, footprint, newFakeDrilldownCache(), entity.DefaultCatalog())

	output, err := uc.Execute(context.Background(), CreateRecordInput{
		ProfileUID: "profile-1",
		RecordType: "car_journey",
		Amount:     "12",
		Unit:       "km",
	})
	require.NoError(t, err)
	assert.Equal(t, "Car journey", output.Record.Name)
}

func TestCreateRecord_ValidationErrors(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    CreateRecordInput
		expected error
	}{
		{
			name: "unknown record type",
			input: CreateRecordInput{
				ProfileUID: "profile-1",
				RecordType: "bicycle",
				Amount:     "3",
				Unit:       "km",
			},
			expected: domainerror.ErrUnknownRecordType,
		},
		{
			name: "non-numeric amount",
			input: CreateRecordInput{
				ProfileUID: "profile-1",
				RecordType: "waste",
				Amount:     "lots",
				Unit:       "kg",
			},
			expected: domainerror.ErrInvalidAmount,
		},
		{
			name: "unit outside the category",
			input: CreateRecordInput{
				ProfileUID: "profile-1",
				RecordType: "waste",
				Amount:     "3",
				Unit:       "km",
			},
			expected: domainerror.ErrInvalidUnit,
		},
		{
			name: "missing dates for date-ranged type",
			input: CreateRecordInput{
				ProfileUID: "profile-1",
				RecordType: "electricity",
				Amount:     "250",
				Unit:       "kWh",
			},
			expected: domainerror.ErrMissingDates,
		},
		{
			name: "end date before start date",
			input: CreateRecordInput{
				ProfileUID: "profile-1",
				RecordType: "electricity",
				Amount:     "250",
				Unit:       "kWh",
				StartDate:  &end,
				EndDate:    &start,
			},
			expected: domainerror.ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRecordRepository()
			footprint := newFakeFootprintService()
			uc := NewCreateRecordUseCase(repo, footprint, newFakeDrilldownCache(), entity.DefaultCatalog())

			_, err := uc.Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), "expected %v, got %v", tt.expected, err)
			// Validation failures never reach the remote API.
			assert.Empty(t, footprint.createCalls)
		})
	}
}

func TestCreateRecord_OverlapRejected(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	existing := entity.NewCarbonRecord("profile-1", "flight", "holiday", decimal.RequireFromString("500"), "km")
	existing.StartDate = &start
	existing.EndDate = &end

	repo := newFakeRecordRepository(existing)
	uc := NewCreateRecordUseCase(repo, newFakeFootprintService(), newFakeDrilldownCache(), entity.DefaultCatalog())

	overlapStart := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	overlapEnd := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), CreateRecordInput{
		ProfileUID: "profile-1",
		RecordType: "flight",
		Name:       "holiday",
		Amount:     "800",
		Unit:       "km",
		StartDate:  &overlapStart,
		EndDate:    &overlapEnd,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrDateRangeOverlap))

	// An adjacent range starting exactly at the existing end is allowed.
	adjacentEnd := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), CreateRecordInput{
		ProfileUID: "profile-1",
		RecordType: "flight",
		Name:       "holiday",
		Amount:     "800",
		Unit:       "km",
		StartDate:  &end,
		EndDate:    &adjacentEnd,
	})
	require.NoError(t, err)
}

func TestCreateRecord_SingularRejected(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	existing := entity.NewCarbonRecord("profile-1", "electricity", "home", decimal.RequireFromString("250"), "kWh")
	existing.StartDate = &start
	existing.EndDate = &end

	repo := newFakeRecordRepository(existing)
	uc := NewCreateRecordUseCase(repo, newFakeFootprintService(), newFakeDrilldownCache(), entity.DefaultCatalog())

	otherStart := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	otherEnd := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), CreateRecordInput{
		ProfileUID: "profile-1",
		RecordType: "electricity",
		Name:       "flat",
		Amount:     "300",
		Unit:       "kWh",
		StartDate:  &otherStart,
		EndDate:    &otherEnd,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrDuplicateSingularRecord))

	// A different profile is unaffected.
	_, err = uc.Execute(context.Background(), CreateRecordInput{
		ProfileUID: "profile-2",
		RecordType: "electricity",
		Name:       "flat",
		Amount:     "300",
		Unit:       "kWh",
		StartDate:  &otherStart,
		EndDate:    &otherEnd,
	})
	require.NoError(t, err)
}

func TestCreateRecord_DrilldownCaching(t *testing.T) {
	repo := newFakeRecordRepository()
	footprint := newFakeFootprintService()
	cache := newFakeDrilldownCache()
	uc := NewCreateRecordUseCase(repo, footprint, cache, entity.DefaultCatalog())

	input := CreateRecordInput{
		ProfileUID: "profile-1",
		RecordType: "fuel_purchase",
		Name:       "fill up",
		Amount:     "40",
		Unit:       "L",
	}

	_, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, footprint.drillCalls, 1)

	// The second creation resolves through the cache.
	input.Name = "another fill up"
	_, err = uc.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Len(t, footprint.drillCalls, 1)
}

func TestCreateRecord_RemoteFailureLeavesNoLocalRecord(t *testing.T) {
	repo := newFakeRecordRepository()
	footprint := newFakeFootprintService()
	footprint.createErr = domainerror.NewFootprintError(
		domainerror.ErrCodeFootprintRequestFailed, "remote rejected the item", domainerror.ErrFootprintRequestFailed)
	uc := NewCreateRecordUseCase(repo, footprint, newFakeDrilldownCache(), entity.DefaultCatalog())

	_, err := uc.Execute(context.Background(), CreateRecordInput{
		ProfileUID: "profile-1",
		RecordType: "waste",
		Name:       "bins",
		Amount:     "3",
		Unit:       "kg",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrFootprintRequestFailed))
	assert.Empty(t, repo.records)
}
