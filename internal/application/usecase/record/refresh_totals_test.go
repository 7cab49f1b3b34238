// Package record contains carbon record-related use cases.
package record

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

func TestRefreshTotals_UpdatesEveryStoredRecord(t *testing.T) {
	first := storedWasteRecord()
	second := entity.NewCarbonRecord("profile-2", "car_journey", "commute", decimal.RequireFromString("12"), "km")
	second.ItemUID = "item-uid-2"
	second.CachedTotal = decimal.RequireFromString("10")

	repo := newFakeRecordRepository(first, second)
	footprint := newFakeFootprintService()
	footprint.totalAmount = decimal.RequireFromString("99")
	uc := NewRefreshTotalsUseCase(repo, footprint)

	output, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, output.Refreshed)
	assert.Equal(t, 0, output.Failed)
	assert.Len(t, footprint.fetchCalls, 2)

	for _, id := range []uuid.UUID{first.ID, second.ID} {
		stored, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, stored.CachedTotal.Equal(decimal.RequireFromString("99")))
	}
}

func TestRefreshTotals_SkipsRecordsWithoutItemUID(t *testing.T) {
	unsynced := entity.NewCarbonRecord("profile-1", "waste", "bins", decimal.RequireFromString("3"), "kg")

	repo := newFakeRecordRepository(unsynced)
	footprint := newFakeFootprintService()
	uc := NewRefreshTotalsUseCase(repo, footprint)

	output, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, output.Refreshed)
	assert.Equal(t, 0, output.Failed)
	assert.Empty(t, footprint.fetchCalls)
}

func TestRefreshTotals_PerRecordFailuresDoNotAbort(t *testing.T) {
	first := storedWasteRecord()
	repo := newFakeRecordRepository(first)
	footprint := newFakeFootprintService()
	footprint.fetchErr = domainerror.NewFootprintError(
		domainerror.ErrCodeFootprintItemNotFound, "item gone", domainerror.ErrFootprintItemNotFound)
	uc := NewRefreshTotalsUseCase(repo, footprint)

	output, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, output.Refreshed)
	assert.Equal(t, 1, output.Failed)

	// The stale total stays in place.
	stored, err := repo.FindByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.True(t, stored.CachedTotal.Equal(decimal.RequireFromString("42.5")))
}
