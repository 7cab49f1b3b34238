// Package record contains carbon record-related use cases.
package record

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/carbon-tracker/backend/internal/application/adapter"
)

// RefreshTotalsOutput reports the result of a bulk cached-total refresh.
type RefreshTotalsOutput struct {
	Refreshed int
	Failed    int
}

// RefreshTotalsUseCase re-fetches every record's remote item and overwrites
// the local cached total. The footprint API periodically recalculates totals
// with improved methodology, so local copies go stale without this.
type RefreshTotalsUseCase struct {
	recordRepo adapter.CarbonRecordRepository
	footprint  adapter.FootprintService
}

// NewRefreshTotalsUseCase creates a new RefreshTotalsUseCase instance.
func NewRefreshTotalsUseCase(
	recordRepo adapter.CarbonRecordRepository,
	footprint adapter.FootprintService,
) *RefreshTotalsUseCase {
	return &RefreshTotalsUseCase{
		recordRepo: recordRepo,
		footprint:  footprint,
	}
}

// Execute refreshes the cached total of every stored record. Per-record
// failures are counted and logged; they never abort the sweep.
func (uc *RefreshTotalsUseCase) Execute(ctx context.Context) (*RefreshTotalsOutput, error) {
	records, err := uc.recordRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load carbon records: %w", err)
	}

	output := &RefreshTotalsOutput{}
	for _, record := range records {
		if record.ItemUID == "" {
			continue
		}

		item, err := uc.footprint.FetchItem(ctx, record.ProfileUID, record.ItemUID)
		if err != nil {
			output.Failed++
			slog.Warn("Failed to refresh cached total",
				"recordID", record.ID,
				"itemUID", record.ItemUID,
				"error", err,
			)
			continue
		}

		record.CachedTotal = item.TotalAmount
		record.UpdatedAt = time.Now().UTC()
		if err := uc.recordRepo.Update(ctx, record); err != nil {
			output.Failed++
			slog.Warn("Failed to store refreshed total",
				"recordID", record.ID,
				"error", err,
			)
			continue
		}

		output.Refreshed++
	}

	return output, nil
}
