// Package record contains carbon record-related use cases.
package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// validateRecord runs every validation rule for a record against its
// configuration. All rules are checked before any footprint API call is made.
// excludeID lets updates skip the record's own row in overlap and singular
// checks.
func validateRecord(
	ctx context.Context,
	repo adapter.CarbonRecordRepository,
	cfg *entity.RecordConfig,
	record *entity.CarbonRecord,
	excludeID *uuid.UUID,
) error {
	if _, ok := cfg.Category.ResolveFieldName(record.Unit); !ok {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidUnit,
			"unit "+record.Unit+" is not accepted by record type "+cfg.RecordType,
			domainerror.ErrInvalidUnit,
		)
	}

	if cfg.DateRange {
		if record.StartDate == nil || record.EndDate == nil {
			return domainerror.NewRecordError(
				domainerror.ErrCodeMissingDates,
				"record type "+cfg.RecordType+" requires a start and end date",
				domainerror.ErrMissingDates,
			)
		}
		if !record.StartDate.Before(*record.EndDate) {
			return domainerror.NewRecordError(
				domainerror.ErrCodeInvalidDateRange,
				"end date must be after start date",
				domainerror.ErrInvalidDateRange,
			)
		}

		overlapping, err := repo.FindOverlapping(ctx, record.ProfileUID, record.Name, *record.StartDate, *record.EndDate, excludeID)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return domainerror.NewRecordError(
				domainerror.ErrCodeDateRangeOverlap,
				"date range overlaps an existing record named "+record.Name,
				domainerror.ErrDateRangeOverlap,
			)
		}
	}

	if cfg.Singular {
		exists, err := repo.ExistsByType(ctx, record.ProfileUID, cfg.RecordType, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return domainerror.NewRecordError(
				domainerror.ErrCodeDuplicateSingularRecord,
				"profile already holds a "+cfg.RecordType+" record",
				domainerror.ErrDuplicateSingularRecord,
			)
		}
	}

	return nil
}

// resolveDataItemUID resolves the category's drill-down path to a data item
// UID, consulting the cache first. Resolutions never expire: the footprint
// API guarantees path stability.
func resolveDataItemUID(
	ctx context.Context,
	cache adapter.DrilldownCache,
	footprint adapter.FootprintService,
	category *entity.Category,
) (string, error) {
	drillPath := category.DrillDownPath()

	if uid, ok, err := cache.Get(ctx, drillPath); err == nil && ok {
		return uid, nil
	}

	uid, err := footprint.DrillDown(ctx, drillPath)
	if err != nil {
		return "", err
	}

	// Cache write failures are not fatal; the next call resolves again.
	_ = cache.Set(ctx, drillPath, uid)

	return uid, nil
}
