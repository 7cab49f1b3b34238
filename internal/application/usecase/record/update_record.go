// Package record contains carbon record-related use cases.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// UpdateRecordInput represents the input for carbon record update.
// Nil pointers leave the corresponding field untouched.
type UpdateRecordInput struct {
	ID          uuid.UUID
	ProfileUID  string
	Name        *string
	Amount      *string
	Unit        *string
	Repetitions *int
	StartDate   *time.Time
	EndDate     *time.Time
}

// UpdateRecordOutput represents the output of carbon record update.
// RemoteSubmitted reports whether the footprint API was called: only changes
// to name, unit, amount or repetitions trigger a remote re-submission.
type UpdateRecordOutput struct {
	Record          *RecordOutput
	RemoteSubmitted bool
}

// UpdateRecordUseCase handles carbon record update logic.
type UpdateRecordUseCase struct {
	recordRepo adapter.CarbonRecordRepository
	footprint  adapter.FootprintService
	drilldowns adapter.DrilldownCache
	catalog    *entity.Catalog
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(
	recordRepo adapter.CarbonRecordRepository,
	footprint adapter.FootprintService,
	drilldowns adapter.DrilldownCache,
	catalog *entity.Catalog,
) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo: recordRepo,
		footprint:  footprint,
		drilldowns: drilldowns,
		catalog:    catalog,
	}
}

// Execute performs the carbon record update.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) (*UpdateRecordOutput, error) {
	loaded, err := uc.recordRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if loaded.ProfileUID != input.ProfileUID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNotAuthorizedRecord,
			"record belongs to another profile",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	cfg, ok := uc.catalog.Config(loaded.RecordType)
	if !ok {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnknownRecordType,
			fmt.Sprintf("record type %q is not configured", loaded.RecordType),
			domainerror.ErrUnknownRecordType,
		)
	}

	updated := *loaded
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Unit != nil {
		updated.Unit = *input.Unit
	}
	if input.Amount != nil {
		amount, err := decimal.NewFromString(*input.Amount)
		if err != nil {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidAmount,
				fmt.Sprintf("amount %q is not numeric", *input.Amount),
				domainerror.ErrInvalidAmount,
			)
		}
		updated.Amount = amount
	}
	if input.Repetitions != nil {
		updated.Repetitions = input.Repetitions
	}
	if input.StartDate != nil {
		updated.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		updated.EndDate = input.EndDate
	}

	if err := validateRecord(ctx, uc.recordRepo, cfg, &updated, &loaded.ID); err != nil {
		return nil, err
	}

	submitted := updated.TrackedFieldsChanged(loaded)
	if submitted {
		dataItemUID, err := resolveDataItemUID(ctx, uc.drilldowns, uc.footprint, cfg.Category)
		if err != nil {
			return nil, err
		}

		fieldName, _ := cfg.Category.ResolveFieldName(updated.Unit)
		item, err := uc.footprint.UpdateItem(ctx, updated.ProfileUID, updated.ItemUID, adapter.FootprintItemRequest{
			DataItemUID: dataItemUID,
			Name:        updated.Name,
			FieldName:   fieldName,
			Amount:      updated.EffectiveAmount(cfg.Category, cfg.Repetitions),
			UnitCode:    updated.EffectiveUnitCode(cfg.Category),
		})
		if err != nil {
			return nil, err
		}
		updated.CachedTotal = item.TotalAmount
	}

	updated.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update carbon record: %w", err)
	}

	return &UpdateRecordOutput{
		Record:          toRecordOutput(&updated),
		RemoteSubmitted: submitted,
	}, nil
}
