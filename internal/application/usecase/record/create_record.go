// Package record contains carbon record-related use cases.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// CreateRecordInput represents the input for carbon record creation.
// Amount arrives as the raw request string so non-numeric input is rejected
// by validation rather than by transport-layer coercion.
type CreateRecordInput struct {
	ProfileUID  string
	RecordType  string
	Name        string
	Amount      string
	Unit        string
	Repetitions *int
	StartDate   *time.Time
	EndDate     *time.Time
}

// CreateRecordOutput represents the output of carbon record creation.
type CreateRecordOutput struct {
	Record *RecordOutput
}

// CreateRecordUseCase handles carbon record creation logic.
type CreateRecordUseCase struct {
	recordRepo adapter.CarbonRecordRepository
	footprint  adapter.FootprintService
	drilldowns adapter.DrilldownCache
	catalog    *entity.Catalog
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
func NewCreateRecordUseCase(
	recordRepo adapter.CarbonRecordRepository,
	footprint adapter.FootprintService,
	drilldowns adapter.DrilldownCache,
	catalog *entity.Catalog,
) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo: recordRepo,
		footprint:  footprint,
		drilldowns: drilldowns,
		catalog:    catalog,
	}
}

// Execute performs the carbon record creation: validation, remote submission,
// then local persistence of the returned identifier and computed total.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*CreateRecordOutput, error) {
	cfg, ok := uc.catalog.Config(input.RecordType)
	if !ok {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnknownRecordType,
			fmt.Sprintf("record type %q is not configured", input.RecordType),
			domainerror.ErrUnknownRecordType,
		)
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidAmount,
			fmt.Sprintf("amount %q is not numeric", input.Amount),
			domainerror.ErrInvalidAmount,
		)
	}

	name := input.Name
	if name == "" && cfg.AutoName {
		name = cfg.Category.Name
	}

	record := entity.NewCarbonRecord(input.ProfileUID, input.RecordType, name, amount, input.Unit)
	record.Repetitions = input.Repetitions
	record.StartDate = input.StartDate
	record.EndDate = input.EndDate

	if err := validateRecord(ctx, uc.recordRepo, cfg, record, nil); err != nil {
		return nil, err
	}

	dataItemUID, err := resolveDataItemUID(ctx, uc.drilldowns, uc.footprint, cfg.Category)
	if err != nil {
		return nil, err
	}

	fieldName, _ := cfg.Category.ResolveFieldName(record.Unit)
	item, err := uc.footprint.CreateItem(ctx, record.ProfileUID, cfg.Category.Path, adapter.FootprintItemRequest{
		DataItemUID: dataItemUID,
		Name:        record.Name,
		FieldName:   fieldName,
		Amount:      record.EffectiveAmount(cfg.Category, cfg.Repetitions),
		UnitCode:    record.EffectiveUnitCode(cfg.Category),
	})
	if err != nil {
		return nil, err
	}

	record.ItemUID = item.UID
	record.CachedTotal = item.TotalAmount

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create carbon record: %w", err)
	}

	return &CreateRecordOutput{Record: toRecordOutput(record)}, nil
}
