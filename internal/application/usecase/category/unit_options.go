// Package category contains record-type catalog use cases.
package category

import (
	"context"
	"fmt"

	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// UnitOptionsInput represents the input for listing a record type's units.
type UnitOptionsInput struct {
	RecordType string
}

// UnitOptionsOutput represents the selectable units for a record type:
// the standard units of its category plus any declared alternate units.
type UnitOptionsOutput struct {
	Options []entity.UnitOption
}

// UnitOptionsUseCase lists the selectable units for a record type.
type UnitOptionsUseCase struct {
	catalog *entity.Catalog
}

// NewUnitOptionsUseCase creates a new UnitOptionsUseCase instance.
func NewUnitOptionsUseCase(catalog *entity.Catalog) *UnitOptionsUseCase {
	return &UnitOptionsUseCase{catalog: catalog}
}

// Execute lists the unit options for the record type.
func (uc *UnitOptionsUseCase) Execute(_ context.Context, input UnitOptionsInput) (*UnitOptionsOutput, error) {
	cfg, ok := uc.catalog.Config(input.RecordType)
	if !ok {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnknownRecordType,
			fmt.Sprintf("record type %q is not configured", input.RecordType),
			domainerror.ErrUnknownRecordType,
		)
	}

	return &UnitOptionsOutput{Options: cfg.Category.UnitOptions()}, nil
}
