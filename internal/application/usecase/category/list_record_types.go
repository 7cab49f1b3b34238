// Package category contains record-type catalog use cases.
package category

import (
	"context"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// RecordTypeOutput describes a configured record type.
type RecordTypeOutput struct {
	RecordType   string
	CategoryName string
	CategoryType entity.CategoryType
	CategoryPath string
	FieldNames   []string
	DateRange    bool
	Repetitions  bool
	AutoName     bool
	Singular     bool
}

// ListRecordTypesOutput represents the output of listing record types.
type ListRecordTypesOutput struct {
	RecordTypes []*RecordTypeOutput
}

// ListRecordTypesUseCase exposes the configured record-type catalog.
type ListRecordTypesUseCase struct {
	catalog *entity.Catalog
}

// NewListRecordTypesUseCase creates a new ListRecordTypesUseCase instance.
func NewListRecordTypesUseCase(catalog *entity.Catalog) *ListRecordTypesUseCase {
	return &ListRecordTypesUseCase{catalog: catalog}
}

// Execute lists every configured record type in stable order.
func (uc *ListRecordTypesUseCase) Execute(_ context.Context) (*ListRecordTypesOutput, error) {
	types := uc.catalog.RecordTypes()
	outputs := make([]*RecordTypeOutput, 0, len(types))
	for _, recordType := range types {
		cfg, _ := uc.catalog.Config(recordType)
		outputs = append(outputs, &RecordTypeOutput{
			RecordType:   cfg.RecordType,
			CategoryName: cfg.Category.Name,
			CategoryType: cfg.Category.Type,
			CategoryPath: cfg.Category.Path,
			FieldNames:   cfg.Category.FieldNames(),
			DateRange:    cfg.DateRange,
			Repetitions:  cfg.Repetitions,
			AutoName:     cfg.AutoName,
			Singular:     cfg.Singular,
		})
	}

	return &ListRecordTypesOutput{RecordTypes: outputs}, nil
}
