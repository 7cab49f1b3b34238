// Package record contains carbon record-related use cases.
package record

import (
	"context"
	"fmt"

	"github.com/carbon-tracker/backend/internal/application/adapter"
)

// ListRecordsInput represents the input for listing carbon records.
type ListRecordsInput struct {
	ProfileUID string
	RecordType *string
}

// ListRecordsOutput represents the output of listing carbon records.
type ListRecordsOutput struct {
	Records []*RecordOutput
}

// ListRecordsUseCase handles record listing.
type ListRecordsUseCase struct {
	recordRepo adapter.CarbonRecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.CarbonRecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{recordRepo: recordRepo}
}

// Execute lists the profile's records, optionally filtered by record type.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListRecordsOutput, error) {
	records, err := uc.recordRepo.FindByProfile(ctx, input.ProfileUID, input.RecordType)
	if err != nil {
		return nil, fmt.Errorf("failed to list carbon records: %w", err)
	}

	outputs := make([]*RecordOutput, len(records))
	for i, r := range records {
		outputs[i] = toRecordOutput(r)
	}

	return &ListRecordsOutput{Records: outputs}, nil
}
