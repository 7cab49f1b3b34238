// Package record contains carbon record-related use cases.
package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// GetRecordInput represents the input for fetching a single carbon record.
type GetRecordInput struct {
	ID         uuid.UUID
	ProfileUID string
}

// GetRecordOutput represents the output of fetching a single carbon record.
type GetRecordOutput struct {
	Record *RecordOutput
}

// GetRecordUseCase handles single record retrieval.
type GetRecordUseCase struct {
	recordRepo adapter.CarbonRecordRepository
}

// NewGetRecordUseCase creates a new GetRecordUseCase instance.
func NewGetRecordUseCase(recordRepo adapter.CarbonRecordRepository) *GetRecordUseCase {
	return &GetRecordUseCase{recordRepo: recordRepo}
}

// Execute retrieves the record, scoped to the caller's profile.
func (uc *GetRecordUseCase) Execute(ctx context.Context, input GetRecordInput) (*GetRecordOutput, error) {
	record, err := uc.recordRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if record.ProfileUID != input.ProfileUID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNotAuthorizedRecord,
			"record belongs to another profile",
			domainerror.ErrNotAuthorizedToModifyRecord,
		)
	}

	return &GetRecordOutput{Record: toRecordOutput(record)}, nil
}
