// Package record contains carbon record-related use cases.
package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// DeleteRecordInput represents the input for carbon record deletion.
type DeleteRecordInput struct {
	ID         uuid.UUID
	ProfileUID string
}

// DeleteRecordOutput represents the output of carbon record deletion.
// RemoteDeleted is false when the footprint API deletion failed: the local
// record is removed regardless, leaving the remote item orphaned until the
// next reconciliation. The failure is logged, never surfaced as an error.
type DeleteRecordOutput struct {
	RemoteDeleted bool
}

// DeleteRecordUseCase handles carbon record deletion logic.
type DeleteRecordUseCase struct {
	recordRepo adapter.CarbonRecordRepository
	footprint  adapter.FootprintService
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(
	recordRepo adapter.CarbonRecordRepository,
	footprint adapter.FootprintService,
) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		recordRepo: recordRepo,
		footprint:  footprint,
	}
}

// Execute performs the carbon record deletion.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) (*DeleteRecordOutput, error) {
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

	remoteDeleted := true
	if record.ItemUID != "" {
		if err := uc.footprint.DeleteItem(ctx, record.ProfileUID, record.ItemUID); err != nil {
			remoteDeleted = false
			slog.Warn("Footprint item deletion failed, local record removed anyway",
				"recordID", record.ID,
				"itemUID", record.ItemUID,
				"error", err,
			)
		}
	}

	if err := uc.recordRepo.Delete(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("failed to delete carbon record: %w", err)
	}

	return &DeleteRecordOutput{RemoteDeleted: remoteDeleted}, nil
}
