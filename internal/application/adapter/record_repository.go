// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// CarbonRecordRepository defines the interface for carbon record persistence operations.
type CarbonRecordRepository interface {
	// Create creates a new carbon record in the database.
	Create(ctx context.Context, record *entity.CarbonRecord) error

	// Update updates an existing carbon record in the database.
	Update(ctx context.Context, record *entity.CarbonRecord) error

	// Delete removes a carbon record by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a carbon record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CarbonRecord, error)

	// FindByProfile retrieves all carbon records for a profile, optionally
	// filtered by record type.
	FindByProfile(ctx context.Context, profileUID string, recordType *string) ([]*entity.CarbonRecord, error)

	// FindOverlapping retrieves records in the profile with the given name
	// whose date range overlaps [start, end). The record with excludeID is
	// ignored so updates do not collide with themselves.
	FindOverlapping(ctx context.Context, profileUID, name string, start, end time.Time, excludeID *uuid.UUID) ([]*entity.CarbonRecord, error)

	// ExistsByType reports whether the profile already holds a record of the
	// given record type, ignoring excludeID.
	ExistsByType(ctx context.Context, profileUID, recordType string, excludeID *uuid.UUID) (bool, error)

	// FindAll retrieves every carbon record; used by the bulk total refresh.
	FindAll(ctx context.Context) ([]*entity.CarbonRecord, error)
}
