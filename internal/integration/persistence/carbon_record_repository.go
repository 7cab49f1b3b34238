// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
	"github.com/carbon-tracker/backend/internal/integration/persistence/model"
)

// carbonRecordRepository implements the adapter.CarbonRecordRepository interface.
type carbonRecordRepository struct {
	db *gorm.DB
}

// NewCarbonRecordRepository creates a new carbon record repository instance.
func NewCarbonRecordRepository(db *gorm.DB) adapter.CarbonRecordRepository {
	return &carbonRecordRepository{
		db: db,
	}
}

// Create creates a new carbon record in the database.
func (r *carbonRecordRepository) Create(ctx context.Context, record *entity.CarbonRecord) error {
	recordModel := model.CarbonRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update updates an existing carbon record in the database.
func (r *carbonRecordRepository) Update(ctx context.Context, record *entity.CarbonRecord) error {
	recordModel := model.CarbonRecordFromEntity(record)
	result := r.db.WithContext(ctx).Save(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a carbon record by its ID.
func (r *carbonRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CarbonRecordModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}

// FindByID retrieves a carbon record by its ID.
func (r *carbonRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CarbonRecord, error) {
	var recordModel model.CarbonRecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByProfile retrieves all carbon records for a profile, optionally
// filtered by record type.
func (r *carbonRecordRepository) FindByProfile(ctx context.Context, profileUID string, recordType *string) ([]*entity.CarbonRecord, error) {
	query := r.db.WithContext(ctx).
		Where("profile_uid = ?", profileUID).
		Order("created_at DESC")

	if recordType != nil {
		query = query.Where("record_type = ?", *recordType)
	}

	var recordModels []model.CarbonRecordModel
	if err := query.Find(&recordModels).Error; err != nil {
		return nil, err
	}

	return toEntities(recordModels), nil
}

// FindOverlapping retrieves records in the profile with the given name whose
// date range overlaps [start, end). Exact end-to-start adjacency is not an
// overlap. The record with excludeID is ignored.
func (r *carbonRecordRepository) FindOverlapping(ctx context.Context, profileUID, name string, start, end time.Time, excludeID *uuid.UUID) ([]*entity.CarbonRecord, error) {
	query := r.db.WithContext(ctx).
		Where("profile_uid = ? AND name = ?", profileUID, name).
		Where("start_date IS NOT NULL AND end_date IS NOT NULL").
		Where("start_date < ? AND ? < end_date", end, start)

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var recordModels []model.CarbonRecordModel
	if err := query.Find(&recordModels).Error; err != nil {
		return nil, err
	}

	return toEntities(recordModels), nil
}

// ExistsByType reports whether the profile already holds a record of the
// given record type, ignoring excludeID.
func (r *carbonRecordRepository) ExistsByType(ctx context.Context, profileUID, recordType string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.CarbonRecordModel{}).
		Where("profile_uid = ? AND record_type = ?", profileUID, recordType)

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// FindAll retrieves every carbon record; used by the bulk total refresh.
func (r *carbonRecordRepository) FindAll(ctx context.Context) ([]*entity.CarbonRecord, error) {
	var recordModels []model.CarbonRecordModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&recordModels).Error; err != nil {
		return nil, err
	}
	return toEntities(recordModels), nil
}

func toEntities(recordModels []model.CarbonRecordModel) []*entity.CarbonRecord {
	records := make([]*entity.CarbonRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records
}
