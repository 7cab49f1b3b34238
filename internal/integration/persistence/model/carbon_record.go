// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// CarbonRecordModel represents the carbon_records table in the database.
type CarbonRecordModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProfileUID  string          `gorm:"type:varchar(64);not null;index"`
	RecordType  string          `gorm:"type:varchar(64);not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	Unit        string          `gorm:"type:varchar(16);not null"`
	Repetitions *int            `gorm:"type:integer"`
	StartDate   *time.Time      `gorm:"type:date;index"`
	EndDate     *time.Time      `gorm:"type:date;index"`
	ItemUID     string          `gorm:"type:varchar(64);index"`
	CachedTotal decimal.Decimal `gorm:"type:decimal(15,4);not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CarbonRecordModel.
func (CarbonRecordModel) TableName() string {
	return "carbon_records"
}

// ToEntity converts a CarbonRecordModel to a domain CarbonRecord entity.
func (m *CarbonRecordModel) ToEntity() *entity.CarbonRecord {
	return &entity.CarbonRecord{
		ID:          m.ID,
		ProfileUID:  m.ProfileUID,
		RecordType:  m.RecordType,
		Name:        m.Name,
		Amount:      m.Amount,
		Unit:        m.Unit,
		Repetitions: m.Repetitions,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		ItemUID:     m.ItemUID,
		CachedTotal: m.CachedTotal,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CarbonRecordFromEntity creates a CarbonRecordModel from a domain CarbonRecord entity.
func CarbonRecordFromEntity(record *entity.CarbonRecord) *CarbonRecordModel {
	return &CarbonRecordModel{
		ID:          record.ID,
		ProfileUID:  record.ProfileUID,
		RecordType:  record.RecordType,
		Name:        record.Name,
		Amount:      record.Amount,
		Unit:        record.Unit,
		Repetitions: record.Repetitions,
		StartDate:   record.StartDate,
		EndDate:     record.EndDate,
		ItemUID:     record.ItemUID,
		CachedTotal: record.CachedTotal,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}
