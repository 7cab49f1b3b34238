// Package record contains carbon record-related use cases.
package record

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	"github.com/carbon-tracker/backend/internal/domain/entity"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// fakeRecordRepository is an in-memory CarbonRecordRepository for tests.
type fakeRecordRepository struct {
	records   map[uuid.UUID]*entity.CarbonRecord
	createErr error
	updateErr error
	deleteErr error
}

func newFakeRecordRepository(records ...*entity.CarbonRecord) *fakeRecordRepository {
	repo := &fakeRecordRepository{records: map[uuid.UUID]*entity.CarbonRecord{}}
	for _, r := range records {
		copied := *r
		repo.records[r.ID] = &copied
	}
	return repo
}

func (f *fakeRecordRepository) Create(_ context.Context, record *entity.CarbonRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	copied := *record
	f.records[record.ID] = &copied
	return nil
}

func (f *fakeRecordRepository) Update(_ context.Context, record *entity.CarbonRecord) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.records[record.ID]; !ok {
		return domainerror.ErrRecordNotFound
	}
	copied := *record
	f.records[record.ID] = &copied
	return nil
}

func (f *fakeRecordRepository) Delete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.records[id]; !ok {
		return domainerror.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeRecordRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.CarbonRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, domainerror.ErrRecordNotFound
	}
	copied := *record
	return &copied, nil
}

func (f *fakeRecordRepository) FindByProfile(_ context.Context, profileUID string, recordType *string) ([]*entity.CarbonRecord, error) {
	var result []*entity.CarbonRecord
	for _, r := range f.records {
		if r.ProfileUID != profileUID {
			continue
		}
		if recordType != nil && r.RecordType != *recordType {
			continue
		}
		copied := *r
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeRecordRepository) FindOverlapping(_ context.Context, profileUID, name string, start, end time.Time, excludeID *uuid.UUID) ([]*entity.CarbonRecord, error) {
	var result []*entity.CarbonRecord
	for _, r := range f.records {
		if r.ProfileUID != profileUID || r.Name != name {
			continue
		}
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		if r.StartDate == nil || r.EndDate == nil {
			continue
		}
		if entity.RangesOverlap(*r.StartDate, *r.EndDate, start, end) {
			copied := *r
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeRecordRepository) ExistsByType(_ context.Context, profileUID, recordType string, excludeID *uuid.UUID) (bool, error) {
	for _, r := range f.records {
		if r.ProfileUID != profileUID || r.RecordType != recordType {
			continue
		}
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (f *fakeRecordRepository) FindAll(_ context.Context) ([]*entity.CarbonRecord, error) {
	var result []*entity.CarbonRecord
	for _, r := range f.records {
		copied := *r
		result = append(result, &copied)
	}
	return result, nil
}

// fakeFootprintService records calls and returns canned responses.
type fakeFootprintService struct {
	createCalls []adapter.FootprintItemRequest
	updateCalls []adapter.FootprintItemRequest
	deleteCalls []string
	fetchCalls  []string
	drillCalls  []string

	itemUID     string
	totalAmount decimal.Decimal
	dataItemUID string

	createErr error
	updateErr error
	deleteErr error
	fetchErr  error
	drillErr  error
}

func newFakeFootprintService() *fakeFootprintService {
	return &fakeFootprintService{
		itemUID:     "item-uid-1",
		totalAmount: decimal.RequireFromString("42.5"),
		dataItemUID: "data-item-uid-1",
	}
}

func (f *fakeFootprintService) CreateItem(_ context.Context, _, _ string, req adapter.FootprintItemRequest) (*adapter.FootprintItem, error) {
	f.createCalls = append(f.createCalls, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &adapter.FootprintItem{UID: f.itemUID, TotalAmount: f.totalAmount}, nil
}

func (f *fakeFootprintService) UpdateItem(_ context.Context, _, itemUID string, req adapter.FootprintItemRequest) (*adapter.FootprintItem, error) {
	f.updateCalls = append(f.updateCalls, req)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &adapter.FootprintItem{UID: itemUID, TotalAmount: f.totalAmount}, nil
}

func (f *fakeFootprintService) DeleteItem(_ context.Context, _, itemUID string) error {
	f.deleteCalls = append(f.deleteCalls, itemUID)
	return f.deleteErr
}

func (f *fakeFootprintService) FetchItem(_ context.Context, _, itemUID string) (*adapter.FootprintItem, error) {
	f.fetchCalls = append(f.fetchCalls, itemUID)
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return &adapter.FootprintItem{UID: itemUID, TotalAmount: f.totalAmount}, nil
}

func (f *fakeFootprintService) DrillDown(_ context.Context, drillPath string) (string, error) {
	f.drillCalls = append(f.drillCalls, drillPath)
	if f.drillErr != nil {
		return "", f.drillErr
	}
	return f.dataItemUID, nil
}

// fakeDrilldownCache is an in-memory DrilldownCache.
type fakeDrilldownCache struct {
	entries map[string]string
	setErr  error
}

func newFakeDrilldownCache() *fakeDrilldownCache {
	return &fakeDrilldownCache{entries: map[string]string{}}
}

func (f *fakeDrilldownCache) Get(_ context.Context, drillPath string) (string, bool, error) {
	uid, ok := f.entries[drillPath]
	return uid, ok, nil
}

func (f *fakeDrilldownCache) Set(_ context.Context, drillPath, dataItemUID string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[drillPath] = dataItemUID
	return nil
}
