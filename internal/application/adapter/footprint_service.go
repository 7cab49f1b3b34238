// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// FootprintItemRequest carries the field values submitted for a profile item.
type FootprintItemRequest struct {
	DataItemUID string
	Name        string
	FieldName   string
	Amount      decimal.Decimal
	UnitCode    string
}

// FootprintItem is the remote representation of a profile item: its external
// identifier and the total computed by the footprint API.
type FootprintItem struct {
	UID         string
	TotalAmount decimal.Decimal
}

// FootprintService defines the interface for the remote footprint accounting API.
type FootprintService interface {
	// CreateItem creates a profile item under the category path and returns
	// the remote identifier and computed total.
	CreateItem(ctx context.Context, profileUID, categoryPath string, req FootprintItemRequest) (*FootprintItem, error)

	// UpdateItem re-submits the field values of an existing profile item and
	// returns its recomputed total.
	UpdateItem(ctx context.Context, profileUID, itemUID string, req FootprintItemRequest) (*FootprintItem, error)

	// DeleteItem removes a profile item.
	DeleteItem(ctx context.Context, profileUID, itemUID string) error

	// FetchItem retrieves a profile item and its current computed total.
	FetchItem(ctx context.Context, profileUID, itemUID string) (*FootprintItem, error)

	// DrillDown resolves a drill-down selector to a concrete data item UID.
	// The result is stable for a given path and may be cached indefinitely.
	DrillDown(ctx context.Context, drillPath string) (string, error)
}

// DrilldownCache caches drill-down resolutions keyed by drill path.
type DrilldownCache interface {
	// Get returns the cached data item UID for a drill path, or ok=false.
	Get(ctx context.Context, drillPath string) (string, bool, error)

	// Set stores a resolution. Entries do not expire.
	Set(ctx context.Context, drillPath, dataItemUID string) error
}
