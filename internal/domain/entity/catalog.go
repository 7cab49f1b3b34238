// Package entity defines the core business entities for the domain layer.
package entity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RecordConfig is the per-record-type configuration surface. It is built once
// at startup and passed to the record use cases; there is no mutable global
// configuration state.
type RecordConfig struct {
	RecordType string
	Category   *Category

	// DateRange requires both dates on a record and forbids overlapping
	// ranges for records sharing a name within a profile.
	DateRange bool

	// Repetitions multiplies the amount by the record's repetition count.
	Repetitions bool

	// AutoName generates a name from the category when none is supplied.
	AutoName bool

	// Singular allows at most one record of this type per profile.
	Singular bool
}

// Catalog holds the record-type configurations known to the service.
type Catalog struct {
	configs map[string]*RecordConfig
}

// NewCatalog builds a catalog from the given configurations.
func NewCatalog(configs ...*RecordConfig) *Catalog {
	byType := make(map[string]*RecordConfig, len(configs))
	for _, cfg := range configs {
		byType[cfg.RecordType] = cfg
	}
	return &Catalog{configs: byType}
}

// Config returns the configuration for a record type.
func (c *Catalog) Config(recordType string) (*RecordConfig, bool) {
	cfg, ok := c.configs[recordType]
	return cfg, ok
}

// RecordTypes returns the configured record types in sorted order.
func (c *Catalog) RecordTypes() []string {
	types := make([]string, 0, len(c.configs))
	for t := range c.configs {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// DefaultCatalog returns the built-in record-type catalog.
func DefaultCatalog() *Catalog {
	carJourney := mustCategory("Car journey", CategoryTypeDistance, "/transport/car/generic",
		map[string]string{"fuel": "petrol", "size": "medium"}, nil)

	flight := mustCategory("Flight", CategoryTypeDistance, "/transport/plane/generic",
		map[string]string{"type": "short haul", "size": "one way"}, nil)

	electricity := mustCategory("Household electricity", CategoryTypeEnergy, "/home/energy/electricity",
		map[string]string{"country": "United Kingdom"}, nil)

	heatingOil := mustCategory("Heating oil", CategoryTypeVolumableEnergy, "/home/energy/heating/oil",
		map[string]string{"deliveryMethod": "bulk"},
		[]UnitConversion{
			{Name: "barrels", Code: "bbl", To: UnitLitres, Factor: decimal.RequireFromString("158.987")},
		})

	waste := mustCategory("Household waste", CategoryTypeWeight, "/home/waste/landfill",
		nil,
		[]UnitConversion{
			{Name: "refuse sacks", Code: "sack", To: UnitKilograms, Factor: decimal.RequireFromString("10")},
		})

	fuelPurchase := mustCategory("Fuel purchase", CategoryTypeVolume, "/transport/fuel/petrol",
		map[string]string{"type": "unleaded"}, nil)

	return NewCatalog(
		&RecordConfig{RecordType: "car_journey", Category: carJourney, Repetitions: true, AutoName: true},
		&RecordConfig{RecordType: "flight", Category: flight, DateRange: true, AutoName: true},
		&RecordConfig{RecordType: "electricity", Category: electricity, DateRange: true, Singular: true},
		&RecordConfig{RecordType: "heating_oil", Category: heatingOil, Repetitions: true},
		&RecordConfig{RecordType: "waste", Category: waste, Repetitions: true, AutoName: true},
		&RecordConfig{RecordType: "fuel_purchase", Category: fuelPurchase},
	)
}

// mustCategory backs the static catalog; the types are fixed at compile time.
func mustCategory(name string, categoryType CategoryType, path string, params map[string]string, conversions []UnitConversion) *Category {
	category, err := NewCategory(name, categoryType, path, params, conversions)
	if err != nil {
		panic(err)
	}
	return category
}
