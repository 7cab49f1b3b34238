// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// CategoryType is the semantic kind of quantity a category accepts.
type CategoryType string

const (
	CategoryTypeDistance        CategoryType = "distance"
	CategoryTypeWeight          CategoryType = "weight"
	CategoryTypeEnergy          CategoryType = "energy"
	CategoryTypeVolume          CategoryType = "volume"
	CategoryTypeVolumableEnergy CategoryType = "volumable_energy"
)

// CategoryField pairs a footprint API field name with the units it accepts.
type CategoryField struct {
	Name  string
	Units []Unit
}

// categoryFieldTable maps every category type to its ordered field list.
// Declaration order matters: ResolveFieldName breaks ties by it.
var categoryFieldTable = map[CategoryType][]CategoryField{
	CategoryTypeDistance: {
		{Name: "distance", Units: []Unit{UnitKilometres, UnitMiles}},
	},
	CategoryTypeWeight: {
		{Name: "mass", Units: []Unit{UnitKilograms, UnitTonnes}},
	},
	CategoryTypeEnergy: {
		{Name: "energyConsumption", Units: []Unit{UnitKilowattHours}},
	},
	CategoryTypeVolume: {
		{Name: "volume", Units: []Unit{UnitLitres, UnitUKGallons}},
	},
	CategoryTypeVolumableEnergy: {
		{Name: "volumePerTime", Units: []Unit{UnitLitres, UnitUKGallons}},
		{Name: "energyConsumption", Units: []Unit{UnitKilowattHours}},
	},
}

// drillDownPrefix is the fixed prefix for footprint API drill-down selectors.
const drillDownPrefix = "/data"

// UnitConversion declares an alternate local unit that the footprint API does
// not know natively. Quantities in the alternate unit are multiplied by Factor
// and submitted in the target unit.
type UnitConversion struct {
	Name   string
	Code   string
	To     Unit
	Factor decimal.Decimal
}

// UnitOption is a (display name, external code) pair for selection UIs.
type UnitOption struct {
	Label string
	Code  string
}

// Category describes how a logical record type maps onto the footprint API
// taxonomy: a display name, the semantic category type, a hierarchical data
// path, auxiliary path-selection parameters, and optional alternate-unit
// conversion rules.
type Category struct {
	Name        string
	Type        CategoryType
	Path        string
	Params      map[string]string
	Conversions []UnitConversion
}

// NewCategory creates a Category, rejecting unknown category types.
// An unknown type is a programmer error in the catalog definition, so it is
// reported at construction rather than deferred to first lookup.
func NewCategory(name string, categoryType CategoryType, path string, params map[string]string, conversions []UnitConversion) (*Category, error) {
	if _, ok := categoryFieldTable[categoryType]; !ok {
		return nil, fmt.Errorf("category %q: unknown category type %q", name, categoryType)
	}
	return &Category{
		Name:        name,
		Type:        categoryType,
		Path:        path,
		Params:      params,
		Conversions: conversions,
	}, nil
}

// Fields returns the ordered field list for the category's type.
func (c *Category) Fields() []CategoryField {
	return categoryFieldTable[c.Type]
}

// FieldNames returns the ordered footprint API field names for the category's
// type. The list is non-empty and order-stable for every supported type.
func (c *Category) FieldNames() []string {
	fields := c.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// UnitOptions returns the selectable units for the category: the standard
// units of its field list plus any alternate units declared by conversions.
func (c *Category) UnitOptions() []UnitOption {
	var options []UnitOption
	seen := map[string]bool{}
	for _, field := range c.Fields() {
		for _, u := range field.Units {
			if seen[u.Code()] {
				continue
			}
			seen[u.Code()] = true
			options = append(options, UnitOption{Label: u.Name(), Code: u.Code()})
		}
	}
	for _, conv := range c.Conversions {
		if seen[conv.Code] {
			continue
		}
		seen[conv.Code] = true
		options = append(options, UnitOption{Label: conv.Name, Code: conv.Code})
	}
	return options
}

// ResolveFieldName returns the name of the first declared field whose accepted
// units include the given external unit code. Alternate unit codes resolve
// through their conversion target. A code outside every field's unit set
// returns ok=false.
func (c *Category) ResolveFieldName(unitCode string) (string, bool) {
	if conv, ok := c.conversion(unitCode); ok {
		unitCode = conv.To.Code()
	}
	for _, field := range c.Fields() {
		for _, u := range field.Units {
			if u.Code() == unitCode {
				return field.Name, true
			}
		}
	}
	return "", false
}

// IsAlternativeUnit reports whether the code names a declared alternate unit.
func (c *Category) IsAlternativeUnit(unitCode string) bool {
	_, ok := c.conversion(unitCode)
	return ok
}

// ConvertsTo returns the registry unit an alternate unit converts into.
func (c *Category) ConvertsTo(unitCode string) (Unit, bool) {
	conv, ok := c.conversion(unitCode)
	if !ok {
		return "", false
	}
	return conv.To, true
}

// ConversionFactor returns the multiplicative factor for an alternate unit.
func (c *Category) ConversionFactor(unitCode string) (decimal.Decimal, bool) {
	conv, ok := c.conversion(unitCode)
	if !ok {
		return decimal.Decimal{}, false
	}
	return conv.Factor, true
}

func (c *Category) conversion(unitCode string) (UnitConversion, bool) {
	for _, conv := range c.Conversions {
		if conv.Code == unitCode {
			return conv, true
		}
	}
	return UnitConversion{}, false
}

// DrillDownPath builds the drill-down selector for the category: the fixed
// prefix, the hierarchical path, and the auxiliary parameters as a query
// string. Parameter order is not stable; callers must depend on presence only.
func (c *Category) DrillDownPath() string {
	path := drillDownPrefix + c.Path + "/drill"
	if len(c.Params) == 0 {
		return path
	}
	values := url.Values{}
	for key, value := range c.Params {
		values.Set(key, value)
	}
	return path + "?" + values.Encode()
}
