// Package entity defines the core business entities for the domain layer.
package entity

// Unit is a measurement unit accepted by the footprint API.
// The set is closed: units are constructed from the fixed table below.
type Unit string

const (
	UnitKilometres    Unit = "kilometres"
	UnitMiles         Unit = "miles"
	UnitKilograms     Unit = "kilograms"
	UnitTonnes        Unit = "tonnes"
	UnitKilowattHours Unit = "kilowatt_hours"
	UnitLitres        Unit = "litres"
	UnitUKGallons     Unit = "uk_gallons"
)

// unitInfo holds the display name and external API code for a unit.
type unitInfo struct {
	name string
	code string
}

var unitTable = map[Unit]unitInfo{
	UnitKilometres:    {name: "kilometres", code: "km"},
	UnitMiles:         {name: "miles", code: "mi"},
	UnitKilograms:     {name: "kilograms", code: "kg"},
	UnitTonnes:        {name: "tonnes", code: "t"},
	UnitKilowattHours: {name: "kilowatt hours", code: "kWh"},
	UnitLitres:        {name: "litres", code: "L"},
	UnitUKGallons:     {name: "UK gallons", code: "gal_uk"},
}

// unitsByCode is the reverse index over the unit table.
var unitsByCode = func() map[string]Unit {
	m := make(map[string]Unit, len(unitTable))
	for u, info := range unitTable {
		m[info.code] = u
	}
	return m
}()

// Name returns the human-readable name for the unit.
func (u Unit) Name() string {
	return unitTable[u].name
}

// Code returns the external API code for the unit.
func (u Unit) Code() string {
	return unitTable[u].code
}

// IsValid reports whether the unit is part of the fixed table.
func (u Unit) IsValid() bool {
	_, ok := unitTable[u]
	return ok
}

// UnitFromCode reverse-resolves an external API code to a unit.
// A lookup miss returns ok=false rather than an error.
func UnitFromCode(code string) (Unit, bool) {
	u, ok := unitsByCode[code]
	return u, ok
}

// AllUnits returns every unit in the fixed table, in a stable order.
func AllUnits() []Unit {
	return []Unit{
		UnitKilometres,
		UnitMiles,
		UnitKilograms,
		UnitTonnes,
		UnitKilowattHours,
		UnitLitres,
		UnitUKGallons,
	}
}
