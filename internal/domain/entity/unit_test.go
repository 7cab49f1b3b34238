// Package entity defines the core business entities for the domain layer.
package entity

import "testing"

func TestUnitCodeRoundTrip(t *testing.T) {
	for _, u := range AllUnits() {
		resolved, ok := UnitFromCode(u.Code())
		if !ok {
			t.Errorf("expected code %q to resolve", u.Code())
			continue
		}
		if resolved != u {
			t.Errorf("expected code %q to resolve to %q, got %q", u.Code(), u, resolved)
		}
	}
}

func TestUnitFromCode_Unknown(t *testing.T) {
	tests := []string{"", "furlongs", "KM", "kilometres"}
	for _, code := range tests {
		if _, ok := UnitFromCode(code); ok {
			t.Errorf("expected code %q not to resolve", code)
		}
	}
}

func TestUnitIsValid(t *testing.T) {
	if !UnitLitres.IsValid() {
		t.Error("expected litres to be a valid unit")
	}
	if Unit("fathoms").IsValid() {
		t.Error("expected fathoms not to be a valid unit")
	}
}

func TestUnitNames(t *testing.T) {
	tests := []struct {
		unit Unit
		name string
		code string
	}{
		{UnitKilometres, "kilometres", "km"},
		{UnitMiles, "miles", "mi"},
		{UnitKilograms, "kilograms", "kg"},
		{UnitTonnes, "tonnes", "t"},
		{UnitKilowattHours, "kilowatt hours", "kWh"},
		{UnitLitres, "litres", "L"},
		{UnitUKGallons, "UK gallons", "gal_uk"},
	}

	for _, tt := range tests {
		if got := tt.unit.Name(); got != tt.name {
			t.Errorf("unit %q: expected name %q, got %q", tt.unit, tt.name, got)
		}
		if got := tt.unit.Code(); got != tt.code {
			t.Errorf("unit %q: expected code %q, got %q", tt.unit, tt.code, got)
		}
	}
}
