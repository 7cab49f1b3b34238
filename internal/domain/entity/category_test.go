// Package entity defines the core business entities for the domain layer.
package entity

import (
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewCategory_UnknownType(t *testing.T) {
	_, err := NewCategory("Mystery", CategoryType("teleportation"), "/transport/teleporter", nil, nil)
	if err == nil {
		t.Fatal("expected an error for an unknown category type")
	}
	if !strings.Contains(err.Error(), "teleportation") {
		t.Errorf("expected error to name the offending type, got %q", err.Error())
	}
}

func TestCategoryFieldNames(t *testing.T) {
	tests := []struct {
		categoryType CategoryType
		expected     []string
	}{
		{CategoryTypeDistance, []string{"distance"}},
		{CategoryTypeWeight, []string{"mass"}},
		{CategoryTypeEnergy, []string{"energyConsumption"}},
		{CategoryTypeVolume, []string{"volume"}},
		{CategoryTypeVolumableEnergy, []string{"volumePerTime", "energyConsumption"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.categoryType), func(t *testing.T) {
			category, err := NewCategory("test", tt.categoryType, "/test", nil, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := category.FieldNames(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected field names %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCategoryResolveFieldName(t *testing.T) {
	volumableEnergy, err := NewCategory("Heating oil", CategoryTypeVolumableEnergy, "/home/energy/heating/oil", nil,
		[]UnitConversion{
			{Name: "barrels", Code: "bbl", To: UnitLitres, Factor: decimal.RequireFromString("158.987")},
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		unitCode string
		expected string
		ok       bool
	}{
		// Litres appear in both fields; the first declared field wins.
		{"shared unit resolves to first field", "L", "volumePerTime", true},
		{"uk gallons resolve to first field", "gal_uk", "volumePerTime", true},
		{"energy unit resolves to energy field", "kWh", "energyConsumption", true},
		{"alternate unit resolves through its target", "bbl", "volumePerTime", true},
		{"unit outside the field set", "km", "", false},
		{"unknown code", "pints", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := volumableEnergy.ResolveFieldName(tt.unitCode)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.expected {
				t.Errorf("expected field %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCategoryUnitOptions(t *testing.T) {
	waste, err := NewCategory("Household waste", CategoryTypeWeight, "/home/waste/landfill", nil,
		[]UnitConversion{
			{Name: "refuse sacks", Code: "sack", To: UnitKilograms, Factor: decimal.RequireFromString("10")},
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []UnitOption{
		{Label: "kilograms", Code: "kg"},
		{Label: "tonnes", Code: "t"},
		{Label: "refuse sacks", Code: "sack"},
	}

	if got := waste.UnitOptions(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected options %v, got %v", expected, got)
	}
}

func TestCategoryConversions(t *testing.T) {
	heatingOil, err := NewCategory("Heating oil", CategoryTypeVolumableEnergy, "/home/energy/heating/oil", nil,
		[]UnitConversion{
			{Name: "barrels", Code: "bbl", To: UnitLitres, Factor: decimal.RequireFromString("158.987")},
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !heatingOil.IsAlternativeUnit("bbl") {
		t.Error("expected bbl to be an alternative unit")
	}
	if heatingOil.IsAlternativeUnit("L") {
		t.Error("expected L not to be an alternative unit")
	}

	target, ok := heatingOil.ConvertsTo("bbl")
	if !ok || target != UnitLitres {
		t.Errorf("expected bbl to convert to litres, got %q (ok=%v)", target, ok)
	}

	factor, ok := heatingOil.ConversionFactor("bbl")
	if !ok || !factor.Equal(decimal.RequireFromString("158.987")) {
		t.Errorf("expected factor 158.987, got %s (ok=%v)", factor, ok)
	}

	if _, ok := heatingOil.ConversionFactor("L"); ok {
		t.Error("expected no conversion factor for a standard unit")
	}
}

func TestCategoryDrillDownPath(t *testing.T) {
	t.Run("without params", func(t *testing.T) {
		category, err := NewCategory("Waste", CategoryTypeWeight, "/home/waste/landfill", nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := "/data/home/waste/landfill/drill"
		if got := category.DrillDownPath(); got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	})

	t.Run("with params", func(t *testing.T) {
		category, err := NewCategory("Car journey", CategoryTypeDistance, "/transport/car/generic",
			map[string]string{"fuel": "petrol", "size": "medium"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := category.DrillDownPath()
		prefix := "/data/transport/car/generic/drill?"
		if !strings.HasPrefix(got, prefix) {
			t.Fatalf("expected prefix %q, got %q", prefix, got)
		}

		values, err := url.ParseQuery(strings.TrimPrefix(got, prefix))
		if err != nil {
			t.Fatalf("unexpected error parsing query: %v", err)
		}
		if values.Get("fuel") != "petrol" || values.Get("size") != "medium" {
			t.Errorf("expected fuel=petrol and size=medium, got %v", values)
		}
	})
}
