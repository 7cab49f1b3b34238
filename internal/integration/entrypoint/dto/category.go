// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/carbon-tracker/backend/internal/application/usecase/category"
	"github.com/carbon-tracker/backend/internal/domain/entity"
)

// RecordTypeResponse represents a configured record type in API responses.
type RecordTypeResponse struct {
	RecordType   string   `json:"record_type"`
	CategoryName string   `json:"category_name"`
	CategoryType string   `json:"category_type"`
	CategoryPath string   `json:"category_path"`
	FieldNames   []string `json:"field_names"`
	DateRange    bool     `json:"date_range"`
	Repetitions  bool     `json:"repetitions"`
	AutoName     bool     `json:"auto_name"`
	Singular     bool     `json:"singular"`
}

// RecordTypeListResponse represents the response for listing record types.
type RecordTypeListResponse struct {
	RecordTypes []RecordTypeResponse `json:"record_types"`
}

// UnitOptionResponse represents a selectable unit in API responses.
type UnitOptionResponse struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

// UnitOptionListResponse represents the response for listing unit options.
type UnitOptionListResponse struct {
	Options []UnitOptionResponse `json:"options"`
}

// ToRecordTypeListResponse converts record type outputs to a RecordTypeListResponse DTO.
func ToRecordTypeListResponse(types []*category.RecordTypeOutput) RecordTypeListResponse {
	response := RecordTypeListResponse{RecordTypes: make([]RecordTypeResponse, len(types))}
	for i, t := range types {
		response.RecordTypes[i] = RecordTypeResponse{
			RecordType:   t.RecordType,
			CategoryName: t.CategoryName,
			CategoryType: string(t.CategoryType),
			CategoryPath: t.CategoryPath,
			FieldNames:   t.FieldNames,
			DateRange:    t.DateRange,
			Repetitions:  t.Repetitions,
			AutoName:     t.AutoName,
			Singular:     t.Singular,
		}
	}
	return response
}

// ToUnitOptionListResponse converts unit options to a UnitOptionListResponse DTO.
func ToUnitOptionListResponse(options []entity.UnitOption) UnitOptionListResponse {
	response := UnitOptionListResponse{Options: make([]UnitOptionResponse, len(options))}
	for i, o := range options {
		response.Options[i] = UnitOptionResponse{Label: o.Label, Code: o.Code}
	}
	return response
}
