// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carbon-tracker/backend/internal/application/usecase/record"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/middleware"
)

// dateLayout is the wire format for record dates.
const dateLayout = "2006-01-02"

// RecordController handles carbon record endpoints.
type RecordController struct {
	listUseCase          *record.ListRecordsUseCase
	getUseCase           *record.GetRecordUseCase
	createUseCase        *record.CreateRecordUseCase
	updateUseCase        *record.UpdateRecordUseCase
	deleteUseCase        *record.DeleteRecordUseCase
	refreshTotalsUseCase *record.RefreshTotalsUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	listUseCase *record.ListRecordsUseCase,
	getUseCase *record.GetRecordUseCase,
	createUseCase *record.CreateRecordUseCase,
	updateUseCase *record.UpdateRecordUseCase,
	deleteUseCase *record.DeleteRecordUseCase,
	refreshTotalsUseCase *record.RefreshTotalsUseCase,
) *RecordController {
	return &RecordController{
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		createUseCase:        createUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		refreshTotalsUseCase: refreshTotalsUseCase,
	}
}

// List handles GET /records requests.
func (rc *RecordController) List(ctx *gin.Context) {
	profileUID, ok := middleware.GetProfileUIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := record.ListRecordsInput{ProfileUID: profileUID}
	if recordType := ctx.Query("record_type"); recordType != "" {
		input.RecordType = &recordType
	}

	output, err := rc.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordListResponse(output.Records))
}

// Get handles GET /records/:id requests.
func (rc *RecordController) Get(ctx *gin.Context) {
	profileUID, ok := middleware.GetProfileUIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	output, err := rc.getUseCase.Execute(ctx.Request.Context(), record.GetRecordInput{
		ID:         id,
		ProfileUID: profileUID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordResponse(output.Record))
}

// Create handles POST /records requests.
func (rc *RecordController) Create(ctx *gin.Context) {
	profileUID, ok := middleware.GetProfileUIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	input := record.CreateRecordInput{
		ProfileUID:  profileUID,
		RecordType:  req.RecordType,
		Name:        req.Name,
		Amount:      req.Amount,
		Unit:        req.Unit,
		Repetitions: req.Repetitions,
	}

	var ok2 bool
	if input.StartDate, ok2 = parseOptionalDate(ctx, req.StartDate); !ok2 {
		return
	}
	if input.EndDate, ok2 = parseOptionalDate(ctx, req.EndDate); !ok2 {
		return
	}

	output, err := rc.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecordResponse(output.Record))
}

// Update handles PUT /records/:id requests.
func (rc *RecordController) Update(ctx *gin.Context) {
	profileUID, ok := middleware.GetProfileUIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecordFields),
		})
		return
	}

	input := record.UpdateRecordInput{
		ID:          id,
		ProfileUID:  profileUID,
		Name:        req.Name,
		Amount:      req.Amount,
		Unit:        req.Unit,
		Repetitions: req.Repetitions,
	}

	var ok2 bool
	if input.StartDate, ok2 = parseOptionalDate(ctx, req.StartDate); !ok2 {
		return
	}
	if input.EndDate, ok2 = parseOptionalDate(ctx, req.EndDate); !ok2 {
		return
	}

	output, err := rc.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordResponse(output.Record))
}

// Delete handles DELETE /records/:id requests.
func (rc *RecordController) Delete(ctx *gin.Context) {
	profileUID, ok := middleware.GetProfileUIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	output, err := rc.deleteUseCase.Execute(ctx.Request.Context(), record.DeleteRecordInput{
		ID:         id,
		ProfileUID: profileUID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteRecordResponse{RemoteDeleted: output.RemoteDeleted})
}

// RefreshTotals handles POST /admin/records/refresh-totals requests.
func (rc *RecordController) RefreshTotals(ctx *gin.Context) {
	output, err := rc.refreshTotalsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshTotalsResponse{
		Refreshed: output.Refreshed,
		Failed:    output.Failed,
	})
}

func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Profile not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

func parseRecordID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID",
			Code:  string(domainerror.ErrCodeRecordNotFound),
		})
		return uuid.Nil, false
	}
	return id, true
}

func parseOptionalDate(ctx *gin.Context, value *string) (*time.Time, bool) {
	if value == nil {
		return nil, true
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingDates),
		})
		return nil, false
	}
	return &parsed, true
}
