// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/dto"
)

// respondDomainError maps domain errors onto HTTP responses. Validation
// failures become 4xx; footprint API failures surface as 502 because the
// request was valid but the upstream call did not succeed.
func respondDomainError(c *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		c.JSON(recordErrorStatus(recordErr.Code), dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	var footprintErr *domainerror.FootprintError
	if errors.As(err, &footprintErr) {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: footprintErr.Message,
			Code:  string(footprintErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Record not found",
			Code:  string(domainerror.ErrCodeRecordNotFound),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

func recordErrorStatus(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedRecord:
		return http.StatusForbidden
	case domainerror.ErrCodeDateRangeOverlap, domainerror.ErrCodeDuplicateSingularRecord:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
