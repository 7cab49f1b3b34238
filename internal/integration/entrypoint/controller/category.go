// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carbon-tracker/backend/internal/application/usecase/category"
	"github.com/carbon-tracker/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles record-type catalog endpoints.
type CategoryController struct {
	listUseCase        *category.ListRecordTypesUseCase
	unitOptionsUseCase *category.UnitOptionsUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListRecordTypesUseCase,
	unitOptionsUseCase *category.UnitOptionsUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:        listUseCase,
		unitOptionsUseCase: unitOptionsUseCase,
	}
}

// List handles GET /record-types requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordTypeListResponse(output.RecordTypes))
}

// UnitOptions handles GET /record-types/:type/unit-options requests.
func (c *CategoryController) UnitOptions(ctx *gin.Context) {
	output, err := c.unitOptionsUseCase.Execute(ctx.Request.Context(), category.UnitOptionsInput{
		RecordType: ctx.Param("type"),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUnitOptionListResponse(output.Options))
}
