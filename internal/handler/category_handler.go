package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"webtime/internal/errors"
	"webtime/internal/model"
	"webtime/internal/service"
)

// CategoryHandler handles website category endpoints.
type CategoryHandler struct {
	categories service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categories service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// UpsertCategoryRequest creates or replaces a domain's category override.
type UpsertCategoryRequest struct {
	Domain   string `json:"domain" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// List godoc
// @Summary List all website categories
// @Tags categories
// @Produce json
// @Success 200 {object} map[string][]model.WebsiteCategory
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list categories: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}
	if categories == nil {
		categories = []model.WebsiteCategory{}
	}

	return c.JSON(http.StatusOK, map[string][]model.WebsiteCategory{"categories": categories})
}

// Upsert godoc
// @Summary Create or replace a category override
// @Tags categories
// @Accept json
// @Produce json
// @Param request body UpsertCategoryRequest true "Override"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) Upsert(c echo.Context) error {
	var req UpsertCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.categories.Upsert(c.Request().Context(), req.Domain, model.Category(req.Category))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("upsert category: %v", err)
		}
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Category updated successfully"})
}

// Delete godoc
// @Summary Delete a non-default category override
// @Tags categories
// @Produce json
// @Param domain query string true "Domain"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	domain := c.QueryParam("domain")
	if domain == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "domain parameter is required")
	}

	if err := h.categories.Delete(c.Request().Context(), domain); err != nil {
		c.Logger().Errorf("delete category: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	// Deleting a default or unknown domain is a silent no-op.
	return c.JSON(http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}
