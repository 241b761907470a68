package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
	"github.com/SscSPs/school_fund_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// allocationCategoryHandler handles the budget rubric configuration.
type allocationCategoryHandler struct {
	categoryService portssvc.AllocationCategorySvc
	identityService portssvc.IdentitySvc
}

// RegisterAllocationCategoryRoutes registers the allocation category routes.
func RegisterAllocationCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.AllocationCategorySvc, identityService portssvc.IdentitySvc) {
	registerValidators()
	h := &allocationCategoryHandler{
		categoryService: categoryService,
		identityService: identityService,
	}

	categories := rg.Group("/allocation-categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.PATCH("/:categoryID", h.updateCategory)
		categories.DELETE("/:categoryID", h.deleteCategory)
	}
}

// listCategories godoc
// @Summary List allocation categories
// @Tags allocation-categories
// @Produce  json
// @Success 200 {object} dto.Result{data=[]domain.AllocationCategory}
// @Security BearerAuth
// @Router /allocation-categories [get]
func (h *allocationCategoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list allocation categories")
		return
	}

	c.JSON(http.StatusOK, dto.OK(categories))
}

// createCategory godoc
// @Summary Create an allocation category
// @Description Directors and admins only. Percentages across categories may not exceed 100.
// @Tags allocation-categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateAllocationCategoryRequest true "Category"
// @Success 201 {object} dto.Result{data=domain.AllocationCategory}
// @Failure 400 {object} dto.ErrorResult "Validation error"
// @Failure 403 {object} dto.ErrorResult "Forbidden"
// @Failure 409 {object} dto.ErrorResult "Duplicate name"
// @Security BearerAuth
// @Router /allocation-categories [post]
func (h *allocationCategoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAllocationCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	user, ok := resolveCaller(c, h.identityService, logger)
	if !ok {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req, *user)
	if err != nil {
		respondError(c, logger, err, "Failed to create allocation category")
		return
	}

	c.JSON(http.StatusCreated, dto.OK(category))
}

// updateCategory godoc
// @Summary Update an allocation category
// @Tags allocation-categories
// @Accept  json
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Param   category body dto.UpdateAllocationCategoryRequest true "Fields to change"
// @Success 200 {object} dto.Result{data=domain.AllocationCategory}
// @Failure 403 {object} dto.ErrorResult "Forbidden"
// @Failure 404 {object} dto.ErrorResult "Category not found"
// @Security BearerAuth
// @Router /allocation-categories/{categoryID} [patch]
func (h *allocationCategoryHandler) updateCategory(c *gin.Context) {
	categoryID := c.Param("categoryID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("category_id", categoryID))

	var req dto.UpdateAllocationCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	user, ok := resolveCaller(c, h.identityService, logger)
	if !ok {
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req, *user)
	if err != nil {
		respondError(c, logger, err, "Failed to update allocation category")
		return
	}

	c.JSON(http.StatusOK, dto.OK(category))
}

// deleteCategory godoc
// @Summary Delete an allocation category
// @Tags allocation-categories
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Success 200 {object} dto.Result
// @Failure 403 {object} dto.ErrorResult "Forbidden"
// @Failure 404 {object} dto.ErrorResult "Category not found"
// @Security BearerAuth
// @Router /allocation-categories/{categoryID} [delete]
func (h *allocationCategoryHandler) deleteCategory(c *gin.Context) {
	categoryID := c.Param("categoryID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("category_id", categoryID))

	user, ok := resolveCaller(c, h.identityService, logger)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID, *user); err != nil {
		respondError(c, logger, err, "Failed to delete allocation category")
		return
	}

	c.JSON(http.StatusOK, dto.Result{Success: true, Message: "Allocation category deleted"})
}
