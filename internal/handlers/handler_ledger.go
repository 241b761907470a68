package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
	"github.com/SscSPs/school_fund_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to ledger entries.
type ledgerHandler struct {
	ledgerService   portssvc.LedgerSvcFacade
	identityService portssvc.IdentitySvc
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, is portssvc.IdentitySvc) *ledgerHandler {
	return &ledgerHandler{
		ledgerService:   ls,
		identityService: is,
	}
}

// RegisterLedgerRoutes registers the entry and deleted-history routes.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, identityService portssvc.IdentitySvc) {
	registerValidators()
	h := newLedgerHandler(ledgerService, identityService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.PATCH("/:entryID", h.updateEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
	}

	deleted := rg.Group("/deleted-entries")
	{
		deleted.GET("", h.listDeletedEntries)
		deleted.DELETE("/:deletedEntryID", h.purgeDeletedEntry)
	}
}

// createEntry godoc
// @Summary Record a ledger entry
// @Description Records an incoming or outgoing movement. Outgoing entries are rejected when their fund source cannot cover them.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.Result{data=dto.LedgerEntryResponse}
// @Failure 400 {object} dto.ErrorResult "Validation error"
// @Failure 401 {object} dto.ErrorResult "Unauthorized"
// @Failure 422 {object} dto.ErrorResult "Insufficient balance"
// @Failure 500 {object} dto.ErrorResult "Failed to record entry"
// @Security BearerAuth
// @Router /entries [post]
func (h *ledgerHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResult{Message: "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record entry")
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToLedgerEntryResponse(*entry)))
}

// listEntries godoc
// @Summary List ledger entries
// @Description Lists the active entries of a school year, newest first
// @Tags entries
// @Produce  json
// @Param   schoolYearID query string false "School year (defaults to the active one)"
// @Param   direction query string false "in or out"
// @Param   search query string false "Matches description or category"
// @Param   offset query int false "Offset" default(0)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} dto.Result{data=dto.ListEntriesResponse}
// @Failure 400 {object} dto.ErrorResult "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResult "Failed to list entries"
// @Security BearerAuth
// @Router /entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	resp, err := h.ledgerService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

// getEntry godoc
// @Summary Get a ledger entry
// @Tags entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.Result{data=dto.LedgerEntryResponse}
// @Failure 404 {object} dto.ErrorResult "Entry not found"
// @Security BearerAuth
// @Router /entries/{entryID} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("entryID")))

	entry, err := h.ledgerService.GetEntry(c.Request.Context(), c.Param("entryID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve entry")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToLedgerEntryResponse(*entry)))
}

// updateEntry godoc
// @Summary Update a ledger entry
// @Description Changes the date, amount or description of an entry. The school year cannot change.
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Param   entry body dto.UpdateLedgerEntryRequest true "Fields to change"
// @Success 200 {object} dto.Result{data=dto.LedgerEntryResponse}
// @Failure 400 {object} dto.ErrorResult "Validation error"
// @Failure 404 {object} dto.ErrorResult "Entry not found"
// @Failure 422 {object} dto.ErrorResult "Insufficient balance"
// @Security BearerAuth
// @Router /entries/{entryID} [patch]
func (h *ledgerHandler) updateEntry(c *gin.Context) {
	entryID := c.Param("entryID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", entryID))

	var req dto.UpdateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResult{Message: "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.UpdateEntry(c.Request.Context(), entryID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update entry")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToLedgerEntryResponse(*entry)))
}

// deleteEntry godoc
// @Summary Delete a ledger entry
// @Description Moves an entry into the deleted history
// @Tags entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.Result
// @Failure 404 {object} dto.ErrorResult "Entry not found"
// @Security BearerAuth
// @Router /entries/{entryID} [delete]
func (h *ledgerHandler) deleteEntry(c *gin.Context) {
	entryID := c.Param("entryID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", entryID))

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResult{Message: "Unauthorized"})
		return
	}

	if err := h.ledgerService.DeleteEntry(c.Request.Context(), entryID, userID); err != nil {
		respondError(c, logger, err, "Failed to delete entry")
		return
	}

	c.JSON(http.StatusOK, dto.Result{Success: true, Message: "Entry deleted"})
}

// listDeletedEntries godoc
// @Summary List deleted entries
// @Description Lists the deleted history, newest deletion first
// @Tags deleted-entries
// @Produce  json
// @Param   search query string false "Matches description, category or direction label"
// @Param   offset query int false "Offset" default(0)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} dto.Result{data=dto.ListDeletedEntriesResponse}
// @Security BearerAuth
// @Router /deleted-entries [get]
func (h *ledgerHandler) listDeletedEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDeletedEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	resp, err := h.ledgerService.ListDeletedEntries(c.Request.Context(), params.Offset, params.Limit, params.Search)
	if err != nil {
		respondError(c, logger, err, "Failed to list deleted entries")
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

// purgeDeletedEntry godoc
// @Summary Purge a deleted entry
// @Description Permanently removes a row of the deleted history. Directors and admins only.
// @Tags deleted-entries
// @Produce  json
// @Param   deletedEntryID path string true "Deleted entry ID"
// @Success 200 {object} dto.Result
// @Failure 403 {object} dto.ErrorResult "Forbidden"
// @Failure 404 {object} dto.ErrorResult "Deleted entry not found"
// @Security BearerAuth
// @Router /deleted-entries/{deletedEntryID} [delete]
func (h *ledgerHandler) purgeDeletedEntry(c *gin.Context) {
	deletedEntryID := c.Param("deletedEntryID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("deleted_entry_id", deletedEntryID))

	user, ok := resolveCaller(c, h.identityService, logger)
	if !ok {
		return
	}

	if err := h.ledgerService.PurgeDeletedEntry(c.Request.Context(), deletedEntryID, user.Role); err != nil {
		respondError(c, logger, err, "Failed to purge deleted entry")
		return
	}

	c.JSON(http.StatusOK, dto.Result{Success: true, Message: "Deleted entry purged"})
}
