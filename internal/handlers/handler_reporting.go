package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
	"github.com/SscSPs/school_fund_ledger/internal/middleware"
	"github.com/SscSPs/school_fund_ledger/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves balances, dashboard statistics and the allocation report.
type reportingHandler struct {
	balanceService   portssvc.BalanceService
	statsService     portssvc.StatsService
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// RegisterReportingRoutes registers the read-only reporting routes. now supplies
// the default period of the allocation report.
func RegisterReportingRoutes(
	rg *gin.RouterGroup,
	balanceService portssvc.BalanceService,
	statsService portssvc.StatsService,
	reportingService portssvc.ReportingService,
	now func() time.Time,
) {
	registerValidators()
	h := &reportingHandler{
		balanceService:   balanceService,
		statsService:     statsService,
		reportingService: reportingService,
		now:              now,
	}

	rg.GET("/balances", h.getBalances)
	rg.GET("/stats", h.getStats)
	rg.GET("/fund-sources", h.listFundSources)
	rg.GET("/reports/allocation", h.getAllocationReport)
}

// getBalances godoc
// @Summary Fund balances
// @Description Available balance per fund source, derived from the entry log
// @Tags reporting
// @Produce  json
// @Param   schoolYearID query string false "School year (defaults to the active one)"
// @Success 200 {object} dto.Result{data=domain.FundBalances}
// @Security BearerAuth
// @Router /balances [get]
func (h *reportingHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.balanceService.GetBalances(c.Request.Context(), c.Query("schoolYearID"))
	if err != nil {
		respondError(c, logger, err, "Failed to compute balances")
		return
	}

	c.JSON(http.StatusOK, dto.OK(balances))
}

// getStats godoc
// @Summary Dashboard statistics
// @Description Totals and counts for today, the current month and the school year
// @Tags reporting
// @Produce  json
// @Success 200 {object} dto.Result{data=domain.DashboardStats}
// @Security BearerAuth
// @Router /stats [get]
func (h *reportingHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, dto.OK(stats))
}

// listFundSources godoc
// @Summary Fund sources
// @Description The fund sources in display order
// @Tags reporting
// @Produce  json
// @Success 200 {object} dto.Result{data=[]domain.FundSourceInfo}
// @Security BearerAuth
// @Router /fund-sources [get]
func (h *reportingHandler) listFundSources(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK(domain.FundSources()))
}

// getAllocationReport godoc
// @Summary Allocation report
// @Description Distributes tuition income across the allocation categories and compares it with spending
// @Tags reporting
// @Produce  json
// @Param   from query string false "First day (YYYY-MM-DD), defaults to the first day of the month"
// @Param   to query string false "Last day (YYYY-MM-DD), defaults to the last day of the month"
// @Success 200 {object} dto.Result{data=domain.AllocationReport}
// @Failure 400 {object} dto.ErrorResult "Invalid period"
// @Security BearerAuth
// @Router /reports/allocation [get]
func (h *reportingHandler) getAllocationReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AllocationReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	from, to := accounting.MonthRange(h.now())
	var err error
	if params.From != "" {
		if from, err = time.Parse(dto.DateLayout, params.From); err != nil {
			respondError(c, logger, apperrors.NewFieldError("from", "must be a date formatted as YYYY-MM-DD"), "")
			return
		}
	}
	if params.To != "" {
		if to, err = time.Parse(dto.DateLayout, params.To); err != nil {
			respondError(c, logger, apperrors.NewFieldError("to", "must be a date formatted as YYYY-MM-DD"), "")
			return
		}
	}

	report, err := h.reportingService.GetAllocationReport(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build allocation report")
		return
	}

	c.JSON(http.StatusOK, dto.OK(report))
}
