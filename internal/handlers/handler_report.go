package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/akabanda/savings_group_app/internal/core/ports/services"
	"github.com/akabanda/savings_group_app/internal/dto"
	"github.com/akabanda/savings_group_app/internal/middleware"
	"github.com/akabanda/savings_group_app/internal/platform/config"
	"github.com/akabanda/savings_group_app/internal/utils"
	"github.com/akabanda/savings_group_app/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests for financial reports and exports.
type reportHandler struct {
	reportingService portssvc.ReportingSvc
	txnService       portssvc.TransactionSvcFacade
	currencyCode     string
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportingSvc, ts portssvc.TransactionSvcFacade, currencyCode string) *reportHandler {
	return &reportHandler{
		reportingService: rs,
		txnService:       ts,
		currencyCode:     currencyCode,
	}
}

// registerReportRoutes registers all reporting routes.
func registerReportRoutes(rg *gin.RouterGroup, cfg *config.Config, reportingService portssvc.ReportingSvc, txnService portssvc.TransactionSvcFacade) {
	h := newReportHandler(reportingService, txnService, cfg.CurrencyCode)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.groupSummary)
		reports.GET("/members", h.memberReports)
		reports.GET("/members/:id/balance", h.memberBalance)
		reports.GET("/export/transactions", h.exportTransactionsCSV)
		reports.GET("/export/members", h.exportMemberReportsCSV)
	}
}

// groupSummary godoc
// @Summary Group financial summary
// @Description Aggregates all transactions into group-wide totals, optionally limited to an inclusive date range.
// @Tags reports
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param   to query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.GroupSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportHandler) groupSummary(c *gin.Context) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.reportingService.GroupSummary(c.Request.Context(), params.From, params.To)
	if err != nil {
		respondServiceError(c, err, "Failed to build group summary")
		return
	}

	c.JSON(http.StatusOK, dto.GroupSummaryResponse{
		GroupSummary:              *summary,
		FormattedTotalSavings:     utils.FormatCurrency(summary.TotalSavings, h.currencyCode),
		FormattedTotalWithdrawals: utils.FormatCurrency(summary.TotalWithdrawals, h.currencyCode),
		FormattedNetBalance:       utils.FormatCurrency(summary.NetBalance, h.currencyCode),
	})
}

// memberReports godoc
// @Summary Per-member balances
// @Description Computes a balance row for every member, including those without transactions.
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.MemberReportResponse
// @Security BearerAuth
// @Router /reports/members [get]
func (h *reportHandler) memberReports(c *gin.Context) {
	rows, err := h.reportingService.MemberReports(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to build member reports")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberReportResponses(rows))
}

// memberBalance godoc
// @Summary One member's balance
// @Tags reports
// @Produce  json
// @Param   id path string true "Member ID"
// @Success 200 {object} domain.MemberBalance
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /reports/members/{id}/balance [get]
func (h *reportHandler) memberBalance(c *gin.Context) {
	balance, err := h.reportingService.MemberBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to compute member balance")
		return
	}

	c.JSON(http.StatusOK, balance)
}

// exportTransactionsCSV godoc
// @Summary Download transactions as CSV
// @Tags reports
// @Produce  text/csv
// @Param   from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param   to query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {string} string "CSV document"
// @Security BearerAuth
// @Router /reports/export/transactions [get]
func (h *reportHandler) exportTransactionsCSV(c *gin.Context) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var err error
	txns, err := h.txnService.GetTransactionsByDateRange(c.Request.Context(), params.From, params.To)
	if err != nil {
		respondServiceError(c, err, "Failed to export transactions")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := export.TransactionsCSV(c.Writer, txns); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to stream transactions CSV", slog.String("error", err.Error()))
	}
}

// exportMemberReportsCSV godoc
// @Summary Download per-member balances as CSV
// @Tags reports
// @Produce  text/csv
// @Success 200 {string} string "CSV document"
// @Security BearerAuth
// @Router /reports/export/members [get]
func (h *reportHandler) exportMemberReportsCSV(c *gin.Context) {
	rows, err := h.reportingService.MemberReports(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to export member reports")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="member_reports.csv"`)
	c.Header("Content-Type", "text/csv")
	if err := export.MemberReportsCSV(c.Writer, rows); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to stream member reports CSV", slog.String("error", err.Error()))
	}
}
