package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inventa-app/inventa-api/internal/application/service"
	"github.com/inventa-app/inventa-api/internal/presentation/http/dto/response"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService     *service.ReportService
	lowStockThreshold int
}

// NewReportHandler creates a new report handler. lowStockThreshold is the
// configured default applied when a request does not supply one.
func NewReportHandler(reportService *service.ReportService, lowStockThreshold int) *ReportHandler {
	return &ReportHandler{
		reportService:     reportService,
		lowStockThreshold: lowStockThreshold,
	}
}

// BestSellers handles listing the best-selling products
func (h *ReportHandler) BestSellers(c *gin.Context) {
	results, err := h.reportService.BestSellingProducts(c.Request.Context(), limitQuery(c, 10))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Best selling products retrieved successfully", results)
}

// Valuation handles the inventory valuation report
func (h *ReportHandler) Valuation(c *gin.Context) {
	value, err := h.reportService.InventoryValuation(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory valuation retrieved successfully", gin.H{"value": value})
}

// Transactions handles the sale/purchase totals report for a period.
// Defaults to the last 30 days when no range is given.
func (h *ReportHandler) Transactions(c *gin.Context) {
	var q struct {
		From string `form:"from"`
		To   string `form:"to"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if q.From != "" {
		parsed, err := parseDate(q.From)
		if err != nil {
			response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if q.To != "" {
		parsed, err := parseDate(q.To)
		if err != nil {
			response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		to = parsed
	}

	report, err := h.reportService.TransactionsByPeriod(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction report retrieved successfully", report)
}

// LowStock handles the low stock report
func (h *ReportHandler) LowStock(c *gin.Context) {
	var q struct {
		Threshold int `form:"threshold"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	threshold := q.Threshold
	if threshold <= 0 {
		threshold = h.lowStockThreshold
	}

	products, err := h.reportService.LowStockProducts(c.Request.Context(), threshold)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock report retrieved successfully", products)
}

// Dashboard handles the general dashboard counters
func (h *ReportHandler) Dashboard(c *gin.Context) {
	var q struct {
		Threshold int `form:"threshold"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	threshold := q.Threshold
	if threshold <= 0 {
		threshold = h.lowStockThreshold
	}

	stats, err := h.reportService.Dashboard(c.Request.Context(), threshold)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved successfully", stats)
}
