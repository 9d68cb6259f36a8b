package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inventa-app/inventa-api/internal/application/service"
	"github.com/inventa-app/inventa-api/internal/domain/enum"
	"github.com/inventa-app/inventa-api/internal/domain/repository"
	"github.com/inventa-app/inventa-api/internal/presentation/http/dto/request"
	"github.com/inventa-app/inventa-api/internal/presentation/http/dto/response"
	"github.com/inventa-app/inventa-api/pkg/pagination"
)

// PurchaseHandler handles purchase-related HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

func purchaseLines(items []request.PurchaseLineRequest) []service.PurchaseLineInput {
	lines := make([]service.PurchaseLineInput, 0, len(items))
	for _, item := range items {
		lines = append(lines, service.PurchaseLineInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: *item.UnitPrice,
		})
	}
	return lines
}

// List handles listing purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	var filter request.TransactionFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.PurchaseFilterParams{
		Pagination: &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage},
		Search:     filter.Search,
	}
	if filter.Status != "" {
		status := enum.PurchaseStatus(filter.Status)
		params.Status = &status
	}

	from, err := parseOptionalDate(filter.From)
	if err != nil {
		response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	params.From = from
	to, err := parseOptionalDate(filter.To)
	if err != nil {
		response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
		return
	}
	params.To = to

	if filter.PartyID != "" {
		if supID, err := uuid.Parse(filter.PartyID); err == nil {
			params.SupplierID = &supID
		}
	}

	result, err := h.purchaseService.ListPurchases(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchases retrieved successfully", result)
}

// Get handles retrieving a single purchase with its line items
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase retrieved successfully", purchase)
}

// Create handles purchase registration
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req request.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	input := &service.RegisterPurchaseInput{
		SupplierID: req.SupplierID,
		Date:       date,
		Items:      purchaseLines(req.Items),
	}
	if req.Status != nil {
		status := enum.PurchaseStatus(*req.Status)
		input.Status = &status
	}

	purchase, err := h.purchaseService.RegisterPurchase(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase registered successfully", purchase)
}

// Update handles purchase updates, including full line set replacement
func (h *PurchaseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdatePurchaseInput{
		SupplierID: req.SupplierID,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		input.Date = &date
	}
	if req.Status != nil {
		status := enum.PurchaseStatus(*req.Status)
		input.Status = &status
	}
	if req.Items != nil {
		input.Items = purchaseLines(req.Items)
	}

	purchase, err := h.purchaseService.UpdatePurchase(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase updated successfully", purchase)
}

// Delete handles purchase deletion, reverting the stock it added
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase deleted successfully", nil)
}

// Stats handles purchase statistics
func (h *PurchaseHandler) Stats(c *gin.Context) {
	stats, err := h.purchaseService.PurchaseStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase statistics retrieved successfully", stats)
}
