package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/inventa-app/inventa-api/internal/application/service"
	"github.com/inventa-app/inventa-api/internal/domain/repository"
	"github.com/inventa-app/inventa-api/internal/presentation/http/dto/request"
	"github.com/inventa-app/inventa-api/internal/presentation/http/dto/response"
	"github.com/inventa-app/inventa-api/pkg/pagination"
)

// SupplierHandler handles supplier-related HTTP requests
type SupplierHandler struct {
	supplierService *service.SupplierService
	purchaseService *service.PurchaseService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService *service.SupplierService, purchaseService *service.PurchaseService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService, purchaseService: purchaseService}
}

// List handles listing suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	var filter request.PartyFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SupplierFilterParams{
		Pagination:    &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage},
		Search:        filter.Search,
		WithPurchases: filter.WithTransactions,
	}

	result, err := h.supplierService.ListSuppliers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Suppliers retrieved successfully", result)
}

// Get handles retrieving a single supplier
func (h *SupplierHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	supplier, err := h.supplierService.GetSupplier(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier retrieved successfully", supplier)
}

// Create handles supplier creation
func (h *SupplierHandler) Create(c *gin.Context) {
	var req request.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), &service.CreateSupplierInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Supplier created successfully", supplier)
}

// Update handles partial supplier updates
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), id, &service.UpdateSupplierInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier updated successfully", supplier)
}

// Delete handles supplier deletion
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier deleted successfully", nil)
}

// Purchases handles listing a supplier's recent purchases
func (h *SupplierHandler) Purchases(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	purchases, err := h.purchaseService.PurchasesBySupplier(c.Request.Context(), id, limitQuery(c, 10))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier purchases retrieved successfully", purchases)
}

// Top handles listing the suppliers ranked by purchase amount
func (h *SupplierHandler) Top(c *gin.Context) {
	top, err := h.supplierService.TopSuppliers(c.Request.Context(), limitQuery(c, 10))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top suppliers retrieved successfully", top)
}

// Stats handles supplier statistics
func (h *SupplierHandler) Stats(c *gin.Context) {
	stats, err := h.supplierService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier statistics retrieved successfully", stats)
}
