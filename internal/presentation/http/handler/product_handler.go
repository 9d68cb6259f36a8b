package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inventa-app/inventa-api/internal/application/service"
	"github.com/inventa-app/inventa-api/internal/domain/enum"
	"github.com/inventa-app/inventa-api/internal/domain/repository"
	"github.com/inventa-app/inventa-api/internal/presentation/http/dto/request"
	"github.com/inventa-app/inventa-api/internal/presentation/http/dto/response"
	"github.com/inventa-app/inventa-api/pkg/pagination"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService    *service.ProductService
	lowStockThreshold int
}

// NewProductHandler creates a new product handler. lowStockThreshold is the
// configured default applied when a request does not supply one.
func NewProductHandler(productService *service.ProductService, lowStockThreshold int) *ProductHandler {
	return &ProductHandler{
		productService:    productService,
		lowStockThreshold: lowStockThreshold,
	}
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:     filter.Search,
		ActiveOnly: filter.ActiveOnly,
		LowStock:   filter.LowStock,
		Threshold:  filter.Threshold,
	}
	if params.LowStock && params.Threshold <= 0 {
		params.Threshold = h.lowStockThreshold
	}

	if filter.CategoryID != "" {
		if catID, err := uuid.Parse(filter.CategoryID); err == nil {
			params.CategoryID = &catID
		}
	}
	if filter.SupplierID != "" {
		if supID, err := uuid.Parse(filter.SupplierID); err == nil {
			params.SupplierID = &supID
		}
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Get handles retrieving a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expiresAt, err := parseOptionalDate(stringValue(req.ExpiresAt))
	if err != nil {
		response.BadRequest(c, "Invalid expires_at date, expected YYYY-MM-DD")
		return
	}

	input := &service.CreateProductInput{
		Name:       req.Name,
		Stock:      req.Stock,
		UnitPrice:  req.UnitPrice,
		UnitCost:   req.UnitCost,
		ExpiresAt:  expiresAt,
		SupplierID: req.SupplierID,
		CategoryID: req.CategoryID,
	}
	if req.Status != nil {
		status := enum.ProductStatus(*req.Status)
		input.Status = &status
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Update handles partial product updates
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateProductInput{
		Name:       req.Name,
		Stock:      req.Stock,
		UnitPrice:  req.UnitPrice,
		UnitCost:   req.UnitCost,
		SupplierID: req.SupplierID,
		CategoryID: req.CategoryID,
	}
	if req.ExpiresAt != nil {
		expiresAt, err := parseOptionalDate(*req.ExpiresAt)
		if err != nil {
			response.BadRequest(c, "Invalid expires_at date, expected YYYY-MM-DD")
			return
		}
		input.ExpiresAt = expiresAt
	}
	if req.Status != nil {
		status := enum.ProductStatus(*req.Status)
		input.Status = &status
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles product deletion
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

// LowStock handles listing products running low
func (h *ProductHandler) LowStock(c *gin.Context) {
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

	products, err := h.productService.LowStockProducts(c.Request.Context(), threshold)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", products)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
