package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/inventa-app/inventa-api/internal/application/service"
	"github.com/inventa-app/inventa-api/internal/domain/repository"
	"github.com/inventa-app/inventa-api/internal/presentation/http/dto/request"
	"github.com/inventa-app/inventa-api/internal/presentation/http/dto/response"
	"github.com/inventa-app/inventa-api/pkg/pagination"
)

// ClientHandler handles client-related HTTP requests
type ClientHandler struct {
	clientService *service.ClientService
	saleService   *service.SaleService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *service.ClientService, saleService *service.SaleService) *ClientHandler {
	return &ClientHandler{clientService: clientService, saleService: saleService}
}

// List handles listing clients
func (h *ClientHandler) List(c *gin.Context) {
	var filter request.PartyFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ClientFilterParams{
		Pagination: &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage},
		Search:     filter.Search,
		WithSales:  filter.WithTransactions,
	}

	result, err := h.clientService.ListClients(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Clients retrieved successfully", result)
}

// Get handles retrieving a single client
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client retrieved successfully", client)
}

// Create handles client creation
func (h *ClientHandler) Create(c *gin.Context) {
	var req request.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), &service.CreateClientInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Client created successfully", client)
}

// Update handles partial client updates
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, &service.UpdateClientInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client updated successfully", client)
}

// Delete handles client deletion
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client deleted successfully", nil)
}

// Sales handles listing a client's recent sales
func (h *ClientHandler) Sales(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	sales, err := h.saleService.SalesByClient(c.Request.Context(), id, limitQuery(c, 10))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client sales retrieved successfully", sales)
}

// Top handles listing the clients ranked by sale amount
func (h *ClientHandler) Top(c *gin.Context) {
	top, err := h.clientService.TopClients(c.Request.Context(), limitQuery(c, 10))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top clients retrieved successfully", top)
}

// Stats handles client statistics
func (h *ClientHandler) Stats(c *gin.Context) {
	stats, err := h.clientService.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client statistics retrieved successfully", stats)
}
