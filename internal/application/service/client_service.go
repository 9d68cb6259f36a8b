package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/inventa-app/inventa-api/internal/domain/entity"
	"github.com/inventa-app/inventa-api/internal/domain/repository"
	"github.com/inventa-app/inventa-api/pkg/apperror"
	"github.com/inventa-app/inventa-api/pkg/pagination"
)

// ClientService handles client directory operations
type ClientService struct {
	clientRepo    repository.ClientRepository
	saleRepo      repository.SaleRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewClientService creates a new client service
func NewClientService(
	clientRepo repository.ClientRepository,
	saleRepo repository.SaleRepository,
	analyticsRepo repository.AnalyticsRepository,
) *ClientService {
	return &ClientService{
		clientRepo:    clientRepo,
		saleRepo:      saleRepo,
		analyticsRepo: analyticsRepo,
	}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	Name    string
	Phone   *string
	Address *string
}

// UpdateClientInput represents the update client input. Nil fields are left
// unchanged.
type UpdateClientInput struct {
	Name    *string
	Phone   *string
	Address *string
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("Client name is required")
	}

	client := &entity.Client{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClients lists clients with filters and pagination
func (s *ClientService) ListClients(ctx context.Context, params *repository.ClientFilterParams) (*pagination.PaginatedResult[entity.Client], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	clients, total, err := s.clientRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}

// UpdateClient updates a client. Only non-nil fields are changed.
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewValidationError("Client name is required")
		}
		client.Name = *input.Name
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Address != nil {
		client.Address = input.Address
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient deletes a client. Clients with registered sales cannot be
// deleted, so sale history is never orphaned.
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}

	sales, err := s.saleRepo.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if sales > 0 {
		return apperror.NewConflictError("Cannot delete a client with registered sales")
	}

	return s.clientRepo.Delete(ctx, id)
}

// TopClients returns the clients ranked by total sale amount
func (s *ClientService) TopClients(ctx context.Context, limit int) ([]repository.PartyTotalResult, error) {
	return s.analyticsRepo.TopClients(ctx, limit)
}

// PartyStats summarizes a directory of clients or suppliers
type PartyStats struct {
	Total            int64 `json:"total"`
	WithTransactions int64 `json:"with_transactions"`
}

// Stats returns client counters
func (s *ClientService) Stats(ctx context.Context) (*PartyStats, error) {
	one := &pagination.PaginationParams{Page: 1, PerPage: 1}

	_, total, err := s.clientRepo.List(ctx, &repository.ClientFilterParams{Pagination: one})
	if err != nil {
		return nil, err
	}
	_, withSales, err := s.clientRepo.List(ctx, &repository.ClientFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 1},
		WithSales:  true,
	})
	if err != nil {
		return nil, err
	}

	return &PartyStats{Total: total, WithTransactions: withSales}, nil
}
