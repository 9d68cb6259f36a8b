package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/inventa-app/inventa-api/internal/domain/entity"
	"github.com/inventa-app/inventa-api/internal/domain/repository"
	"github.com/inventa-app/inventa-api/pkg/apperror"
	"github.com/inventa-app/inventa-api/pkg/pagination"
)

// CategoryService handles product category operations
type CategoryService struct {
	categoryRepo  repository.CategoryRepository
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	analyticsRepo repository.AnalyticsRepository,
) *CategoryService {
	return &CategoryService{
		categoryRepo:  categoryRepo,
		productRepo:   productRepo,
		analyticsRepo: analyticsRepo,
	}
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewValidationError("Category name is required")
	}
	category := &entity.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// ListCategories lists categories with optional search
func (s *CategoryService) ListCategories(ctx context.Context, params *pagination.PaginationParams, search string, withProducts bool) (*pagination.PaginatedResult[entity.Category], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	categories, total, err := s.categoryRepo.List(ctx, params, search, withProducts)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(categories, pag), nil
}

// UpdateCategory renames a category
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewValidationError("Category name is required")
	}
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a category. Categories still holding products
// cannot be deleted.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}

	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.NewConflictError("Cannot delete a category that still has products")
	}

	return s.categoryRepo.Delete(ctx, id)
}

// CategoryStats summarizes the category catalog
type CategoryStats struct {
	Total           int64                            `json:"total"`
	WithProducts    int64                            `json:"with_products"`
	WithoutProducts int64                            `json:"without_products"`
	MostStocked     []repository.CategoryStockResult `json:"most_stocked"`
}

// Stats returns category counters and the categories holding the most stock
func (s *CategoryService) Stats(ctx context.Context) (*CategoryStats, error) {
	one := &pagination.PaginationParams{Page: 1, PerPage: 1}

	_, total, err := s.categoryRepo.List(ctx, one, "", false)
	if err != nil {
		return nil, err
	}
	_, withProducts, err := s.categoryRepo.List(ctx, one, "", true)
	if err != nil {
		return nil, err
	}
	mostStocked, err := s.analyticsRepo.TopCategoriesByStock(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &CategoryStats{
		Total:           total,
		WithProducts:    withProducts,
		WithoutProducts: total - withProducts,
		MostStocked:     mostStocked,
	}, nil
}
