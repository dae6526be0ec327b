package service

import (
	"context"

	"github.com/castrillo/cafepos-api/internal/domain/entity"
	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/castrillo/cafepos-api/internal/domain/repository"
	"github.com/castrillo/cafepos-api/pkg/apperror"
	"github.com/castrillo/cafepos-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents input for creating a product. Prices arrive as
// decimal values and are converted to cents on the entity.
type CreateProductInput struct {
	Name          string
	Category      enum.ProductCategory
	Cost          float64
	SalePrice     float64
	EmployeePrice float64
	ImageURL      string
}

func validatePrices(cost, salePrice, employeePrice float64) error {
	var fieldErrors []apperror.FieldError
	if cost < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "cost", Message: "must not be negative"})
	}
	if salePrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "sale_price", Message: "must not be negative"})
	}
	if employeePrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "employee_price", Message: "must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// Create adds a product to the catalog
func (s *ProductService) Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if !input.Category.Valid() {
		return nil, apperror.NewBadRequestError("Unknown product category")
	}
	if err := validatePrices(input.Cost, input.SalePrice, input.EmployeePrice); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:     input.Name,
		Category: input.Category,
		ImageURL: input.ImageURL,
	}
	product.SetCostFromDecimal(input.Cost)
	product.SetSalePriceFromDecimal(input.SalePrice)
	product.SetEmployeePriceFromDecimal(input.EmployeePrice)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents input for updating a product
type UpdateProductInput struct {
	Name          *string
	Category      *enum.ProductCategory
	Cost          *float64
	SalePrice     *float64
	EmployeePrice *float64
	ImageURL      *string
}

// Update modifies a catalog product. Price edits take effect on open carts the
// next time their total is computed; settled sales keep their snapshots.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, apperror.NewBadRequestError("Unknown product category")
		}
		product.Category = *input.Category
	}
	if input.Cost != nil {
		if *input.Cost < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "cost", Message: "must not be negative"}})
		}
		product.SetCostFromDecimal(*input.Cost)
	}
	if input.SalePrice != nil {
		if *input.SalePrice < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "sale_price", Message: "must not be negative"}})
		}
		product.SetSalePriceFromDecimal(*input.SalePrice)
	}
	if input.EmployeePrice != nil {
		if *input.EmployeePrice < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "employee_price", Message: "must not be negative"}})
		}
		product.SetEmployeePriceFromDecimal(*input.EmployeePrice)
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product from the catalog. Open carts holding the product
// will fail their next total computation; the ledger is unaffected.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	paging := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, paging), nil
}

// GetTopSellers returns the best-selling products by cumulative sold count
func (s *ProductService) GetTopSellers(ctx context.Context, limit int) ([]entity.Product, error) {
	if limit <= 0 {
		limit = 9
	}
	return s.productRepo.GetTopSellers(ctx, limit)
}
