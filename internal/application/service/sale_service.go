package service

import (
	"context"
	"time"

	"github.com/castrillo/cafepos-api/internal/domain/entity"
	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/castrillo/cafepos-api/internal/domain/repository"
	"github.com/castrillo/cafepos-api/pkg/apperror"
	"github.com/castrillo/cafepos-api/pkg/pagination"
	"github.com/google/uuid"
)

// SaleService records and lists ledger entries submitted as complete payloads
type SaleService struct {
	saleRepo repository.SaleRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo}
}

// SaleLineInput is one line of a submitted sale payload, amounts in cents
type SaleLineInput struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   int64
	Subtotal    int64
}

// CreateSaleInput is a complete sale payload, amounts in cents
type CreateSaleInput struct {
	Lines         []SaleLineInput
	Total         int64
	CustomerTier  enum.CustomerTier
	PaymentMethod enum.PaymentMethod
	AmountPaid    int64
	ChangeAmount  int64
}

// validate checks the payload's internal arithmetic before anything is
// written. Any violation rejects the whole payload; no partial record.
func (in *CreateSaleInput) validate() error {
	if len(in.Lines) == 0 {
		return apperror.ErrEmptyCart
	}
	if !in.CustomerTier.Valid() {
		return apperror.NewMalformedPayloadError("Unknown customer type")
	}
	if !in.PaymentMethod.Valid() {
		return apperror.NewMalformedPayloadError("Unknown payment method")
	}

	var sum int64
	for _, line := range in.Lines {
		if line.Quantity <= 0 {
			return apperror.NewMalformedPayloadError("Line quantity must be positive")
		}
		if line.UnitPrice < 0 {
			return apperror.NewMalformedPayloadError("Line unit price must not be negative")
		}
		if line.Subtotal != line.UnitPrice*int64(line.Quantity) {
			return apperror.NewMalformedPayloadError("Line subtotal does not match unit price and quantity")
		}
		sum += line.Subtotal
	}
	if in.Total != sum {
		return apperror.NewMalformedPayloadError("Total does not match the sum of line subtotals")
	}

	if in.PaymentMethod.IsCash() {
		if in.AmountPaid < in.Total {
			return apperror.ErrInsufficientPayment
		}
		if in.ChangeAmount != in.AmountPaid-in.Total {
			return apperror.NewMalformedPayloadError("Change does not match amount paid minus total")
		}
	} else {
		if in.AmountPaid != in.Total {
			return apperror.NewMalformedPayloadError("Non-cash payment must equal the total exactly")
		}
		if in.ChangeAmount != 0 {
			return apperror.NewMalformedPayloadError("Non-cash payment cannot produce change")
		}
	}
	return nil
}

// Create validates and appends a submitted sale to the ledger. The cashier
// identity comes from the authenticated session, never the payload.
func (s *SaleService) Create(ctx context.Context, cashier Cashier, input *CreateSaleInput) (*entity.Sale, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	lines := make([]entity.SaleLine, 0, len(input.Lines))
	for _, in := range input.Lines {
		lines = append(lines, entity.SaleLine{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Subtotal:    in.Subtotal,
		})
	}

	sale := &entity.Sale{
		CashierID:     cashier.ID,
		CashierName:   cashier.Name,
		CustomerTier:  input.CustomerTier,
		PaymentMethod: input.PaymentMethod,
		Total:         input.Total,
		AmountPaid:    input.AmountPaid,
		ChangeAmount:  input.ChangeAmount,
		Lines:         lines,
	}

	if err := s.saleRepo.Append(ctx, sale); err != nil {
		return nil, apperror.NewLedgerWriteError(err)
	}
	return sale, nil
}

// ListSalesInput bounds a ledger listing
type ListSalesInput struct {
	Pagination *pagination.PaginationParams
	StartDate  *time.Time
	EndDate    *time.Time
}

// List returns previously recorded sales, most recent first
func (s *SaleService) List(ctx context.Context, input *ListSalesInput) (*pagination.PaginatedResult[entity.Sale], error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultPagination()
	}
	input.Pagination.Validate()

	sales, total, err := s.saleRepo.List(ctx, &repository.SaleFilterParams{
		Pagination: input.Pagination,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	})
	if err != nil {
		return nil, err
	}

	paging := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, paging), nil
}
