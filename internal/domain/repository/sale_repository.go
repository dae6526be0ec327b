package repository

import (
	"context"
	"time"

	"github.com/castrillo/cafepos-api/internal/domain/entity"
	"github.com/castrillo/cafepos-api/pkg/pagination"
)

// SaleRepository is the append-only sales ledger. Sales are immutable once
// appended; there is deliberately no update or delete.
type SaleRepository interface {
	// Append durably records the sale with all its lines and increments each
	// referenced product's sold count by the line quantity, atomically: either
	// everything is written or nothing is. Assigns the id and settlement
	// timestamp when the caller left them unset.
	Append(ctx context.Context, sale *entity.Sale) error
	// List returns previously appended sales, optionally bounded by a time
	// range, ordered by settlement timestamp descending.
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// ListWindow returns all sales settled inside [start, end) in ascending
	// settlement order, for report aggregation.
	ListWindow(ctx context.Context, start, end time.Time) ([]entity.Sale, error)
}

// SaleFilterParams contains filtering parameters for ledger queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	StartDate  *time.Time
	EndDate    *time.Time
}
