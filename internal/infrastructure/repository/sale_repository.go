package repository

import (
	"context"
	"time"

	"github.com/castrillo/cafepos-api/internal/domain/entity"
	domainRepo "github.com/castrillo/cafepos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// Append writes the sale with its lines and bumps each product's sold count in
// one transaction. A failure anywhere rolls back the whole append, so the
// ledger never holds a sale whose counts were not applied.
func (r *saleRepository) Append(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	if sale.SettledAt.IsZero() {
		sale.SettledAt = time.Now().UTC()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		for _, line := range sale.Lines {
			if err := tx.Model(&entity.Product{}).
				Where("id = ?", line.ProductID).
				Update("sold_count", gorm.Expr("sold_count + ?", line.Quantity)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.StartDate != nil {
		query = query.Where("settled_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("settled_at < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Lines").
		Order("settled_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListWindow(ctx context.Context, start, end time.Time) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Where("settled_at >= ? AND settled_at < ?", start, end).
		Preload("Lines").
		Order("settled_at ASC").
		Find(&sales).Error
	return sales, err
}
