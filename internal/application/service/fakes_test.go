package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/castrillo/cafepos-api/internal/domain/entity"
	domainRepo "github.com/castrillo/cafepos-api/internal/domain/repository"
	"github.com/google/uuid"
)

// fakeProductRepo is an in-memory catalog for service tests
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepo) add(p *entity.Product) *entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return p
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.add(product)
	return nil
}

func (r *fakeProductRepo) CreateBatch(ctx context.Context, products []entity.Product) error {
	for i := range products {
		r.add(&products[i])
	}
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if params.Category != nil && p.Category != *params.Category {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Search)) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) GetTopSellers(ctx context.Context, limit int) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.SoldCount > 0 {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SoldCount > out[j].SoldCount })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

// fakeSaleRepo is an in-memory ledger with failure injection
type fakeSaleRepo struct {
	mu       sync.Mutex
	sales    []entity.Sale
	failWith error // next Append calls fail with this until cleared
	products *fakeProductRepo
}

func newFakeSaleRepo(products *fakeProductRepo) *fakeSaleRepo {
	return &fakeSaleRepo{products: products}
}

func (r *fakeSaleRepo) Append(ctx context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	if sale.SettledAt.IsZero() {
		sale.SettledAt = time.Now().UTC()
	}
	r.sales = append(r.sales, *sale)
	if r.products != nil {
		r.products.mu.Lock()
		for _, line := range sale.Lines {
			if p, ok := r.products.products[line.ProductID]; ok {
				p.SoldCount += line.Quantity
			}
		}
		r.products.mu.Unlock()
	}
	return nil
}

func (r *fakeSaleRepo) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		if params.StartDate != nil && s.SettledAt.Before(*params.StartDate) {
			continue
		}
		if params.EndDate != nil && !s.SettledAt.Before(*params.EndDate) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SettledAt.After(out[j].SettledAt) })
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) ListWindow(ctx context.Context, start, end time.Time) ([]entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		if s.SettledAt.Before(start) || !s.SettledAt.Before(end) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SettledAt.Before(out[j].SettledAt) })
	return out, nil
}
