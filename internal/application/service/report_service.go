package service

import (
	"context"
	"sort"
	"time"

	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/castrillo/cafepos-api/internal/domain/repository"
	"github.com/castrillo/cafepos-api/pkg/apperror"
	"github.com/google/uuid"
)

// Report periods
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// ReportService aggregates settled sales into summary reports. It only reads
// the ledger; nothing here mutates state.
type ReportService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewReportService creates a new report service
func NewReportService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *ReportService {
	return &ReportService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// DailySalesPoint is one calendar day's totals inside a report window
type DailySalesPoint struct {
	Date         string  `json:"date"`
	Total        float64 `json:"total"`
	Transactions int     `json:"transactions"`
}

// TopProductEntry is one product's aggregate inside a report window
type TopProductEntry struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Revenue   float64   `json:"revenue"`
}

// ReportSummary is the aggregated view of one report window
type ReportSummary struct {
	Period            string             `json:"period"`
	StartDate         time.Time          `json:"start_date"`
	EndDate           time.Time          `json:"end_date"`
	TotalSales        float64            `json:"total_sales"`
	TotalTransactions int                `json:"total_transactions"`
	SalesByCategory   map[string]float64 `json:"sales_by_category"`
	DailySales        []DailySalesPoint  `json:"daily_sales"`
	TopProducts       []TopProductEntry  `json:"top_products"`
}

// windowStart resolves a period name into the window's start. Daily covers the
// calendar day of asOf; the rolling periods reach a fixed span back from asOf.
func windowStart(period string, asOf time.Time) (time.Time, error) {
	switch period {
	case PeriodDaily:
		y, m, d := asOf.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, asOf.Location()), nil
	case PeriodWeekly:
		return asOf.AddDate(0, 0, -7), nil
	case PeriodMonthly:
		return asOf.AddDate(0, 0, -30), nil
	case PeriodYearly:
		return asOf.AddDate(0, 0, -365), nil
	}
	return time.Time{}, apperror.NewBadRequestError("Unknown report period")
}

// Summary aggregates the ledger over the window ending at asOf. An empty
// window produces a zeroed report, not an error.
func (s *ReportService) Summary(ctx context.Context, period string, asOf time.Time) (*ReportSummary, error) {
	start, err := windowStart(period, asOf)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, period, start, asOf)
}

// SummaryRange aggregates an explicit [start, end) window
func (s *ReportService) SummaryRange(ctx context.Context, start, end time.Time) (*ReportSummary, error) {
	if !end.After(start) {
		return nil, apperror.NewBadRequestError("End of range must be after its start")
	}
	return s.summarize(ctx, "custom", start, end)
}

type productAgg struct {
	name         string
	quantity     int
	revenueCents int64
}

func (s *ReportService) summarize(ctx context.Context, period string, start, end time.Time) (*ReportSummary, error) {
	sales, err := s.saleRepo.ListWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := &ReportSummary{
		Period:          period,
		StartDate:       start,
		EndDate:         end,
		SalesByCategory: make(map[string]float64),
		DailySales:      []DailySalesPoint{},
		TopProducts:     []TopProductEntry{},
	}

	var totalCents int64
	byProduct := make(map[uuid.UUID]*productAgg)
	type dayAgg struct {
		cents int64
		count int
	}
	byDay := make(map[string]*dayAgg)

	for i := range sales {
		sale := &sales[i]
		totalCents += sale.Total

		day := sale.SettledAt.Format("2006-01-02")
		agg, ok := byDay[day]
		if !ok {
			agg = &dayAgg{}
			byDay[day] = agg
		}
		agg.cents += sale.Total
		agg.count++

		for _, line := range sale.Lines {
			p, ok := byProduct[line.ProductID]
			if !ok {
				p = &productAgg{}
				byProduct[line.ProductID] = p
			}
			p.name = line.ProductName
			p.quantity += line.Quantity
			p.revenueCents += line.Subtotal
		}
	}

	summary.TotalSales = float64(totalCents) / 100
	summary.TotalTransactions = len(sales)

	// Category split reads the live catalog; lines whose product has since
	// been removed are skipped rather than guessed at.
	if len(byProduct) > 0 {
		ids := make([]uuid.UUID, 0, len(byProduct))
		for id := range byProduct {
			ids = append(ids, id)
		}
		products, err := s.productRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		categories := make(map[uuid.UUID]enum.ProductCategory, len(products))
		for i := range products {
			categories[products[i].ID] = products[i].Category
		}
		for id, agg := range byProduct {
			category, ok := categories[id]
			if !ok {
				continue
			}
			summary.SalesByCategory[category.String()] += float64(agg.revenueCents) / 100
		}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		summary.DailySales = append(summary.DailySales, DailySalesPoint{
			Date:         day,
			Total:        float64(byDay[day].cents) / 100,
			Transactions: byDay[day].count,
		})
	}

	entries := make([]TopProductEntry, 0, len(byProduct))
	for id, agg := range byProduct {
		entries = append(entries, TopProductEntry{
			ProductID: id,
			Name:      agg.name,
			Quantity:  agg.quantity,
			Revenue:   float64(agg.revenueCents) / 100,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Quantity != entries[j].Quantity {
			return entries[i].Quantity > entries[j].Quantity
		}
		if entries[i].Revenue != entries[j].Revenue {
			return entries[i].Revenue > entries[j].Revenue
		}
		return entries[i].ProductID.String() < entries[j].ProductID.String()
	})
	if len(entries) > 10 {
		entries = entries[:10]
	}
	summary.TopProducts = entries

	return summary, nil
}
