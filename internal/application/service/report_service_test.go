package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/castrillo/cafepos-api/internal/domain/entity"
	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settledSale(at time.Time, lines ...entity.SaleLine) entity.Sale {
	var total int64
	for _, l := range lines {
		total += l.Subtotal
	}
	return entity.Sale{
		ID:          uuid.New(),
		SettledAt:   at,
		CashierID:   testCashier.ID,
		CashierName: testCashier.Name,
		Total:       total,
		AmountPaid:  total,
		Lines:       lines,
	}
}

func saleLine(p *entity.Product, qty int, unitPrice int64) entity.SaleLine {
	return entity.SaleLine{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    qty,
		UnitPrice:   unitPrice,
		Subtotal:    unitPrice * int64(qty),
	}
}

func TestDailySummaryWindow(t *testing.T) {
	products := newFakeProductRepo()
	sales := newFakeSaleRepo(products)
	svc := NewReportService(sales, products)

	latte := products.add(&entity.Product{Name: "Latte", Category: enum.CategoryHotDrinks, SalePrice: 500})
	soda := products.add(&entity.Product{Name: "Soda", Category: enum.CategoryColdDrinks, SalePrice: 250})

	asOf := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
	yesterday := asOf.AddDate(0, 0, -1)

	require.NoError(t, sales.Append(context.Background(), &entity.Sale{SettledAt: asOf.Add(-4 * time.Hour), Total: 500, AmountPaid: 500, Lines: []entity.SaleLine{saleLine(latte, 1, 500)}}))
	require.NoError(t, sales.Append(context.Background(), &entity.Sale{SettledAt: asOf.Add(-2 * time.Hour), Total: 750, AmountPaid: 750, Lines: []entity.SaleLine{saleLine(soda, 3, 250)}}))
	require.NoError(t, sales.Append(context.Background(), &entity.Sale{SettledAt: asOf.Add(-1 * time.Hour), Total: 250, AmountPaid: 250, Lines: []entity.SaleLine{saleLine(soda, 1, 250)}}))
	// Settled yesterday, outside the daily window
	require.NoError(t, sales.Append(context.Background(), &entity.Sale{SettledAt: yesterday, Total: 9900, AmountPaid: 9900, Lines: []entity.SaleLine{saleLine(latte, 1, 9900)}}))

	summary, err := svc.Summary(context.Background(), PeriodDaily, asOf)
	require.NoError(t, err)

	assert.Equal(t, 15.0, summary.TotalSales)
	assert.Equal(t, 3, summary.TotalTransactions)
	assert.Equal(t, 5.0, summary.SalesByCategory["hot_drinks"])
	assert.Equal(t, 10.0, summary.SalesByCategory["cold_drinks"])

	require.Len(t, summary.DailySales, 1)
	assert.Equal(t, "2026-08-31", summary.DailySales[0].Date)
	assert.Equal(t, 3, summary.DailySales[0].Transactions)

	// Soda by quantity, latte second
	require.Len(t, summary.TopProducts, 2)
	assert.Equal(t, "Soda", summary.TopProducts[0].Name)
	assert.Equal(t, 4, summary.TopProducts[0].Quantity)
	assert.Equal(t, "Latte", summary.TopProducts[1].Name)
}

func TestWeeklySummaryDailySeriesIsChronological(t *testing.T) {
	products := newFakeProductRepo()
	sales := newFakeSaleRepo(products)
	svc := NewReportService(sales, products)

	latte := products.add(&entity.Product{Name: "Latte", Category: enum.CategoryHotDrinks, SalePrice: 350})

	asOf := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	for _, daysBack := range []int{1, 6, 3} {
		s := settledSale(asOf.AddDate(0, 0, -daysBack), saleLine(latte, 1, 350))
		require.NoError(t, sales.Append(context.Background(), &s))
	}
	// Eight days back falls outside the rolling week
	old := settledSale(asOf.AddDate(0, 0, -8), saleLine(latte, 1, 350))
	require.NoError(t, sales.Append(context.Background(), &old))

	summary, err := svc.Summary(context.Background(), PeriodWeekly, asOf)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalTransactions)
	require.Len(t, summary.DailySales, 3)
	assert.Equal(t, "2026-08-25", summary.DailySales[0].Date)
	assert.Equal(t, "2026-08-28", summary.DailySales[1].Date)
	assert.Equal(t, "2026-08-30", summary.DailySales[2].Date)
}

func TestSummarySkipsDeletedProductsInCategorySplit(t *testing.T) {
	products := newFakeProductRepo()
	sales := newFakeSaleRepo(products)
	svc := NewReportService(sales, products)

	latte := products.add(&entity.Product{Name: "Latte", Category: enum.CategoryHotDrinks, SalePrice: 350})
	retired := products.add(&entity.Product{Name: "Seasonal Special", Category: enum.CategoryExtras, SalePrice: 600})

	asOf := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s := settledSale(asOf.Add(-time.Hour), saleLine(latte, 1, 350), saleLine(retired, 1, 600))
	require.NoError(t, sales.Append(context.Background(), &s))

	require.NoError(t, products.Delete(context.Background(), retired.ID))

	summary, err := svc.Summary(context.Background(), PeriodDaily, asOf)
	require.NoError(t, err)

	// Totals still cover the full ledger; only the category split skips the
	// line whose product is gone.
	assert.Equal(t, 9.5, summary.TotalSales)
	assert.Equal(t, 3.5, summary.SalesByCategory["hot_drinks"])
	_, present := summary.SalesByCategory["extras"]
	assert.False(t, present)

	// The retired product still appears in top products from its snapshot
	require.Len(t, summary.TopProducts, 2)
}

func TestTopProductsOrderingAndCap(t *testing.T) {
	products := newFakeProductRepo()
	sales := newFakeSaleRepo(products)
	svc := NewReportService(sales, products)

	asOf := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	var lines []entity.SaleLine
	for i := 0; i < 12; i++ {
		p := products.add(&entity.Product{Name: fmt.Sprintf("Product %02d", i), Category: enum.CategorySnacks, SalePrice: 100})
		lines = append(lines, saleLine(p, i+1, 100))
	}
	// Two products tie on quantity with the last one; revenue breaks the tie
	rich := products.add(&entity.Product{Name: "Rich", Category: enum.CategorySnacks, SalePrice: 900})
	lines = append(lines, saleLine(rich, 12, 900))

	s := settledSale(asOf.Add(-time.Hour), lines...)
	require.NoError(t, sales.Append(context.Background(), &s))

	summary, err := svc.Summary(context.Background(), PeriodDaily, asOf)
	require.NoError(t, err)

	require.Len(t, summary.TopProducts, 10)
	assert.Equal(t, "Rich", summary.TopProducts[0].Name)
	assert.Equal(t, "Product 11", summary.TopProducts[1].Name)
	for i := 1; i < len(summary.TopProducts); i++ {
		assert.GreaterOrEqual(t, summary.TopProducts[i-1].Quantity, summary.TopProducts[i].Quantity)
	}
}

func TestEmptyWindowIsZeroedReport(t *testing.T) {
	products := newFakeProductRepo()
	sales := newFakeSaleRepo(products)
	svc := NewReportService(sales, products)

	summary, err := svc.Summary(context.Background(), PeriodMonthly, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.TotalSales)
	assert.Equal(t, 0, summary.TotalTransactions)
	assert.Empty(t, summary.SalesByCategory)
	assert.Empty(t, summary.DailySales)
	assert.Empty(t, summary.TopProducts)
}

func TestSummaryRejectsUnknownPeriod(t *testing.T) {
	svc := NewReportService(newFakeSaleRepo(nil), newFakeProductRepo())

	_, err := svc.Summary(context.Background(), "fortnightly", time.Now())
	assert.Error(t, err)
}

func TestSummaryRangeValidatesBounds(t *testing.T) {
	svc := NewReportService(newFakeSaleRepo(nil), newFakeProductRepo())
	now := time.Now().UTC()

	_, err := svc.SummaryRange(context.Background(), now, now)
	assert.Error(t, err)

	_, err = svc.SummaryRange(context.Background(), now, now.Add(-time.Hour))
	assert.Error(t, err)

	summary, err := svc.SummaryRange(context.Background(), now.Add(-time.Hour), now)
	require.NoError(t, err)
	assert.Equal(t, "custom", summary.Period)
}
