package service

import (
	"context"
	"errors"
	"testing"

	"github.com/castrillo/cafepos-api/internal/domain/entity"
	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/castrillo/cafepos-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutFixture() (*CheckoutService, *fakeProductRepo, *fakeSaleRepo, *entity.Product, *entity.Product) {
	products := newFakeProductRepo()
	sales := newFakeSaleRepo(products)

	latte := products.add(&entity.Product{
		Name:          "Latte",
		Category:      enum.CategoryHotDrinks,
		SalePrice:     350,
		EmployeePrice: 300,
	})
	sandwich := products.add(&entity.Product{
		Name:      "Sandwich",
		Category:  enum.CategorySnacks,
		SalePrice: 500,
	})

	return NewCheckoutService(products, sales), products, sales, latte, sandwich
}

var testCashier = Cashier{ID: uuid.New(), Name: "Cashier User"}

func fillCart(t *testing.T, svc *CheckoutService, latte, sandwich *entity.Product) {
	t.Helper()
	ctx := context.Background()
	_, err := svc.AddItem(ctx, testCashier.ID, latte.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, testCashier.ID, latte.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, testCashier.ID, sandwich.ID)
	require.NoError(t, err)
}

func TestOpenCheckoutRejectsEmptyCart(t *testing.T) {
	svc, _, _, _, _ := checkoutFixture()

	_, err := svc.OpenCheckout(context.Background(), testCashier.ID)
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)

	// No checkout state was created
	_, err = svc.GetCheckout(context.Background(), testCashier.ID)
	assert.ErrorIs(t, err, apperror.ErrNoOpenCheckout)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _, _, _, _ := checkoutFixture()

	_, err := svc.AddItem(context.Background(), testCashier.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCashCheckoutSettles(t *testing.T) {
	svc, _, sales, latte, sandwich := checkoutFixture()
	ctx := context.Background()
	fillCart(t, svc, latte, sandwich)

	view, err := svc.OpenCheckout(ctx, testCashier.ID)
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingMethod, view.State)
	assert.Equal(t, 12.0, view.Total) // 2 x 3.50 + 5.00

	view, sale, err := svc.ChooseMethod(ctx, testCashier, enum.PaymentCash)
	require.NoError(t, err)
	assert.Nil(t, sale)
	assert.Equal(t, StateCashPending, view.State)

	// Tendering less than the total is rejected and the state holds
	_, err = svc.TenderCash(ctx, testCashier, 1199)
	assert.ErrorIs(t, err, apperror.ErrInsufficientPayment)
	view, err = svc.GetCheckout(ctx, testCashier.ID)
	require.NoError(t, err)
	assert.Equal(t, StateCashPending, view.State)

	sale, err = svc.TenderCash(ctx, testCashier, 1500)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), sale.Total)
	assert.Equal(t, int64(1500), sale.AmountPaid)
	assert.Equal(t, int64(300), sale.ChangeAmount)
	assert.Equal(t, testCashier.Name, sale.CashierName)
	require.Len(t, sales.sales, 1)

	// Cart is fresh and the checkout is closed
	cart, err := svc.GetCart(ctx, testCashier.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	_, err = svc.GetCheckout(ctx, testCashier.ID)
	assert.ErrorIs(t, err, apperror.ErrNoOpenCheckout)
}

func TestEmployeeTierReprices(t *testing.T) {
	svc, _, _, latte, sandwich := checkoutFixture()
	ctx := context.Background()
	fillCart(t, svc, latte, sandwich)

	_, err := svc.SetTier(ctx, testCashier.ID, enum.TierEmployee)
	require.NoError(t, err)

	view, err := svc.OpenCheckout(ctx, testCashier.ID)
	require.NoError(t, err)
	// Latte drops to 3.00; sandwich has no employee price and stays 5.00
	assert.Equal(t, 11.0, view.Total)

	_, sale, err := svc.ChooseMethod(ctx, testCashier, enum.PaymentCard)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, int64(1100), sale.Total)
	assert.Equal(t, enum.TierEmployee, sale.CustomerTier)
}

func TestCardSettlesImmediately(t *testing.T) {
	svc, products, _, latte, sandwich := checkoutFixture()
	ctx := context.Background()
	fillCart(t, svc, latte, sandwich)

	_, err := svc.OpenCheckout(ctx, testCashier.ID)
	require.NoError(t, err)

	view, sale, err := svc.ChooseMethod(ctx, testCashier, enum.PaymentCard)
	require.NoError(t, err)
	assert.Nil(t, view)
	require.NotNil(t, sale)
	assert.Equal(t, sale.Total, sale.AmountPaid)
	assert.Equal(t, int64(0), sale.ChangeAmount)

	// Sold counts were bumped by line quantity
	p, _ := products.GetByID(ctx, latte.ID)
	assert.Equal(t, 2, p.SoldCount)
	p, _ = products.GetByID(ctx, sandwich.ID)
	assert.Equal(t, 1, p.SoldCount)
}

func TestBackDiscardsMethodChoice(t *testing.T) {
	svc, _, _, latte, sandwich := checkoutFixture()
	ctx := context.Background()
	fillCart(t, svc, latte, sandwich)

	_, err := svc.OpenCheckout(ctx, testCashier.ID)
	require.NoError(t, err)
	_, _, err = svc.ChooseMethod(ctx, testCashier, enum.PaymentCash)
	require.NoError(t, err)

	view, err := svc.Back(ctx, testCashier.ID)
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingMethod, view.State)

	// Tendering cash is no longer valid
	_, err = svc.TenderCash(ctx, testCashier, 2000)
	assert.ErrorIs(t, err, apperror.ErrCheckoutState)
}

func TestCancelLeavesCartUntouched(t *testing.T) {
	svc, _, sales, latte, sandwich := checkoutFixture()
	ctx := context.Background()
	fillCart(t, svc, latte, sandwich)

	_, err := svc.OpenCheckout(ctx, testCashier.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, testCashier.ID))

	cart, err := svc.GetCart(ctx, testCashier.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
	assert.Empty(t, sales.sales)

	// The same cart can open a new checkout
	_, err = svc.OpenCheckout(ctx, testCashier.ID)
	assert.NoError(t, err)
}

func TestSettleFailureRetains(t *testing.T) {
	svc, products, sales, latte, sandwich := checkoutFixture()
	ctx := context.Background()
	fillCart(t, svc, latte, sandwich)

	_, err := svc.OpenCheckout(ctx, testCashier.ID)
	require.NoError(t, err)

	sales.failWith = errors.New("connection reset")
	_, _, err = svc.ChooseMethod(ctx, testCashier, enum.PaymentCard)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 503, appErr.Code)
	assert.True(t, appErr.Retryable)

	// Checkout moved to settle_pending with the cart intact
	view, err := svc.GetCheckout(ctx, testCashier.ID)
	require.NoError(t, err)
	assert.Equal(t, StateSettlePending, view.State)
	cart, err := svc.GetCart(ctx, testCashier.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)

	// A failed retry keeps it retryable
	_, err = svc.Retry(ctx, testCashier.ID)
	require.Error(t, err)

	// Once the ledger recovers, retry settles the retained sale exactly once
	sales.failWith = nil
	sale, err := svc.Retry(ctx, testCashier.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), sale.Total)
	require.Len(t, sales.sales, 1)

	p, _ := products.GetByID(ctx, latte.ID)
	assert.Equal(t, 2, p.SoldCount)

	cart, err = svc.GetCart(ctx, testCashier.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestSessionsAreIsolated(t *testing.T) {
	svc, _, _, latte, sandwich := checkoutFixture()
	ctx := context.Background()
	other := Cashier{ID: uuid.New(), Name: "Other Cashier"}

	_, err := svc.AddItem(ctx, testCashier.ID, latte.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, other.ID, sandwich.ID)
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, testCashier.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, latte.ID, cart.Lines[0].ProductID)

	cart, err = svc.GetCart(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, sandwich.ID, cart.Lines[0].ProductID)
}
