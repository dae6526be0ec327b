package service

import (
	"context"
	"testing"

	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/castrillo/cafepos-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSaleInput() *CreateSaleInput {
	return &CreateSaleInput{
		Lines: []SaleLineInput{
			{ProductID: uuid.New(), ProductName: "Latte", Quantity: 2, UnitPrice: 350, Subtotal: 700},
			{ProductID: uuid.New(), ProductName: "Sandwich", Quantity: 1, UnitPrice: 500, Subtotal: 500},
		},
		Total:         1200,
		CustomerTier:  enum.TierCustomer,
		PaymentMethod: enum.PaymentCash,
		AmountPaid:    1500,
		ChangeAmount:  300,
	}
}

func TestCreateSaleRecords(t *testing.T) {
	sales := newFakeSaleRepo(nil)
	svc := NewSaleService(sales)

	sale, err := svc.Create(context.Background(), testCashier, validSaleInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sale.ID)
	assert.False(t, sale.SettledAt.IsZero())
	assert.Equal(t, testCashier.ID, sale.CashierID)
	require.Len(t, sales.sales, 1)
}

func TestCreateSaleRejectsBadArithmetic(t *testing.T) {
	svc := NewSaleService(newFakeSaleRepo(nil))
	ctx := context.Background()

	// Subtotal not matching unit price times quantity
	in := validSaleInput()
	in.Lines[0].Subtotal = 699
	_, err := svc.Create(ctx, testCashier, in)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	// Total not matching the sum of subtotals
	in = validSaleInput()
	in.Total = 1199
	_, err = svc.Create(ctx, testCashier, in)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	// Cash change must equal paid minus total
	in = validSaleInput()
	in.ChangeAmount = 299
	_, err = svc.Create(ctx, testCashier, in)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	// Zero quantity line
	in = validSaleInput()
	in.Lines[1].Quantity = 0
	_, err = svc.Create(ctx, testCashier, in)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestCreateSaleCashUnderpayment(t *testing.T) {
	svc := NewSaleService(newFakeSaleRepo(nil))

	in := validSaleInput()
	in.AmountPaid = 1199
	in.ChangeAmount = 0
	_, err := svc.Create(context.Background(), testCashier, in)
	assert.ErrorIs(t, err, apperror.ErrInsufficientPayment)
}

func TestCreateSaleNonCashExactAmount(t *testing.T) {
	svc := NewSaleService(newFakeSaleRepo(nil))
	ctx := context.Background()

	// Card with overpayment is malformed
	in := validSaleInput()
	in.PaymentMethod = enum.PaymentCard
	in.AmountPaid = 1300
	in.ChangeAmount = 100
	_, err := svc.Create(ctx, testCashier, in)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	// Exact transfer is fine
	in = validSaleInput()
	in.PaymentMethod = enum.PaymentTransfer
	in.AmountPaid = 1200
	in.ChangeAmount = 0
	_, err = svc.Create(ctx, testCashier, in)
	assert.NoError(t, err)
}

func TestCreateSaleEmptyLines(t *testing.T) {
	svc := NewSaleService(newFakeSaleRepo(nil))

	in := validSaleInput()
	in.Lines = nil
	in.Total = 0
	in.AmountPaid = 0
	in.ChangeAmount = 0
	_, err := svc.Create(context.Background(), testCashier, in)
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
}

func TestCreateSaleLedgerFailureIsRetryable(t *testing.T) {
	sales := newFakeSaleRepo(nil)
	svc := NewSaleService(sales)

	sales.failWith = assert.AnError
	_, err := svc.Create(context.Background(), testCashier, validSaleInput())
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 503, appErr.Code)
	assert.True(t, appErr.Retryable)
	assert.Empty(t, sales.sales)
}
