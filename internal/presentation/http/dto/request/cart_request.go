package request

import "github.com/google/uuid"

// AddCartItemRequest adds one unit of a product to the session cart
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// ChangeQuantityRequest adjusts a cart line by a signed delta
type ChangeQuantityRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Delta     int       `json:"delta" binding:"required"`
}

// SetTierRequest switches the cart's customer tier
type SetTierRequest struct {
	CustomerType string `json:"customer_type" binding:"required,oneof=customer employee"`
}

// ChooseMethodRequest picks the payment method for an open checkout
type ChooseMethodRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cash card transfer"`
}

// TenderCashRequest submits the cash amount handed over, as a decimal
type TenderCashRequest struct {
	AmountPaid float64 `json:"amount_paid" binding:"required,gt=0"`
}
