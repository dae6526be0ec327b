package request

import "github.com/google/uuid"

// SaleLineRequest is one line of a submitted sale, amounts as decimals
type SaleLineRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	ProductName string    `json:"product_name" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64   `json:"unit_price" binding:"min=0"`
	Subtotal    float64   `json:"subtotal" binding:"min=0"`
}

// CreateSaleRequest is a complete sale payload submitted for recording
type CreateSaleRequest struct {
	Lines         []SaleLineRequest `json:"products" binding:"required,dive"`
	Total         float64           `json:"total" binding:"min=0"`
	CustomerType  string            `json:"customer_type" binding:"required,oneof=customer employee"`
	PaymentMethod string            `json:"payment_method" binding:"required,oneof=cash card transfer"`
	AmountPaid    float64           `json:"amount_paid" binding:"min=0"`
	ChangeAmount  float64           `json:"change_amount" binding:"min=0"`
}

// SaleFilterRequest bounds a ledger listing
type SaleFilterRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
