package entity

import (
	"encoding/json"
	"time"

	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is a settled transaction in the ledger. Rows are append-only: once a
// checkout settles, the sale and its line snapshots never change, so later
// catalog edits cannot rewrite history.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SettledAt     time.Time          `gorm:"not null;index" json:"settled_at"`
	CashierID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"cashier_id"`
	CashierName   string             `gorm:"size:255;not null" json:"cashier_name"`
	CustomerTier  enum.CustomerTier  `gorm:"default:0" json:"customer_type"`
	PaymentMethod enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	Total         int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	AmountPaid    int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	ChangeAmount  int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt     time.Time          `json:"created_at"`

	// Relationships
	Lines []SaleLine `gorm:"foreignKey:SaleID" json:"lines"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		Total        float64 `json:"total"`
		AmountPaid   float64 `json:"amount_paid"`
		ChangeAmount float64 `json:"change_amount"`
	}{
		Alias:        Alias(s),
		Total:        float64(s.Total) / 100,
		AmountPaid:   float64(s.AmountPaid) / 100,
		ChangeAmount: float64(s.ChangeAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// GetTotalDecimal returns the total as a decimal
func (s *Sale) GetTotalDecimal() float64 {
	return float64(s.Total) / 100
}

// SaleLine is an immutable snapshot of one cart line at settlement time. The
// product name and unit price are copied so the ledger stays accurate after
// catalog edits; only the category is re-read from the live catalog when
// reporting.
type SaleLine struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Subtotal    int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (l SaleLine) MarshalJSON() ([]byte, error) {
	type Alias SaleLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Subtotal  float64 `json:"subtotal"`
	}{
		Alias:     Alias(l),
		UnitPrice: float64(l.UnitPrice) / 100,
		Subtotal:  float64(l.Subtotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale line
func (l *SaleLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleLine model
func (SaleLine) TableName() string {
	return "sale_lines"
}
