package entity

import (
	"encoding/json"
	"time"

	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog item. Prices are stored in cents; the catalog
// owns creation and edits, the checkout core only reads prices and bumps the
// sold count on settlement.
type Product struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Name          string               `gorm:"size:255;not null" json:"name"`
	Category      enum.ProductCategory `gorm:"not null;index" json:"category"`
	Cost          int64                `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	SalePrice     int64                `gorm:"not null" json:"-"`  // Stored in cents, excluded from JSON
	EmployeePrice int64                `gorm:"default:0" json:"-"` // Stored in cents; 0 means no employee price
	ImageURL      string               `gorm:"size:512" json:"image_url"`
	SoldCount     int                  `gorm:"default:0" json:"sold_count"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	DeletedAt     gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// UnitPriceCents resolves the unit price for a customer tier. Employees get the
// employee price when one is set (> 0); everyone else pays the sale price.
func (p *Product) UnitPriceCents(tier enum.CustomerTier) int64 {
	if tier == enum.TierEmployee && p.EmployeePrice > 0 {
		return p.EmployeePrice
	}
	return p.SalePrice
}

// GetSalePriceDecimal returns the sale price as a decimal (for display)
func (p *Product) GetSalePriceDecimal() float64 {
	return float64(p.SalePrice) / 100
}

// GetEmployeePriceDecimal returns the employee price as a decimal (for display)
func (p *Product) GetEmployeePriceDecimal() float64 {
	return float64(p.EmployeePrice) / 100
}

// SetCostFromDecimal sets the cost from a decimal value
func (p *Product) SetCostFromDecimal(price float64) {
	p.Cost = int64(price*100 + 0.5)
}

// SetSalePriceFromDecimal sets the sale price from a decimal value
func (p *Product) SetSalePriceFromDecimal(price float64) {
	p.SalePrice = int64(price*100 + 0.5)
}

// SetEmployeePriceFromDecimal sets the employee price from a decimal value
func (p *Product) SetEmployeePriceFromDecimal(price float64) {
	p.EmployeePrice = int64(price*100 + 0.5)
}

// MarshalJSON converts Product to JSON with decimal prices and category metadata
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Cost          float64           `json:"cost"`
		SalePrice     float64           `json:"sale_price"`
		EmployeePrice float64           `json:"employee_price"`
		CategoryMeta  enum.CategoryMeta `json:"category_meta"`
	}{
		Alias:         Alias(p),
		Cost:          float64(p.Cost) / 100,
		SalePrice:     p.GetSalePriceDecimal(),
		EmployeePrice: p.GetEmployeePriceDecimal(),
		CategoryMeta:  p.Category.Meta(),
	})
}
