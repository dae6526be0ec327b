package entity

import (
	"encoding/json"
	"testing"

	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitPriceCents(t *testing.T) {
	p := &Product{SalePrice: 350, EmployeePrice: 250}

	assert.Equal(t, int64(350), p.UnitPriceCents(enum.TierCustomer))
	assert.Equal(t, int64(250), p.UnitPriceCents(enum.TierEmployee))

	// No employee price set falls back to the sale price
	p.EmployeePrice = 0
	assert.Equal(t, int64(350), p.UnitPriceCents(enum.TierEmployee))
}

func TestSetPriceFromDecimalRounds(t *testing.T) {
	p := &Product{}
	p.SetSalePriceFromDecimal(3.50)
	assert.Equal(t, int64(350), p.SalePrice)

	// Binary float noise must not lose a cent
	p.SetSalePriceFromDecimal(0.29)
	assert.Equal(t, int64(29), p.SalePrice)
}

func TestProductMarshalJSONDecimalPrices(t *testing.T) {
	p := Product{
		Name:          "Latte",
		Category:      enum.CategoryHotDrinks,
		Cost:          150,
		SalePrice:     375,
		EmployeePrice: 275,
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, 3.75, out["sale_price"])
	assert.Equal(t, 2.75, out["employee_price"])
	assert.Equal(t, 1.5, out["cost"])
	assert.Equal(t, "hot_drinks", out["category"])

	meta, ok := out["category_meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Hot Drinks", meta["label"])
}
