package entity

import (
	"testing"

	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() (map[uuid.UUID]*Product, *Product, *Product) {
	latte := &Product{
		ID:            uuid.New(),
		Name:          "Latte",
		Category:      enum.CategoryHotDrinks,
		SalePrice:     350,
		EmployeePrice: 300,
	}
	sandwich := &Product{
		ID:        uuid.New(),
		Name:      "Sandwich",
		Category:  enum.CategorySnacks,
		SalePrice: 500,
	}
	catalog := map[uuid.UUID]*Product{latte.ID: latte, sandwich.ID: sandwich}
	return catalog, latte, sandwich
}

func lookupFrom(catalog map[uuid.UUID]*Product) ProductLookup {
	return func(id uuid.UUID) (*Product, error) {
		return catalog[id], nil
	}
}

func TestCartAddIncrementsExistingLine(t *testing.T) {
	_, latte, _ := testCatalog()

	cart := NewCart()
	cart.AddProduct(latte)
	cart.AddProduct(latte)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCartTotalResolvesLivePrices(t *testing.T) {
	catalog, latte, sandwich := testCatalog()

	cart := NewCart()
	cart.AddProduct(latte)
	cart.AddProduct(latte)
	cart.AddProduct(sandwich)

	total, err := cart.TotalCents(lookupFrom(catalog))
	require.NoError(t, err)
	assert.Equal(t, int64(1200), total) // 2 x 3.50 + 5.00

	// A tier switch reprices every line on the next total
	cart.SetTier(enum.TierEmployee)
	total, err = cart.TotalCents(lookupFrom(catalog))
	require.NoError(t, err)
	assert.Equal(t, int64(1100), total) // latte drops to 3.00, sandwich has no employee price

	// A catalog price edit shows up immediately too
	latte.SalePrice = 400
	cart.SetTier(enum.TierCustomer)
	total, err = cart.TotalCents(lookupFrom(catalog))
	require.NoError(t, err)
	assert.Equal(t, int64(1300), total)
}

func TestCartChangeQuantity(t *testing.T) {
	catalog, latte, _ := testCatalog()

	cart := NewCart()
	cart.AddProduct(latte)
	cart.ChangeQuantity(latte.ID, 2)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	// Dropping to zero removes the line
	cart.ChangeQuantity(latte.ID, -3)
	assert.True(t, cart.IsEmpty())

	// Absent product is a no-op, not an error
	cart.ChangeQuantity(uuid.New(), 5)
	assert.True(t, cart.IsEmpty())

	_, err := cart.TotalCents(lookupFrom(catalog))
	assert.NoError(t, err)
}

func TestCartRemoveItem(t *testing.T) {
	_, latte, sandwich := testCatalog()

	cart := NewCart()
	cart.AddProduct(latte)
	cart.AddProduct(latte)
	cart.AddProduct(sandwich)

	cart.RemoveItem(latte.ID)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, sandwich.ID, lines[0].ProductID)
}

func TestCartTotalFailsWhenProductGone(t *testing.T) {
	catalog, latte, _ := testCatalog()

	cart := NewCart()
	cart.AddProduct(latte)
	delete(catalog, latte.ID)

	_, err := cart.TotalCents(lookupFrom(catalog))
	assert.ErrorIs(t, err, ErrProductGone)
}

func TestCartSnapshotFreezesPrices(t *testing.T) {
	catalog, latte, sandwich := testCatalog()

	cart := NewCart()
	cart.AddProduct(latte)
	cart.AddProduct(latte)
	cart.AddProduct(sandwich)
	cart.SetTier(enum.TierEmployee)

	lines, err := cart.Snapshot(lookupFrom(catalog))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "Latte", lines[0].ProductName)
	assert.Equal(t, int64(300), lines[0].UnitPrice)
	assert.Equal(t, int64(600), lines[0].Subtotal)
	assert.Equal(t, int64(500), lines[1].UnitPrice)

	// Later catalog edits must not reach the snapshot
	latte.EmployeePrice = 999
	assert.Equal(t, int64(300), lines[0].UnitPrice)
}
