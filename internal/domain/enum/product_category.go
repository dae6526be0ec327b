package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ProductCategory classifies a catalog product
type ProductCategory int

const (
	CategoryColdDrinks ProductCategory = 0
	CategoryHotDrinks  ProductCategory = 1
	CategorySnacks     ProductCategory = 2
	CategoryExtras     ProductCategory = 3
)

// categoryNames holds the wire representation for each category
var categoryNames = [...]string{"cold_drinks", "hot_drinks", "snacks", "extras"}

// CategoryMeta holds display metadata for a category
type CategoryMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// categoryMeta maps every category to its display metadata. Keeping this an
// array indexed by the enum keeps the mapping exhaustive: adding a category
// without metadata fails to compile.
var categoryMeta = [len(categoryNames)]CategoryMeta{
	CategoryColdDrinks: {Label: "Cold Drinks", Color: "#38bdf8"},
	CategoryHotDrinks:  {Label: "Hot Drinks", Color: "#f97316"},
	CategorySnacks:     {Label: "Snacks", Color: "#a3e635"},
	CategoryExtras:     {Label: "Extras", Color: "#c084fc"},
}

// AllCategories returns every valid category in declaration order
func AllCategories() []ProductCategory {
	return []ProductCategory{CategoryColdDrinks, CategoryHotDrinks, CategorySnacks, CategoryExtras}
}

// ParseProductCategory parses a wire string into a category
func ParseProductCategory(s string) (ProductCategory, error) {
	for i, name := range categoryNames {
		if name == s {
			return ProductCategory(i), nil
		}
	}
	return 0, fmt.Errorf("unknown product category %q", s)
}

// Valid reports whether the category is one of the declared values
func (c ProductCategory) Valid() bool {
	return int(c) >= 0 && int(c) < len(categoryNames)
}

func (c ProductCategory) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryNames[c]
}

// Meta returns the display metadata for the category
func (c ProductCategory) Meta() CategoryMeta {
	if !c.Valid() {
		return CategoryMeta{Label: "Unknown", Color: "#9ca3af"}
	}
	return categoryMeta[c]
}

func (c ProductCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ProductCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = ProductCategory(i)
		return nil
	}
	parsed, err := ParseProductCategory(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c ProductCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *ProductCategory) Scan(value interface{}) error {
	if value == nil {
		*c = CategoryColdDrinks
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = ProductCategory(v)
	case int:
		*c = ProductCategory(v)
	}
	return nil
}
