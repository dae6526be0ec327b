package request

// CreateProductRequest represents a product creation request, prices as decimals
type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	Category      string  `json:"category" binding:"required"`
	Cost          float64 `json:"cost" binding:"min=0"`
	SalePrice     float64 `json:"sale_price" binding:"min=0"`
	EmployeePrice float64 `json:"employee_price" binding:"min=0"`
	ImageURL      string  `json:"image_url" binding:"omitempty,max=512"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category      *string  `json:"category"`
	Cost          *float64 `json:"cost" binding:"omitempty,min=0"`
	SalePrice     *float64 `json:"sale_price" binding:"omitempty,min=0"`
	EmployeePrice *float64 `json:"employee_price" binding:"omitempty,min=0"`
	ImageURL      *string  `json:"image_url" binding:"omitempty,max=512"`
}

// ProductFilterRequest represents catalog filter parameters
type ProductFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
