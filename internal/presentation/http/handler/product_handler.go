package handler

import (
	"strconv"

	"github.com/castrillo/cafepos-api/internal/application/service"
	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/castrillo/cafepos-api/internal/domain/repository"
	"github.com/castrillo/cafepos-api/internal/presentation/http/dto/request"
	"github.com/castrillo/cafepos-api/internal/presentation/http/dto/response"
	"github.com/castrillo/cafepos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns catalog products with optional category and search filters
// @Summary List products
// @Tags products
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var req request.ProductFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
	}
	if req.Category != "" {
		category, err := enum.ParseProductCategory(req.Category)
		if err != nil {
			response.BadRequest(c, "Unknown product category")
			return
		}
		params.Category = &category
	}

	result, err := h.productService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Products retrieved", result)
}

// Categories returns the closed category set with display metadata
func (h *ProductHandler) Categories(c *gin.Context) {
	categories := enum.AllCategories()
	out := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		meta := category.Meta()
		out = append(out, gin.H{
			"value": category.String(),
			"label": meta.Label,
			"color": meta.Color,
		})
	}
	response.OK(c, "Categories retrieved", out)
}

// TopSellers returns the best-selling products
func (h *ProductHandler) TopSellers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "9"))

	products, err := h.productService.GetTopSellers(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Top sellers retrieved", products)
}

// Get returns one catalog product
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved", product)
}

// Create adds a product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := enum.ParseProductCategory(req.Category)
	if err != nil {
		response.BadRequest(c, "Unknown product category")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &service.CreateProductInput{
		Name:          req.Name,
		Category:      category,
		Cost:          req.Cost,
		SalePrice:     req.SalePrice,
		EmployeePrice: req.EmployeePrice,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created", product)
}

// Update modifies a catalog product
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateProductInput{
		Name:          req.Name,
		Cost:          req.Cost,
		SalePrice:     req.SalePrice,
		EmployeePrice: req.EmployeePrice,
		ImageURL:      req.ImageURL,
	}
	if req.Category != nil {
		category, err := enum.ParseProductCategory(*req.Category)
		if err != nil {
			response.BadRequest(c, "Unknown product category")
			return
		}
		input.Category = &category
	}

	product, err := h.productService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated", product)
}

// Delete removes a product from the catalog
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product deleted", nil)
}
