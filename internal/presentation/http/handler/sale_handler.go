package handler

import (
	"math"
	"time"

	"github.com/castrillo/cafepos-api/internal/application/service"
	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/castrillo/cafepos-api/internal/presentation/http/dto/request"
	"github.com/castrillo/cafepos-api/internal/presentation/http/dto/response"
	"github.com/castrillo/cafepos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// SaleHandler handles ledger HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// Create records a complete sale payload
// @Summary Record sale
// @Tags sales
// @Router /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	cashier := GetCashier(c)
	if cashier == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tier, err := enum.ParseCustomerTier(req.CustomerType)
	if err != nil {
		response.BadRequest(c, "Unknown customer type")
		return
	}
	method, err := enum.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		response.BadRequest(c, "Unknown payment method")
		return
	}

	lines := make([]service.SaleLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, service.SaleLineInput{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   toCents(line.UnitPrice),
			Subtotal:    toCents(line.Subtotal),
		})
	}

	sale, err := h.saleService.Create(c.Request.Context(), *cashier, &service.CreateSaleInput{
		Lines:         lines,
		Total:         toCents(req.Total),
		CustomerTier:  tier,
		PaymentMethod: method,
		AmountPaid:    toCents(req.AmountPaid),
		ChangeAmount:  toCents(req.ChangeAmount),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded", sale)
}

// List returns previously recorded sales, most recent first
// @Summary List sales
// @Tags sales
// @Router /sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	var req request.SaleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	input := &service.ListSalesInput{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
	}
	if req.StartDate != "" {
		start, err := time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected RFC3339")
			return
		}
		input.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := time.Parse(time.RFC3339, req.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected RFC3339")
			return
		}
		input.EndDate = &end
	}

	result, err := h.saleService.List(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Sales retrieved", result)
}
