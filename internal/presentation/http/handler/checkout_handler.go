package handler

import (
	"math"

	"github.com/castrillo/cafepos-api/internal/application/service"
	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/castrillo/cafepos-api/internal/presentation/http/dto/request"
	"github.com/castrillo/cafepos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckoutHandler handles the session cart and checkout flow
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// GetCart returns the session's cart with live prices
// @Summary View cart
// @Tags cart
// @Router /cart [get]
func (h *CheckoutHandler) GetCart(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	cart, err := h.checkoutService.GetCart(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart retrieved", cart)
}

// AddItem adds one unit of a product to the cart
func (h *CheckoutHandler) AddItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.checkoutService.AddItem(c.Request.Context(), *userID, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added", cart)
}

// ChangeQuantity adjusts a cart line by a signed delta
func (h *CheckoutHandler) ChangeQuantity(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cart, err := h.checkoutService.ChangeQuantity(c.Request.Context(), *userID, req.ProductID, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quantity updated", cart)
}

// RemoveItem removes a line from the cart
func (h *CheckoutHandler) RemoveItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.checkoutService.RemoveItem(c.Request.Context(), *userID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed", cart)
}

// SetTier switches the cart between customer and employee pricing
func (h *CheckoutHandler) SetTier(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.SetTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tier, err := enum.ParseCustomerTier(req.CustomerType)
	if err != nil {
		response.BadRequest(c, "Unknown customer type")
		return
	}

	cart, err := h.checkoutService.SetTier(c.Request.Context(), *userID, tier)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer type updated", cart)
}

// ClearCart empties the session's cart
func (h *CheckoutHandler) ClearCart(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.checkoutService.ClearCart(c.Request.Context(), *userID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart cleared", nil)
}

// OpenCheckout starts the payment flow for the session's cart
// @Summary Open checkout
// @Tags checkout
// @Router /checkout [post]
func (h *CheckoutHandler) OpenCheckout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	checkout, err := h.checkoutService.OpenCheckout(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Checkout opened", checkout)
}

// GetCheckout returns the open checkout's state
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	checkout, err := h.checkoutService.GetCheckout(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checkout retrieved", checkout)
}

// ChooseMethod picks the payment method. Card and transfer settle the sale in
// the same request; cash waits for the tendered amount.
func (h *CheckoutHandler) ChooseMethod(c *gin.Context) {
	cashier := GetCashier(c)
	if cashier == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.ChooseMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method, err := enum.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		response.BadRequest(c, "Unknown payment method")
		return
	}

	checkout, sale, err := h.checkoutService.ChooseMethod(c.Request.Context(), *cashier, method)
	if err != nil {
		response.Error(c, err)
		return
	}
	if sale != nil {
		response.Created(c, "Sale settled", sale)
		return
	}
	response.OK(c, "Payment method set", checkout)
}

// TenderCash submits the cash amount and settles the checkout
func (h *CheckoutHandler) TenderCash(c *gin.Context) {
	cashier := GetCashier(c)
	if cashier == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.TenderCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	amountCents := int64(math.Round(req.AmountPaid * 100))
	sale, err := h.checkoutService.TenderCash(c.Request.Context(), *cashier, amountCents)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sale settled", sale)
}

// Back returns a cash checkout to the method choice
func (h *CheckoutHandler) Back(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	checkout, err := h.checkoutService.Back(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Returned to method choice", checkout)
}

// Retry re-attempts a failed ledger append
func (h *CheckoutHandler) Retry(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	sale, err := h.checkoutService.Retry(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sale settled", sale)
}

// Cancel closes the open checkout, leaving the cart untouched
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.checkoutService.Cancel(c.Request.Context(), *userID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Checkout cancelled", nil)
}
