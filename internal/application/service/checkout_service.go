package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/castrillo/cafepos-api/internal/domain/entity"
	"github.com/castrillo/cafepos-api/internal/domain/enum"
	"github.com/castrillo/cafepos-api/internal/domain/repository"
	"github.com/castrillo/cafepos-api/pkg/apperror"
	"github.com/google/uuid"
)

// CheckoutState represents where a cashier's open checkout sits in the payment
// flow. A session with no open checkout has no state at all.
type CheckoutState int

const (
	// StateAwaitingMethod means the checkout is open and waiting for a
	// payment method choice
	StateAwaitingMethod CheckoutState = 0
	// StateCashPending means cash was chosen and the tendered amount has not
	// been accepted yet
	StateCashPending CheckoutState = 1
	// StateSettlePending means the sale was built but the ledger append
	// failed; the sale is retained for retry and the cart is intact
	StateSettlePending CheckoutState = 2
)

var checkoutStateNames = [...]string{"awaiting_method", "cash_pending", "settle_pending"}

func (s CheckoutState) String() string {
	if int(s) < 0 || int(s) >= len(checkoutStateNames) {
		return "awaiting_method"
	}
	return checkoutStateNames[s]
}

// MarshalJSON serializes the state as its wire name
func (s CheckoutState) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Cashier identifies the authenticated session driving a cart
type Cashier struct {
	ID   uuid.UUID
	Name string
}

// checkout is the per-session payment flow. It exists only between an explicit
// open and a settle or cancel.
type checkout struct {
	state       CheckoutState
	method      enum.PaymentMethod
	pendingSale *entity.Sale // built sale awaiting retry, set only in StateSettlePending
}

// session holds one cashier's cart and open checkout, if any
type session struct {
	cart     *entity.Cart
	checkout *checkout
}

// CheckoutService owns per-cashier sessions: one cart and at most one open
// checkout each. Carts live in memory; only settled sales reach storage.
type CheckoutService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) *CheckoutService {
	return &CheckoutService{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		sessions:    make(map[uuid.UUID]*session),
	}
}

func (s *CheckoutService) session(cashierID uuid.UUID) *session {
	sess, ok := s.sessions[cashierID]
	if !ok {
		sess = &session{cart: entity.NewCart()}
		s.sessions[cashierID] = sess
	}
	return sess
}

func (s *CheckoutService) lookup(ctx context.Context) entity.ProductLookup {
	return func(id uuid.UUID) (*entity.Product, error) {
		return s.productRepo.GetByID(ctx, id)
	}
}

// CartLineView is a cart line resolved against the live catalog
type CartLineView struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Subtotal    float64   `json:"subtotal"`
}

// CartView is the cart rendered for the session, with prices resolved at the
// current tier
type CartView struct {
	CustomerTier enum.CustomerTier `json:"customer_type"`
	Lines        []CartLineView    `json:"lines"`
	Total        float64           `json:"total"`
}

// CheckoutView reports the open checkout's position in the payment flow
type CheckoutView struct {
	State  CheckoutState       `json:"state"`
	Method *enum.PaymentMethod `json:"payment_method,omitempty"`
	Total  float64             `json:"total"`
}

func mapCartErr(err error) error {
	if errors.Is(err, entity.ErrProductGone) {
		return apperror.NewNotFoundError("Product")
	}
	return err
}

func (s *CheckoutService) cartView(ctx context.Context, sess *session) (*CartView, error) {
	lookup := s.lookup(ctx)
	tier := sess.cart.Tier()

	lines := sess.cart.Lines()
	view := &CartView{
		CustomerTier: tier,
		Lines:        make([]CartLineView, 0, len(lines)),
	}

	var totalCents int64
	for _, line := range lines {
		product, err := lookup(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}
		unit := product.UnitPriceCents(tier)
		subtotal := unit * int64(line.Quantity)
		totalCents += subtotal
		view.Lines = append(view.Lines, CartLineView{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   float64(unit) / 100,
			Subtotal:    float64(subtotal) / 100,
		})
	}
	view.Total = float64(totalCents) / 100
	return view, nil
}

// GetCart returns the session's cart with live prices
func (s *CheckoutService) GetCart(ctx context.Context, cashierID uuid.UUID) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartView(ctx, s.session(cashierID))
}

// AddItem adds one unit of a product to the session's cart. Re-adding an
// existing product increments its line quantity.
func (s *CheckoutService) AddItem(ctx context.Context, cashierID, productID uuid.UUID) (*CartView, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(cashierID)
	sess.cart.AddProduct(product)
	return s.cartView(ctx, sess)
}

// ChangeQuantity adjusts a cart line by delta; quantities at or below zero
// remove the line, and an absent product is a no-op
func (s *CheckoutService) ChangeQuantity(ctx context.Context, cashierID, productID uuid.UUID, delta int) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(cashierID)
	sess.cart.ChangeQuantity(productID, delta)
	return s.cartView(ctx, sess)
}

// RemoveItem removes a line from the cart regardless of quantity
func (s *CheckoutService) RemoveItem(ctx context.Context, cashierID, productID uuid.UUID) (*CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(cashierID)
	sess.cart.RemoveItem(productID)
	return s.cartView(ctx, sess)
}

// SetTier switches the cart between customer and employee pricing. Every line
// reprices at the next total computation.
func (s *CheckoutService) SetTier(ctx context.Context, cashierID uuid.UUID, tier enum.CustomerTier) (*CartView, error) {
	if !tier.Valid() {
		return nil, apperror.NewBadRequestError("Unknown customer type")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(cashierID)
	sess.cart.SetTier(tier)
	return s.cartView(ctx, sess)
}

// ClearCart empties the session's cart. Not allowed while a checkout is open.
func (s *CheckoutService) ClearCart(ctx context.Context, cashierID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(cashierID)
	if sess.checkout != nil {
		return apperror.ErrCheckoutState
	}
	sess.cart = entity.NewCart()
	return nil
}

func (s *CheckoutService) checkoutView(ctx context.Context, sess *session) (*CheckoutView, error) {
	total, err := sess.cart.TotalCents(s.lookup(ctx))
	if err != nil {
		return nil, mapCartErr(err)
	}
	view := &CheckoutView{
		State: sess.checkout.state,
		Total: float64(total) / 100,
	}
	if sess.checkout.state != StateAwaitingMethod {
		method := sess.checkout.method
		view.Method = &method
	}
	return view, nil
}

// OpenCheckout starts the payment flow for the session's cart. An empty cart
// is rejected before any checkout state exists.
func (s *CheckoutService) OpenCheckout(ctx context.Context, cashierID uuid.UUID) (*CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(cashierID)
	if sess.checkout != nil {
		return nil, apperror.ErrCheckoutState
	}
	if sess.cart.IsEmpty() {
		return nil, apperror.ErrEmptyCart
	}
	sess.checkout = &checkout{state: StateAwaitingMethod}
	return s.checkoutView(ctx, sess)
}

// GetCheckout returns the open checkout's state
func (s *CheckoutService) GetCheckout(ctx context.Context, cashierID uuid.UUID) (*CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(cashierID)
	if sess.checkout == nil {
		return nil, apperror.ErrNoOpenCheckout
	}
	return s.checkoutView(ctx, sess)
}

// ChooseMethod picks the payment method for an open checkout. Cash moves the
// checkout to cash_pending and waits for a tendered amount; card and transfer
// settle immediately at the exact total.
func (s *CheckoutService) ChooseMethod(ctx context.Context, cashier Cashier, method enum.PaymentMethod) (*CheckoutView, *entity.Sale, error) {
	if !method.Valid() {
		return nil, nil, apperror.NewBadRequestError("Unknown payment method")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(cashier.ID)
	if sess.checkout == nil {
		return nil, nil, apperror.ErrNoOpenCheckout
	}
	if sess.checkout.state != StateAwaitingMethod {
		return nil, nil, apperror.ErrCheckoutState
	}

	sess.checkout.method = method
	if method.IsCash() {
		sess.checkout.state = StateCashPending
		view, err := s.checkoutView(ctx, sess)
		return view, nil, err
	}

	// Non-cash settles at exactly the total with no change
	total, err := sess.cart.TotalCents(s.lookup(ctx))
	if err != nil {
		return nil, nil, mapCartErr(err)
	}
	sale, err := s.settle(ctx, sess, cashier, method, total, total)
	if err != nil {
		view, verr := s.checkoutView(ctx, sess)
		if verr != nil {
			return nil, nil, err
		}
		return view, nil, err
	}
	return nil, sale, nil
}

// TenderCash accepts the cash amount for a cash_pending checkout and settles.
// An amount below the total is rejected and the checkout stays cash_pending.
func (s *CheckoutService) TenderCash(ctx context.Context, cashier Cashier, amountCents int64) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(cashier.ID)
	if sess.checkout == nil {
		return nil, apperror.ErrNoOpenCheckout
	}
	if sess.checkout.state != StateCashPending {
		return nil, apperror.ErrCheckoutState
	}

	total, err := sess.cart.TotalCents(s.lookup(ctx))
	if err != nil {
		return nil, mapCartErr(err)
	}
	if amountCents < total {
		return nil, apperror.ErrInsufficientPayment
	}

	return s.settle(ctx, sess, cashier, enum.PaymentCash, total, amountCents)
}

// Back returns a cash_pending checkout to awaiting_method, discarding the
// method choice
func (s *CheckoutService) Back(ctx context.Context, cashierID uuid.UUID) (*CheckoutView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(cashierID)
	if sess.checkout == nil {
		return nil, apperror.ErrNoOpenCheckout
	}
	if sess.checkout.state != StateCashPending {
		return nil, apperror.ErrCheckoutState
	}
	sess.checkout.state = StateAwaitingMethod
	return s.checkoutView(ctx, sess)
}

// Retry re-attempts the ledger append for a checkout stuck in settle_pending.
// The retained sale is appended as built; nothing is recomputed.
func (s *CheckoutService) Retry(ctx context.Context, cashierID uuid.UUID) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(cashierID)
	if sess.checkout == nil {
		return nil, apperror.ErrNoOpenCheckout
	}
	if sess.checkout.state != StateSettlePending {
		return nil, apperror.ErrCheckoutState
	}

	sale := sess.checkout.pendingSale
	if err := s.saleRepo.Append(ctx, sale); err != nil {
		return nil, apperror.NewLedgerWriteError(err)
	}

	sess.cart = entity.NewCart()
	sess.checkout = nil
	return sale, nil
}

// Cancel closes the open checkout without settling. The cart is left exactly
// as it was, including in settle_pending.
func (s *CheckoutService) Cancel(ctx context.Context, cashierID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(cashierID)
	if sess.checkout == nil {
		return apperror.ErrNoOpenCheckout
	}
	sess.checkout = nil
	return nil
}

// settle snapshots the cart at current prices, builds the sale, and appends it
// to the ledger. On append failure the built sale is retained and the checkout
// moves to settle_pending; the cart is untouched either way until success.
// Caller holds the mutex.
func (s *CheckoutService) settle(ctx context.Context, sess *session, cashier Cashier, method enum.PaymentMethod, totalCents, paidCents int64) (*entity.Sale, error) {
	lines, err := sess.cart.Snapshot(s.lookup(ctx))
	if err != nil {
		return nil, mapCartErr(err)
	}

	sale := &entity.Sale{
		ID:            uuid.New(),
		SettledAt:     time.Now().UTC(),
		CashierID:     cashier.ID,
		CashierName:   cashier.Name,
		CustomerTier:  sess.cart.Tier(),
		PaymentMethod: method,
		Total:         totalCents,
		AmountPaid:    paidCents,
		ChangeAmount:  paidCents - totalCents,
		Lines:         lines,
	}

	if err := s.saleRepo.Append(ctx, sale); err != nil {
		sess.checkout.state = StateSettlePending
		sess.checkout.pendingSale = sale
		return nil, apperror.NewLedgerWriteError(err)
	}

	sess.cart = entity.NewCart()
	sess.checkout = nil
	return sale, nil
}
