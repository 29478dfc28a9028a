// Package checkout converts the cart into a submitted order and reconciles
// client-cached state with the server afterwards.
package checkout

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/royalbee/storefront/internal/domain"
)

// Cart is the slice of the cart store the checkout flow needs.
type Cart interface {
	Items() []domain.CartLineItem
	TotalPrice() float64
	Clear(ctx context.Context) error
}

// AuthSession supplies the current identity and receives refreshed profiles.
type AuthSession interface {
	CurrentUser() (*domain.User, bool)
	Token() string
	ReplaceUser(ctx context.Context, user domain.User) error
}

// Backend is the order/profile surface of the HTTP client.
type Backend interface {
	SubmitOrder(ctx context.Context, token string, order domain.OrderRequest) (*domain.OrderConfirmation, error)
	FetchProfile(ctx context.Context, token string) (*domain.User, error)
}

// Submitter turns a non-empty cart plus a checkout form into a submitted
// order. It never mutates the cart: on failure the user retries with items
// intact, and on success clearing is the Reconciler's job so the
// confirmation can be shown even if the follow-up refresh fails.
type Submitter struct {
	cart    Cart
	session AuthSession
	backend Backend
	logger  *zap.Logger
}

func NewSubmitter(cart Cart, session AuthSession, backend Backend, logger *zap.Logger) *Submitter {
	return &Submitter{
		cart:    cart,
		session: session,
		backend: backend,
		logger:  logger,
	}
}

// Submit validates the preconditions, builds the order payload and posts it.
// Both precondition failures happen before any I/O. The total is read from
// the cart at this moment, not from a value captured when the checkout
// screen was rendered.
func (s *Submitter) Submit(ctx context.Context, form domain.CheckoutForm) (*domain.OrderConfirmation, error) {
	user, ok := s.session.CurrentUser()
	if !ok {
		return nil, ErrUnauthenticated
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := domain.OrderRequest{
		UserID:  user.ID,
		Date:    time.Now().UTC().Format(time.RFC3339),
		Total:   s.cart.TotalPrice(),
		Payment: form.Payment,
		Address: form.Address,
		Items:   make([]domain.OrderItem, 0, len(items)),
	}
	for _, item := range items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Retailer:    item.Retailer,
			Price:       item.UnitPrice,
		})
	}

	confirmation, err := s.backend.SubmitOrder(ctx, s.session.Token(), order)
	if err != nil {
		s.logger.Warn("Order submission failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Order confirmed",
		zap.String("order_id", confirmation.ID),
		zap.Float64("total", confirmation.Total),
	)
	return confirmation, nil
}
