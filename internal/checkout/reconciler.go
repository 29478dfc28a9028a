package checkout

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/royalbee/storefront/internal/domain"
)

// Reconciler performs the post-order side effects: clearing the cart and
// refreshing the cached profile so loyalty points reflect server-side
// accrual. Callers invoke OnOrderConfirmed only after the confirmation has
// been handed to the UI, which gives the confirmation-before-clear ordering.
type Reconciler struct {
	cart    Cart
	session AuthSession
	backend Backend
	logger  *zap.Logger
	sfg     singleflight.Group // collapses concurrent profile refreshes
}

func NewReconciler(cart Cart, session AuthSession, backend Backend, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		cart:    cart,
		session: session,
		backend: backend,
		logger:  logger,
	}
}

// OnOrderConfirmed clears the cart and refreshes the user profile. The two
// effects are independent best-effort: a failed refresh is logged and
// swallowed because the order already succeeded server-side — the user
// merely sees stale points until the next login. A failed cart clear is
// surfaced, since a surviving cart invites a duplicate order.
func (r *Reconciler) OnOrderConfirmed(ctx context.Context, confirmation *domain.OrderConfirmation) error {
	clearErr := r.cart.Clear(ctx)
	if clearErr != nil {
		r.logger.Error("Failed to clear cart after order",
			zap.String("order_id", confirmation.ID),
			zap.Error(clearErr),
		)
	}

	if err := r.refreshProfile(ctx); err != nil {
		r.logger.Warn("Profile refresh after order failed, points may be stale",
			zap.String("order_id", confirmation.ID),
			zap.Error(err),
		)
	}

	return clearErr
}

func (r *Reconciler) refreshProfile(ctx context.Context) error {
	token := r.session.Token()
	if token == "" {
		return nil
	}

	_, err, _ := r.sfg.Do("profile", func() (interface{}, error) {
		user, err := r.backend.FetchProfile(ctx, token)
		if err != nil {
			return nil, err
		}
		return nil, r.session.ReplaceUser(ctx, *user)
	})
	return err
}
