package checkout

import "errors"

var (
	// ErrUnauthenticated means checkout was attempted without a logged-in
	// user. Recovered locally (redirect to login); never sent to the backend.
	ErrUnauthenticated = errors.New("checkout requires a logged-in user")

	// ErrEmptyCart means checkout was attempted with zero line items.
	// Rejected before any network call.
	ErrEmptyCart = errors.New("cart is empty, nothing to check out")
)
