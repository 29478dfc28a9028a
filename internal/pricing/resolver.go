// Package pricing picks the offer to surface for a product and validates
// offers before they enter the cart. Pure functions, no state.
package pricing

import "github.com/royalbee/storefront/internal/domain"

// BestOffer returns the offer with the lowest unit price. Ties keep the
// first offer in list order, so the result is stable for a given catalog
// response. The second return is false when there are no offers; callers
// render "no price" rather than treating that as an error.
func BestOffer(offers []domain.RetailerOffer) (domain.RetailerOffer, bool) {
	if len(offers) == 0 {
		return domain.RetailerOffer{}, false
	}

	best := offers[0]
	for _, offer := range offers[1:] {
		if offer.Price < best.Price {
			best = offer
		}
	}
	return best, true
}

// IsAddable reports whether the offer may be added to the cart. Only
// out-of-stock offers are rejected; limited stock is addable.
func IsAddable(offer domain.RetailerOffer) bool {
	return offer.Availability.Addable()
}
