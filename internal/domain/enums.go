package domain

// Availability is a retailer offer's stock state.
type Availability string

const (
	AvailabilityInStock    Availability = "in-stock"
	AvailabilityLimited    Availability = "limited"
	AvailabilityOutOfStock Availability = "out-of-stock"
)

// IsValid checks if the availability value is one the catalog can produce.
func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityInStock, AvailabilityLimited, AvailabilityOutOfStock:
		return true
	default:
		return false
	}
}

// Addable reports whether an offer in this state may enter the cart.
// Limited stock is addable; only out-of-stock is rejected.
func (a Availability) Addable() bool {
	return a != AvailabilityOutOfStock
}
