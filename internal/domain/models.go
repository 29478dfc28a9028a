package domain

// Product is a catalog entry with one offer per retailer carrying it.
// Produced by the catalog backend; the cart never mutates it.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Image       string          `json:"image,omitempty"`
	Description string          `json:"description,omitempty"`
	Offers      []RetailerOffer `json:"retailers"`
}

// RetailerOffer is one vendor's quote for a product.
type RetailerOffer struct {
	Retailer      string       `json:"name"`
	Price         float64      `json:"price"`
	OriginalPrice *float64     `json:"originalPrice,omitempty"`
	Availability  Availability `json:"availability"`
	Rating        float64      `json:"rating"`
	DeliveryTime  string       `json:"deliveryTime"`
}

// ProductSnapshot is the product display data captured when an item is added
// to the cart, so later catalog changes don't rewrite existing line items.
type ProductSnapshot struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

// Snapshot copies the display fields of a product.
func (p Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Image:    p.Image,
	}
}

// CartLineItem is one cart entry, uniquely identified by the
// (product ID, retailer) pair.
type CartLineItem struct {
	Product   ProductSnapshot `json:"product"`
	Retailer  string          `json:"retailer"`
	Quantity  int             `json:"quantity"`
	UnitPrice float64         `json:"price"`
}

// Subtotal is unit price times quantity for this line.
func (li CartLineItem) Subtotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// CheckoutForm holds the user-supplied checkout fields. Never persisted.
type CheckoutForm struct {
	Name    string
	Address string
	Phone   string
	Payment string
}

// OrderItem is one line of an order payload.
type OrderItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Retailer    string  `json:"retailer"`
	Price       float64 `json:"price"`
}

// OrderRequest is the POST /api/orders payload.
type OrderRequest struct {
	UserID  string      `json:"user_id"`
	Date    string      `json:"date"`
	Total   float64     `json:"total"`
	Payment string      `json:"payment"`
	Address string      `json:"address"`
	Items   []OrderItem `json:"items"`
}

// OrderConfirmation is the server's response to a submitted order. Displayed
// once and discarded; never cached client-side.
type OrderConfirmation struct {
	ID      string      `json:"id"`
	Date    string      `json:"date"`
	Total   float64     `json:"total"`
	Payment string      `json:"payment"`
	Address string      `json:"address"`
	Items   []OrderItem `json:"items"`
}

// User is the backend-issued profile. Points are server-authoritative: the
// client only ever replaces them wholesale from a fresh GET /me.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	JoinDate string `json:"joinDate"`
	Points   int    `json:"points"`
	Role     string `json:"role,omitempty"`
}
