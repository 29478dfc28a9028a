package stubserver

import "github.com/royalbee/storefront/internal/domain"

func ptr(f float64) *float64 { return &f }

// seedProducts is a small catalog covering every availability state, enough
// to exercise price comparison and add-to-cart rules against the stub.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:       "1",
			Name:     "Organic Bananas (6 pack)",
			Category: "Fresh Produce",
			Offers: []domain.RetailerOffer{
				{Retailer: "Royal Bee", Price: 1.20, OriginalPrice: ptr(1.50), Availability: domain.AvailabilityInStock, Rating: 4.5, DeliveryTime: "Same day"},
				{Retailer: "Tesco", Price: 1.30, Availability: domain.AvailabilityInStock, Rating: 4.3, DeliveryTime: "Next day"},
				{Retailer: "Sainsbury's", Price: 1.25, Availability: domain.AvailabilityLimited, Rating: 4.2, DeliveryTime: "Next day"},
				{Retailer: "Morrisons", Price: 1.35, Availability: domain.AvailabilityInStock, Rating: 4.1, DeliveryTime: "2-3 days"},
			},
		},
		{
			ID:       "2",
			Name:     "Whole Milk (2L)",
			Category: "Dairy",
			Offers: []domain.RetailerOffer{
				{Retailer: "Royal Bee", Price: 1.35, Availability: domain.AvailabilityInStock, Rating: 4.6, DeliveryTime: "Same day"},
				{Retailer: "Tesco", Price: 1.40, Availability: domain.AvailabilityInStock, Rating: 4.4, DeliveryTime: "Next day"},
				{Retailer: "Sainsbury's", Price: 1.45, Availability: domain.AvailabilityInStock, Rating: 4.3, DeliveryTime: "Next day"},
			},
		},
		{
			ID:       "3",
			Name:     "Sourdough Bread",
			Category: "Bakery",
			Offers: []domain.RetailerOffer{
				{Retailer: "Royal Bee", Price: 1.80, Availability: domain.AvailabilityInStock, Rating: 4.7, DeliveryTime: "Same day"},
				{Retailer: "Tesco", Price: 1.95, Availability: domain.AvailabilityOutOfStock, Rating: 4.5, DeliveryTime: "Next day"},
				{Retailer: "Sainsbury's", Price: 1.85, Availability: domain.AvailabilityLimited, Rating: 4.4, DeliveryTime: "Next day"},
			},
		},
		{
			ID:       "4",
			Name:     "Free-Range Eggs (12 pack)",
			Category: "Fresh Produce",
			Offers: []domain.RetailerOffer{
				{Retailer: "Royal Bee", Price: 2.20, Availability: domain.AvailabilityInStock, Rating: 4.8, DeliveryTime: "Same day"},
				{Retailer: "Tesco", Price: 2.30, Availability: domain.AvailabilityInStock, Rating: 4.6, DeliveryTime: "Next day"},
				{Retailer: "Morrisons", Price: 2.35, Availability: domain.AvailabilityLimited, Rating: 4.4, DeliveryTime: "2-3 days"},
			},
		},
	}
}
