package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/royalbee/storefront/internal/backend"
	"github.com/royalbee/storefront/internal/config"
	"github.com/royalbee/storefront/internal/pricing"
)

// pricecheck fetches the catalog from the configured backend and prints the
// best offer per product, flagging offers that can't be added to the cart.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := backend.NewClient(cfg.Backend, logger)

	products, err := client.ListProducts(context.Background(), "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch products: %v\n", err)
		os.Exit(1)
	}

	if len(products) == 0 {
		fmt.Println("No products in catalog.")
		return
	}

	for _, product := range products {
		offer, ok := pricing.BestOffer(product.Offers)
		if !ok {
			fmt.Printf("%-35s  no offers\n", product.Name)
			continue
		}

		note := ""
		if !pricing.IsAddable(offer) {
			note = "  (out of stock)"
		}
		fmt.Printf("%-35s  £%.2f at %s [%s]%s\n",
			product.Name, offer.Price, offer.Retailer, offer.Availability, note)
	}
}
