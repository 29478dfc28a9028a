package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/royalbee/storefront/internal/backend"
	"github.com/royalbee/storefront/internal/cart"
	"github.com/royalbee/storefront/internal/checkout"
	"github.com/royalbee/storefront/internal/config"
	"github.com/royalbee/storefront/internal/domain"
	"github.com/royalbee/storefront/internal/pricing"
	"github.com/royalbee/storefront/internal/session"
	"github.com/royalbee/storefront/internal/storage/sqlite"
)

// shopdemo runs the full client flow against a backend (the stub server
// works): log in, fill the cart with best offers, check out, reconcile.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run cmd/shopdemo/main.go <email> <password> [address]")
		os.Exit(1)
	}
	email, password := os.Args[1], os.Args[2]
	address := "1 Example Street"
	if len(os.Args) > 3 {
		address = os.Args[3]
	}

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

	if err := run(cfg, logger, email, password, address); err != nil {
		fmt.Fprintf(os.Stderr, "Demo failed: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger, email, password, address string) error {
	ctx := context.Background()

	kv, err := sqlite.Open(cfg.Storage.Path, logger)
	if err != nil {
		return err
	}
	defer kv.Close()

	sess, err := session.New(ctx, kv, logger)
	if err != nil {
		return err
	}
	cartStore, err := cart.NewStore(ctx, kv, logger)
	if err != nil {
		return err
	}
	client := backend.NewClient(cfg.Backend, logger)

	// Log in, registering first if the account doesn't exist yet.
	token, err := client.Login(ctx, email, password)
	if err != nil {
		if _, regErr := client.Register(ctx, email, email, password); regErr != nil {
			return fmt.Errorf("login failed (%v) and registration failed: %w", err, regErr)
		}
		if token, err = client.Login(ctx, email, password); err != nil {
			return err
		}
	}
	user, err := client.FetchProfile(ctx, token)
	if err != nil {
		return err
	}
	if err := sess.SetCredentials(ctx, *user, token); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%d points)\n", user.Name, user.Points)

	products, err := client.ListProducts(ctx, token)
	if err != nil {
		return err
	}
	for _, product := range products {
		offer, ok := pricing.BestOffer(product.Offers)
		if !ok || !pricing.IsAddable(offer) {
			continue
		}
		if err := cartStore.AddItem(ctx, product, offer.Retailer, offer.Price); err != nil {
			return err
		}
		fmt.Printf("Added %s from %s at £%.2f\n", product.Name, offer.Retailer, offer.Price)
	}
	fmt.Printf("Cart: %d items, total £%.2f\n", cartStore.ItemCount(), cartStore.TotalPrice())

	submitter := checkout.NewSubmitter(cartStore, sess, client, logger)
	confirmation, err := submitter.Submit(ctx, domain.CheckoutForm{
		Name:    user.Name,
		Address: address,
		Payment: "Credit Card",
	})
	if errors.Is(err, checkout.ErrEmptyCart) {
		fmt.Println("Nothing addable in the catalog, cart is empty.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Order %s confirmed, total £%.2f\n", confirmation.ID, confirmation.Total)

	reconciler := checkout.NewReconciler(cartStore, sess, client, logger)
	if err := reconciler.OnOrderConfirmed(ctx, confirmation); err != nil {
		return err
	}
	if refreshed, ok := sess.CurrentUser(); ok {
		fmt.Printf("Cart cleared (%d items). Points now: %d\n", cartStore.ItemCount(), refreshed.Points)
	}
	return nil
}
