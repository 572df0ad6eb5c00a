package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nikolayk812/checkout-sim/internal/checkout"
	"github.com/nikolayk812/checkout-sim/internal/config"
	"github.com/nikolayk812/checkout-sim/internal/domain"
	"github.com/nikolayk812/checkout-sim/internal/logger"
	"github.com/nikolayk812/checkout-sim/internal/shipping"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log, err := logger.New(logger.Options{
		Service: "checkout",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("logger.New: %w", err)
	}
	defer func() { _ = log.Sync() }()

	svc, err := checkout.New(
		shipping.New(os.Stdout, log.Named("shipping")),
		os.Stdout,
		checkout.WithLogger(log.Named("checkout")),
		checkout.WithShippingFee(cfg.ShippingFee),
	)
	if err != nil {
		return fmt.Errorf("checkout.New: %w", err)
	}

	catalog, err := sampleCatalog(cfg.Currency, time.Now())
	if err != nil {
		return fmt.Errorf("sampleCatalog: %w", err)
	}

	customer := domain.NewCustomer(money(1000, cfg.Currency))
	cart := domain.NewCart(customer.ID)

	for _, add := range []struct {
		name     string
		quantity int
	}{
		{"Cheese", 2},
		{"Biscuits", 1},
	} {
		if err := svc.AddToCart(cart, catalog[add.name], add.quantity); err != nil {
			return fmt.Errorf("svc.AddToCart: %w", err)
		}
	}

	if _, err := svc.Checkout(ctx, customer, cart); err != nil {
		return fmt.Errorf("svc.Checkout: %w", err)
	}

	log.Info("done", zap.String("owner_id", cart.OwnerID.String()), zap.Int("catalog_size", len(catalog)))
	return nil
}

func sampleCatalog(unit currency.Unit, now time.Time) (map[string]*domain.Product, error) {
	type entry struct {
		name     string
		price    int64
		quantity int
		opts     []domain.ProductOption
	}

	entries := []entry{
		{"Cheese", 100, 10, []domain.ProductOption{
			domain.WithExpiry(now.AddDate(0, 0, 14)),
			domain.WithWeight(decimal.NewFromInt(200)),
		}},
		{"TV", 500, 3, []domain.ProductOption{
			domain.WithWeight(decimal.NewFromInt(5000)),
		}},
		{"Biscuits", 150, 5, []domain.ProductOption{
			domain.WithExpiry(now.AddDate(0, 0, 7)),
			domain.WithWeight(decimal.NewFromInt(700)),
		}},
		{"Scratch Card", 50, 100, nil},
	}

	catalog := make(map[string]*domain.Product, len(entries))
	for _, e := range entries {
		p, err := domain.NewProduct(e.name, money(e.price, unit), e.quantity, e.opts...)
		if err != nil {
			return nil, fmt.Errorf("domain.NewProduct: %w", err)
		}
		catalog[e.name] = p
	}

	return catalog, nil
}

func money(amount int64, unit currency.Unit) domain.Money {
	return domain.NewMoney(decimal.NewFromInt(amount), unit)
}
