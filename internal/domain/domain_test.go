package domain_test

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/checkout-sim/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var today = time.Date(2025, time.July, 15, 10, 30, 0, 0, time.UTC)

func usd(amount int64) domain.Money {
	return domain.NewMoney(decimal.NewFromInt(amount), currency.USD)
}

func mustProduct(name string, price int64, quantity int, opts ...domain.ProductOption) *domain.Product {
	p, err := domain.NewProduct(name, usd(price), quantity, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func randomProduct(opts ...domain.ProductOption) *domain.Product {
	p, err := domain.NewProduct(
		gofakeit.ProductName(),
		domain.NewMoney(decimal.NewFromFloat(gofakeit.Price(1, 100)), currency.USD),
		gofakeit.IntRange(1, 50),
		opts...,
	)
	if err != nil {
		panic(err)
	}
	return p
}

func grams(g int64) decimal.Decimal {
	return decimal.NewFromInt(g)
}
