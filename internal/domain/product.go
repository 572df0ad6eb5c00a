package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductKind string

const (
	ProductKindRegular           ProductKind = "regular"
	ProductKindExpiring          ProductKind = "expiring"
	ProductKindShippable         ProductKind = "shippable"
	ProductKindExpiringShippable ProductKind = "expiring_shippable"
)

// Product is a single stock record. Expiry and shipping are optional
// capabilities carried by ExpiresOn and Weight; a nil field means the
// product does not have that capability.
type Product struct {
	ID       uuid.UUID
	Name     string
	Price    Money
	Quantity int

	ExpiresOn *time.Time
	// Weight of one unit in grams.
	Weight *decimal.Decimal
}

type ProductOption func(*Product)

func WithExpiry(date time.Time) ProductOption {
	return func(p *Product) {
		d := civilDate(date)
		p.ExpiresOn = &d
	}
}

func WithWeight(grams decimal.Decimal) ProductOption {
	return func(p *Product) {
		p.Weight = &grams
	}
}

func NewProduct(name string, price Money, quantity int, opts ...ProductOption) (*Product, error) {
	p := &Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}

	for _, opt := range opts {
		opt(p)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is empty")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product[%s]: price is negative", p.Name)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("product[%s]: quantity is negative", p.Name)
	}
	if p.Weight != nil && !p.Weight.IsPositive() {
		return fmt.Errorf("product[%s]: weight must be positive", p.Name)
	}
	return nil
}

func (p *Product) Expiring() bool {
	return p.ExpiresOn != nil
}

func (p *Product) Shippable() bool {
	return p.Weight != nil
}

func (p *Product) Kind() ProductKind {
	switch {
	case p.Expiring() && p.Shippable():
		return ProductKindExpiringShippable
	case p.Expiring():
		return ProductKindExpiring
	case p.Shippable():
		return ProductKindShippable
	default:
		return ProductKindRegular
	}
}

// IsExpired reports whether the calendar day of today is strictly after
// the expiry date. Products without expiry never expire.
func (p *Product) IsExpired(today time.Time) bool {
	if !p.Expiring() {
		return false
	}
	return civilDate(today).After(*p.ExpiresOn)
}

func (p *Product) IsAvailable(qty int, today time.Time) bool {
	return p.Quantity >= qty && !p.IsExpired(today)
}

// ShippableUnit is one physical unit handed to the shipping service.
type ShippableUnit struct {
	Name   string
	Weight decimal.Decimal
}

func (p *Product) ShippableUnit() (ShippableUnit, bool) {
	if !p.Shippable() {
		return ShippableUnit{}, false
	}
	return ShippableUnit{Name: p.Name, Weight: *p.Weight}, true
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
