package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	OwnerID uuid.UUID
	Items   []CartItem
}

// CartItem references a product owned by the caller. Adding the same
// product twice yields two items.
type CartItem struct {
	Product  *Product
	Quantity int
}

func NewCart(ownerID uuid.UUID) *Cart {
	return &Cart{OwnerID: ownerID}
}

func (c *Cart) Add(product *Product, quantity int, today time.Time) error {
	if product == nil {
		return ErrNilProduct
	}
	if product.IsExpired(today) {
		return fmt.Errorf("product[%s]: %w", product.Name, ErrExpiredProduct)
	}

	if quantity <= 0 {
		return fmt.Errorf("product[%s] quantity %d: %w", product.Name, quantity, ErrInvalidQuantity)
	}

	if !product.IsAvailable(quantity, today) {
		return fmt.Errorf("product[%s] requested %d, in stock %d: %w",
			product.Name, quantity, product.Quantity, ErrUnavailableQuantity)
	}

	c.Items = append(c.Items, CartItem{Product: product, Quantity: quantity})
	return nil
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

func (i CartItem) Total() Money {
	return i.Product.Price.Mul(i.Quantity)
}
