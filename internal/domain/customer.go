package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type Customer struct {
	ID      uuid.UUID
	Balance Money
}

func NewCustomer(balance Money) *Customer {
	return &Customer{
		ID:      uuid.New(),
		Balance: balance,
	}
}

// Deduct debits amount from the balance. The balance is left untouched on error.
func (c *Customer) Deduct(amount Money) error {
	over, err := amount.GreaterThan(c.Balance)
	if err != nil {
		return fmt.Errorf("amount.GreaterThan: %w", err)
	}
	if over {
		return fmt.Errorf("customer[%s] balance %s, amount %s: %w", c.ID, c.Balance, amount, ErrInsufficientBalance)
	}

	balance, err := c.Balance.Sub(amount)
	if err != nil {
		return fmt.Errorf("balance.Sub: %w", err)
	}

	c.Balance = balance
	return nil
}
