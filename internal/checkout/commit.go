package checkout

import (
	"fmt"

	"github.com/nikolayk812/checkout-sim/internal/domain"
)

// commitPlan collects every mutation of a checkout so they can be checked
// up front and applied together.
type commitPlan struct {
	customer *domain.Customer
	total    domain.Money

	products   []*domain.Product
	decrements map[*domain.Product]int
}

func newCommitPlan(customer *domain.Customer, cart *domain.Cart, total domain.Money) (commitPlan, error) {
	plan := commitPlan{
		customer:   customer,
		total:      total,
		decrements: make(map[*domain.Product]int),
	}

	for _, item := range cart.Items {
		if _, ok := plan.decrements[item.Product]; !ok {
			plan.products = append(plan.products, item.Product)
		}
		plan.decrements[item.Product] += item.Quantity
	}

	over, err := total.GreaterThan(customer.Balance)
	if err != nil {
		return commitPlan{}, fmt.Errorf("total.GreaterThan: %w", err)
	}
	if over {
		return commitPlan{}, fmt.Errorf("total %s, balance %s: %w", total, customer.Balance, domain.ErrInsufficientBalance)
	}

	for _, p := range plan.products {
		if want := plan.decrements[p]; p.Quantity < want {
			return commitPlan{}, fmt.Errorf("product[%s] requested %d, in stock %d: %w",
				p.Name, want, p.Quantity, domain.ErrUnavailableQuantity)
		}
	}

	return plan, nil
}

// apply debits the customer first; it is the only step that can fail.
func (p commitPlan) apply() error {
	if err := p.customer.Deduct(p.total); err != nil {
		return fmt.Errorf("customer.Deduct: %w", err)
	}

	for _, product := range p.products {
		product.Quantity -= p.decrements[product]
	}

	return nil
}
