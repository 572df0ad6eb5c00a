package features

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/nikolayk812/checkout-sim/internal/checkout"
	"github.com/nikolayk812/checkout-sim/internal/domain"
	"github.com/nikolayk812/checkout-sim/internal/port"
	"github.com/nikolayk812/checkout-sim/internal/shipping"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type checkoutTestContext struct {
	today    time.Time
	products map[string]*domain.Product
	customer *domain.Customer
	cart     *domain.Cart
	out      bytes.Buffer

	addErr  error
	receipt domain.Receipt
	err     error
}

func (c *checkoutTestContext) reset() {
	c.today = time.Time{}
	c.products = make(map[string]*domain.Product)
	c.customer = nil
	c.cart = nil
	c.out.Reset()
	c.addErr = nil
	c.receipt = domain.Receipt{}
	c.err = nil
}

func (c *checkoutTestContext) service() (*checkout.Service, error) {
	return checkout.New(
		shipping.New(&c.out, nil),
		&c.out,
		checkout.WithClock(port.ClockFunc(func() time.Time { return c.today })),
	)
}

func usd(amount int) domain.Money {
	return domain.NewMoney(decimal.NewFromInt(int64(amount)), currency.USD)
}

func (c *checkoutTestContext) todayIs(date string) error {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return err
	}
	c.today = d
	return nil
}

func (c *checkoutTestContext) aProduct(name string, price, stock int) error {
	return c.addProduct(name, price, stock)
}

func (c *checkoutTestContext) aShippableProduct(name string, price, stock, grams int) error {
	return c.addProduct(name, price, stock, domain.WithWeight(decimal.NewFromInt(int64(grams))))
}

func (c *checkoutTestContext) anExpiringShippableProduct(name string, price, stock int, expiry string, grams int) error {
	d, err := time.Parse(time.DateOnly, expiry)
	if err != nil {
		return err
	}
	return c.addProduct(name, price, stock, domain.WithExpiry(d), domain.WithWeight(decimal.NewFromInt(int64(grams))))
}

func (c *checkoutTestContext) addProduct(name string, price, stock int, opts ...domain.ProductOption) error {
	p, err := domain.NewProduct(name, usd(price), stock, opts...)
	if err != nil {
		return err
	}
	c.products[name] = p
	return nil
}

func (c *checkoutTestContext) aCustomerWithBalance(balance int) error {
	c.customer = domain.NewCustomer(usd(balance))
	c.cart = domain.NewCart(c.customer.ID)
	return nil
}

func (c *checkoutTestContext) iAddToTheCart(quantity int, name string) error {
	p, ok := c.products[name]
	if !ok {
		return fmt.Errorf("unknown product %q", name)
	}

	svc, err := c.service()
	if err != nil {
		return err
	}

	if err := svc.AddToCart(c.cart, p, quantity); err != nil {
		c.addErr = errors.Join(c.addErr, err)
	}
	return nil
}

func (c *checkoutTestContext) iCheckOut() error {
	svc, err := c.service()
	if err != nil {
		return err
	}

	c.receipt, c.err = svc.Checkout(context.Background(), c.customer, c.cart)
	return nil
}

func (c *checkoutTestContext) theCheckoutSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success but got error: %v", c.err)
	}
	return nil
}

func (c *checkoutTestContext) theCheckoutFailsWith(msg string) error {
	if c.err == nil {
		return errors.New("expected checkout error but got none")
	}
	if !strings.Contains(c.err.Error(), msg) {
		return fmt.Errorf("expected error containing %q, got %q", msg, c.err.Error())
	}
	return nil
}

func (c *checkoutTestContext) addingFailsWith(msg string) error {
	if c.addErr == nil {
		return errors.New("expected add error but got none")
	}
	if !strings.Contains(c.addErr.Error(), msg) {
		return fmt.Errorf("expected error containing %q, got %q", msg, c.addErr.Error())
	}
	if !c.cart.IsEmpty() {
		return fmt.Errorf("expected empty cart, got %d items", len(c.cart.Items))
	}
	return nil
}

func expectAmount(what string, got domain.Money, want int) error {
	if !got.Amount.Equal(decimal.NewFromInt(int64(want))) {
		return fmt.Errorf("expected %s %d, got %s", what, want, got)
	}
	return nil
}

func (c *checkoutTestContext) theSubtotalIs(want int) error {
	return expectAmount("subtotal", c.receipt.Subtotal, want)
}

func (c *checkoutTestContext) theShippingFeeIs(want int) error {
	return expectAmount("shipping fee", c.receipt.ShippingFee, want)
}

func (c *checkoutTestContext) theTotalIs(want int) error {
	return expectAmount("total", c.receipt.Total, want)
}

func (c *checkoutTestContext) theCustomerBalanceIs(want int) error {
	return expectAmount("balance", c.customer.Balance, want)
}

func (c *checkoutTestContext) theStockOfIs(name string, want int) error {
	p, ok := c.products[name]
	if !ok {
		return fmt.Errorf("unknown product %q", name)
	}
	if p.Quantity != want {
		return fmt.Errorf("expected stock of %s %d, got %d", name, want, p.Quantity)
	}
	return nil
}

func (c *checkoutTestContext) theOutputContains(s string) error {
	if !strings.Contains(c.out.String(), s) {
		return fmt.Errorf("expected output to contain %q, got:\n%s", s, c.out.String())
	}
	return nil
}

func (c *checkoutTestContext) theOutputDoesNotContain(s string) error {
	if strings.Contains(c.out.String(), s) {
		return fmt.Errorf("expected output not to contain %q, got:\n%s", s, c.out.String())
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^today is "([^"]*)"$`, tc.todayIs)
	ctx.Step(`^a product "([^"]*)" priced (\d+) with (\d+) in stock$`, tc.aProduct)
	ctx.Step(`^a product "([^"]*)" priced (\d+) with (\d+) in stock weighing (\d+) grams$`, tc.aShippableProduct)
	ctx.Step(`^a product "([^"]*)" priced (\d+) with (\d+) in stock expiring on "([^"]*)" weighing (\d+) grams$`, tc.anExpiringShippableProduct)
	ctx.Step(`^a customer with balance (\d+)$`, tc.aCustomerWithBalance)

	// When steps
	ctx.Step(`^I add (\d+) "([^"]*)" to the cart$`, tc.iAddToTheCart)
	ctx.Step(`^I check out$`, tc.iCheckOut)

	// Then steps
	ctx.Step(`^the checkout succeeds$`, tc.theCheckoutSucceeds)
	ctx.Step(`^the checkout fails with "([^"]*)"$`, tc.theCheckoutFailsWith)
	ctx.Step(`^adding fails with "([^"]*)"$`, tc.addingFailsWith)
	ctx.Step(`^the subtotal is (\d+)$`, tc.theSubtotalIs)
	ctx.Step(`^the shipping fee is (\d+)$`, tc.theShippingFeeIs)
	ctx.Step(`^the total is (\d+)$`, tc.theTotalIs)
	ctx.Step(`^the customer balance is (\d+)$`, tc.theCustomerBalanceIs)
	ctx.Step(`^the stock of "([^"]*)" is (\d+)$`, tc.theStockOfIs)
	ctx.Step(`^the output contains "([^"]*)"$`, tc.theOutputContains)
	ctx.Step(`^the output does not contain "([^"]*)"$`, tc.theOutputDoesNotContain)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"checkout.feature"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
