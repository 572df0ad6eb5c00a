package checkout

import (
	"context"
	"fmt"
	"io"

	"github.com/nikolayk812/checkout-sim/internal/domain"
	"github.com/nikolayk812/checkout-sim/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultShippingFee is charged once per checkout that ships anything.
var DefaultShippingFee = decimal.NewFromInt(30)

type Service struct {
	shipper     port.Shipper
	clock       port.Clock
	out         io.Writer
	logger      *zap.Logger
	shippingFee decimal.Decimal
}

type Option func(*Service)

func WithClock(clock port.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithShippingFee(fee decimal.Decimal) Option {
	return func(s *Service) {
		s.shippingFee = fee
	}
}

// New returns a checkout service printing receipts to out.
func New(shipper port.Shipper, out io.Writer, opts ...Option) (*Service, error) {
	if shipper == nil {
		return nil, fmt.Errorf("shipper is nil")
	}
	if out == nil {
		return nil, fmt.Errorf("out is nil")
	}

	s := &Service{
		shipper:     shipper,
		clock:       port.SystemClock,
		out:         out,
		logger:      zap.NewNop(),
		shippingFee: DefaultShippingFee,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.shippingFee.IsNegative() {
		return nil, fmt.Errorf("shipping fee is negative")
	}

	return s, nil
}

func (s *Service) AddToCart(cart *domain.Cart, product *domain.Product, quantity int) error {
	if cart == nil {
		return fmt.Errorf("cart is nil")
	}

	if err := cart.Add(product, quantity, s.clock.Now()); err != nil {
		s.logger.Warn("add to cart rejected", zap.Error(err))
		return fmt.Errorf("cart.Add: %w", err)
	}

	s.logger.Debug("added to cart",
		zap.String("product", product.Name),
		zap.String("kind", string(product.Kind())),
		zap.Int("quantity", quantity))

	return nil
}

// Checkout prices the cart, debits the customer, decrements stock, ships
// shippable units and prints the receipt. Nothing is mutated unless every
// check passes. Stock is re-checked here because nothing locks products
// between AddToCart and Checkout.
func (s *Service) Checkout(ctx context.Context, customer *domain.Customer, cart *domain.Cart) (domain.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return domain.Receipt{}, err
	}
	if customer == nil {
		return domain.Receipt{}, fmt.Errorf("customer is nil")
	}
	if cart.IsEmpty() {
		return domain.Receipt{}, domain.ErrEmptyCart
	}

	q, err := s.quote(cart)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("s.quote: %w", err)
	}

	plan, err := newCommitPlan(customer, cart, q.total)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("newCommitPlan: %w", err)
	}

	if err := plan.apply(); err != nil {
		return domain.Receipt{}, fmt.Errorf("plan.apply: %w", err)
	}

	receipt := domain.Receipt{
		Lines:       q.lines,
		Subtotal:    q.subtotal,
		ShippingFee: q.shippingFee,
		Total:       q.total,
		Balance:     customer.Balance,
	}

	s.logger.Info("checkout committed",
		zap.Stringer("customer_id", customer.ID),
		zap.Stringer("subtotal", q.subtotal),
		zap.Stringer("shipping", q.shippingFee),
		zap.Stringer("total", q.total),
		zap.Stringer("balance", customer.Balance))

	if len(q.units) > 0 {
		notice, err := s.shipper.ShipItems(ctx, q.units)
		if err != nil {
			return receipt, fmt.Errorf("shipper.ShipItems: %w", err)
		}
		receipt.Shipment = &notice
	}

	if _, err := io.WriteString(s.out, receipt.String()); err != nil {
		return receipt, fmt.Errorf("io.WriteString: %w", err)
	}

	return receipt, nil
}

type quote struct {
	lines       []domain.ReceiptLine
	units       []domain.ShippableUnit
	subtotal    domain.Money
	shippingFee domain.Money
	total       domain.Money
}

func (s *Service) quote(cart *domain.Cart) (quote, error) {
	for i, item := range cart.Items {
		if item.Product == nil {
			return quote{}, fmt.Errorf("item[%d]: %w", i, domain.ErrNilProduct)
		}
	}

	unit := cart.Items[0].Product.Price.Currency

	q := quote{
		subtotal:    domain.ZeroMoney(unit),
		shippingFee: domain.ZeroMoney(unit),
	}

	for _, item := range cart.Items {
		lineTotal := item.Total()

		subtotal, err := q.subtotal.Add(lineTotal)
		if err != nil {
			return quote{}, fmt.Errorf("product[%s]: %w", item.Product.Name, err)
		}
		q.subtotal = subtotal

		q.lines = append(q.lines, domain.ReceiptLine{
			Name:     item.Product.Name,
			Quantity: item.Quantity,
			Total:    lineTotal,
		})

		if u, ok := item.Product.ShippableUnit(); ok {
			for range item.Quantity {
				q.units = append(q.units, u)
			}
		}
	}

	if len(q.units) > 0 {
		q.shippingFee = domain.NewMoney(s.shippingFee, unit)
	}

	total, err := q.subtotal.Add(q.shippingFee)
	if err != nil {
		return quote{}, fmt.Errorf("subtotal.Add: %w", err)
	}
	q.total = total

	return q, nil
}
