package domain_test

import (
	"testing"

	"github.com/nikolayk812/checkout-sim/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestReceipt_String(t *testing.T) {
	receipt := domain.Receipt{
		Lines: []domain.ReceiptLine{
			{Name: "Cheese", Quantity: 2, Total: usd(200)},
			{Name: "Biscuits", Quantity: 1, Total: usd(150)},
		},
		Subtotal:    usd(350),
		ShippingFee: usd(30),
		Total:       usd(380),
		Balance:     usd(620),
	}

	want := "** Checkout receipt **\n" +
		"2x Cheese    200\n" +
		"1x Biscuits    150\n" +
		"----------------------\n" +
		"Subtotal    350\n" +
		"Shipping    30\n" +
		"Amount    380\n\n" +
		"Customer balance after payment: 620\n"

	assert.Equal(t, want, receipt.String())
}
