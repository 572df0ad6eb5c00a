package domain

import (
	"fmt"
	"strings"
)

const receiptSeparator = "----------------------"

type Receipt struct {
	Lines       []ReceiptLine
	Subtotal    Money
	ShippingFee Money
	Total       Money
	// Balance is the customer balance after payment.
	Balance Money

	// Shipment is nil when nothing was shipped.
	Shipment *ShipmentNotice
}

type ReceiptLine struct {
	Name     string
	Quantity int
	Total    Money
}

func (r Receipt) String() string {
	var sb strings.Builder

	sb.WriteString("** Checkout receipt **\n")
	for _, line := range r.Lines {
		fmt.Fprintf(&sb, "%dx %s    %s\n", line.Quantity, line.Name, line.Total)
	}
	sb.WriteString(receiptSeparator + "\n")
	fmt.Fprintf(&sb, "Subtotal    %s\n", r.Subtotal)
	fmt.Fprintf(&sb, "Shipping    %s\n", r.ShippingFee)
	fmt.Fprintf(&sb, "Amount    %s\n\n", r.Total)
	fmt.Fprintf(&sb, "Customer balance after payment: %s\n", r.Balance)

	return sb.String()
}
