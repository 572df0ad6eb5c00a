package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var gramsPerKilogram = decimal.NewFromInt(1000)

type ShipmentNotice struct {
	Lines []ShipmentLine
	// TotalWeight in grams.
	TotalWeight decimal.Decimal
}

type ShipmentLine struct {
	Name  string
	Count int
	// Weight in grams, summed over Count units.
	Weight decimal.Decimal
}

// NewShipmentNotice groups units by name, keeping the order in which each
// name was first seen.
func NewShipmentNotice(units []ShippableUnit) ShipmentNotice {
	notice := ShipmentNotice{TotalWeight: decimal.Zero}
	index := make(map[string]int)

	for _, u := range units {
		i, ok := index[u.Name]
		if !ok {
			i = len(notice.Lines)
			index[u.Name] = i
			notice.Lines = append(notice.Lines, ShipmentLine{Name: u.Name, Weight: decimal.Zero})
		}

		notice.Lines[i].Count++
		notice.Lines[i].Weight = notice.Lines[i].Weight.Add(u.Weight)
		notice.TotalWeight = notice.TotalWeight.Add(u.Weight)
	}

	return notice
}

func (n ShipmentNotice) TotalKilograms() decimal.Decimal {
	return n.TotalWeight.Div(gramsPerKilogram)
}

func (n ShipmentNotice) String() string {
	var sb strings.Builder

	sb.WriteString("** Shipment notice **\n")
	for _, line := range n.Lines {
		fmt.Fprintf(&sb, "%dx %s    %dg\n", line.Count, line.Name, line.Weight.IntPart())
	}
	// float64 rounding: 1150g prints 1.1kg, 1250g prints 1.2kg.
	fmt.Fprintf(&sb, "Total package weight %.1fkg\n\n", n.TotalKilograms().InexactFloat64())

	return sb.String()
}
