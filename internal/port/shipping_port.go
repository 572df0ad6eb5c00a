package port

import (
	"context"

	"github.com/nikolayk812/checkout-sim/internal/domain"
)

type Shipper interface {
	ShipItems(ctx context.Context, units []domain.ShippableUnit) (domain.ShipmentNotice, error)
}
