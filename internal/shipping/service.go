package shipping

import (
	"context"
	"fmt"
	"io"

	"github.com/nikolayk812/checkout-sim/internal/domain"
	"github.com/nikolayk812/checkout-sim/internal/port"
	"go.uber.org/zap"
)

type service struct {
	out    io.Writer
	logger *zap.Logger
}

// New returns a Shipper that prints shipment notices to out.
func New(out io.Writer, logger *zap.Logger) port.Shipper {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		out:    out,
		logger: logger,
	}
}

func (s *service) ShipItems(ctx context.Context, units []domain.ShippableUnit) (domain.ShipmentNotice, error) {
	if err := ctx.Err(); err != nil {
		return domain.ShipmentNotice{}, err
	}
	if len(units) == 0 {
		return domain.ShipmentNotice{}, domain.ErrNothingToShip
	}

	notice := domain.NewShipmentNotice(units)

	if _, err := io.WriteString(s.out, notice.String()); err != nil {
		return domain.ShipmentNotice{}, fmt.Errorf("io.WriteString: %w", err)
	}

	s.logger.Info("shipment dispatched",
		zap.Int("units", len(units)),
		zap.Int("lines", len(notice.Lines)),
		zap.Stringer("total_grams", notice.TotalWeight))

	return notice, nil
}
