// Package fulfillment is the order hand-off collaborator. The current
// implementation only records the order: no transmission is wired up yet.
package fulfillment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/emberworks/forgefront-backend/internal/checkout"
	"github.com/emberworks/forgefront-backend/pkg/logger"
	"github.com/emberworks/forgefront-backend/pkg/types"
)

// LogService accepts order snapshots and logs them as confirmation of receipt.
type LogService struct {
	logg *logger.Logger
}

func NewLogService(logg *logger.Logger) *LogService {
	return &LogService{logg: logg}
}

// Submit records the snapshot and issues a confirmation.
func (s *LogService) Submit(ctx context.Context, snapshot checkout.OrderSnapshot) (*checkout.Confirmation, error) {
	confirmation := &checkout.Confirmation{
		OrderID:    uuid.New(),
		ReceivedAt: time.Now().UTC(),
	}

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"order_id":   confirmation.OrderID.String(),
			"item_count": snapshot.ItemCount,
			"total":      types.FormatMoney(snapshot.Total),
			"lines":      len(snapshot.Lines),
			"customer":   snapshot.Fields.Name,
		})
		s.logg.Info(ctx, "order.received")
	}

	return confirmation, nil
}
