package fulfillment

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/emberworks/forgefront-backend/internal/cart"
	"github.com/emberworks/forgefront-backend/internal/checkout"
	"github.com/emberworks/forgefront-backend/pkg/logger"
)

func TestSubmitLogsAndConfirms(t *testing.T) {
	buf := &bytes.Buffer{}
	logg := logger.New(logger.Options{ServiceName: "test", Output: buf})
	svc := NewLogService(logg)

	snapshot := checkout.OrderSnapshot{
		Fields:    checkout.Fields{Name: "Ada"},
		Lines:     []cart.Line{{ProductID: "ring-a", UnitPrice: decimal.NewFromInt(10), Quantity: 2}},
		ItemCount: 2,
		Total:     decimal.NewFromInt(20),
	}

	confirmation, err := svc.Submit(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmation.OrderID == uuid.Nil {
		t.Fatal("expected an order id")
	}
	if confirmation.ReceivedAt.IsZero() {
		t.Fatal("expected a receipt timestamp")
	}
	if !bytes.Contains(buf.Bytes(), []byte("order.received")) {
		t.Fatalf("expected order.received log entry; got %s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("20.00")) {
		t.Fatalf("expected formatted total in log entry; got %s", buf.String())
	}
}

func TestSubmitWithoutLoggerStillConfirms(t *testing.T) {
	svc := NewLogService(nil)
	confirmation, err := svc.Submit(context.Background(), checkout.OrderSnapshot{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmation == nil || confirmation.OrderID == uuid.Nil {
		t.Fatal("expected a confirmation")
	}
}
