package interfaces

import (
	"context"

	"payflow/internal/domain/entities"
)

// IPaymentProcessor executes a payment against one instrument family.
//
// Implementations wrap their business rules behind ExecutePayment, which runs
// the shared guards (enabled, per-processor ceiling, instrument validation)
// before the instrument-specific flow. Domain failures come back as
// entities.Failed values, never as panics.
type IPaymentProcessor interface {
	ExecutePayment(ctx context.Context, method entities.PaymentMethod, amount float64) entities.PaymentResult
}
