package payments

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"payflow/internal/config"
	"payflow/internal/domain/entities"

	"github.com/google/uuid"
)

// statusCheckPath is where Pending transactions can be polled.
const statusCheckPath = "/v1/payments/"

// processorCore holds the pieces every processor shares: its configuration,
// a random source for the simulated transient failures, and a clock.
//
// rand and now are injectable so tests are deterministic. The default random
// source is the lock-protected top-level one: a processor is built once and
// shared by every request goroutine, so the source must be safe for
// concurrent use.

type processorCore struct {
	name string
	cfg  config.ProcessorConfig
	rand func() float64
	now  func() time.Time
}

func newProcessorCore(name string, cfg config.ProcessorConfig) processorCore {
	return processorCore{
		name: name,
		cfg:  cfg,
		rand: rand.Float64,
		now:  time.Now,
	}
}

// CalculateFee applies the configured flat rate, rounded to cents. Processors
// with a fee clamp apply it on top of this value.
func (p *processorCore) CalculateFee(amount float64) float64 {
	return roundCents(amount * p.cfg.FeeRate)
}

// CalculateTotal is the amount plus the unclamped fee.
func (p *processorCore) CalculateTotal(amount float64) float64 {
	return roundCents(amount + p.CalculateFee(amount))
}

// GenerateTransactionID produces an id like "CC-<uuid>".
func (p *processorCore) GenerateTransactionID(method entities.PaymentMethod) string {
	return fmt.Sprintf("%s-%s", transactionPrefix(method.MethodType()), uuid.NewString())
}

// simulateLatency models the provider round trip. No cancellation handling:
// callers that need a bound must enforce it themselves.
func (p *processorCore) simulateLatency() {
	if p.cfg.DelayMillis > 0 {
		time.Sleep(time.Duration(p.cfg.DelayMillis) * time.Millisecond)
	}
}

// transientFailure fires with the configured probability, modeling a provider
// network error.
func (p *processorCore) transientFailure() bool {
	return p.cfg.FailureRate > 0 && p.rand() < p.cfg.FailureRate
}

// execute is the shared wrapper around each processor's flow: enabled check,
// per-processor ceiling, instrument validation, simulated latency, then the
// instrument-specific business rules.
func (p *processorCore) execute(
	ctx context.Context,
	method entities.PaymentMethod,
	amount float64,
	validate func(method entities.PaymentMethod, amount float64) *entities.Failed,
	process func(ctx context.Context, method entities.PaymentMethod, amount float64) entities.PaymentResult,
) entities.PaymentResult {
	if !p.cfg.Enabled {
		return entities.Failed{
			ErrorCode:    entities.ErrCodeProcessorDisabled,
			ErrorMessage: fmt.Sprintf("%s processor is disabled", p.name),
			Method:       method,
			Amount:       amount,
		}
	}
	if amount > p.cfg.MaxAmount {
		return entities.Failed{
			ErrorCode:    entities.ErrCodeAmountExceedsLimit,
			ErrorMessage: fmt.Sprintf("amount %.2f exceeds %s processor limit %.2f", amount, p.name, p.cfg.MaxAmount),
			Method:       method,
			Amount:       amount,
		}
	}
	if failed := validate(method, amount); failed != nil {
		return *failed
	}

	p.simulateLatency()
	return process(ctx, method, amount)
}

func (p *processorCore) unsupported(method entities.PaymentMethod, amount float64) *entities.Failed {
	return &entities.Failed{
		ErrorCode:    entities.ErrCodeUnsupportedMethod,
		ErrorMessage: fmt.Sprintf("%s processor does not support method type %s", p.name, method.MethodType()),
		Method:       method,
		Amount:       amount,
	}
}

func transactionPrefix(t entities.MethodType) string {
	switch t {
	case entities.MethodTypeCreditCard:
		return "CC"
	case entities.MethodTypeBankAccount:
		return "BT"
	case entities.MethodTypeDigitalWallet:
		return "DW"
	default:
		return "TX"
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
