package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidMethodID      = errors.New("invalid method id")
)

// PaymentRequest pairs an instrument with the amount to charge.
type PaymentRequest struct {
	Method entities.PaymentMethod
	Amount float64
}

// IPaymentUseCase encapsulates payment processing and transaction lookups.
//
// ProcessPayment never returns a Go error: every domain failure comes back as
// an entities.Failed value, and unexpected panics in a processor are converted
// to PROCESSING_ERROR.

type IPaymentUseCase interface {
	ProcessPayment(ctx context.Context, method entities.PaymentMethod, amount float64) entities.PaymentResult
	ProcessBatchPayments(ctx context.Context, requests []PaymentRequest) []entities.PaymentResult
	GetTransaction(ctx context.Context, transactionID string) (entities.TransactionRecord, error)
	ListTransactionsByMethodID(ctx context.Context, methodID string) ([]entities.TransactionRecord, error)
}

type PaymentUseCase struct {
	processors map[entities.MethodType]interfaces.IPaymentProcessor
	auditor    interfaces.IAuditor
	repo       interfaces.ITransactionRepository
	maxAmount  float64
	now        func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	processors map[entities.MethodType]interfaces.IPaymentProcessor,
	auditor interfaces.IAuditor,
	repo interfaces.ITransactionRepository,
	maxAmount float64,
) *PaymentUseCase {
	return &PaymentUseCase{
		processors: processors,
		auditor:    auditor,
		repo:       repo,
		maxAmount:  maxAmount,
		now:        time.Now,
	}
}

// ProcessPayment runs the full single-payment path: audit the attempt,
// pre-validate, dispatch to the matching processor, audit the result, then
// record it best-effort.
func (u *PaymentUseCase) ProcessPayment(ctx context.Context, method entities.PaymentMethod, amount float64) entities.PaymentResult {
	u.auditor.AuditPaymentAttempt(method, amount)

	result := u.process(ctx, method, amount)

	u.auditor.AuditPaymentResult(result)
	u.record(ctx, method, amount, result)
	return result
}

// ProcessBatchPayments fans out one goroutine per payment and waits for all of
// them. Results keep the input order. Items are independent: no cross-payment
// ordering or atomicity, and no concurrency limit.
func (u *PaymentUseCase) ProcessBatchPayments(ctx context.Context, requests []PaymentRequest) []entities.PaymentResult {
	results := make([]entities.PaymentResult, len(requests))

	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req PaymentRequest) {
			defer wg.Done()
			results[i] = u.ProcessPayment(ctx, req.Method, req.Amount)
		}(i, req)
	}
	wg.Wait()

	return results
}

func (u *PaymentUseCase) process(ctx context.Context, method entities.PaymentMethod, amount float64) (result entities.PaymentResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[payment][usecase] recovered panic method_id=%s amount=%.2f panic=%v", methodID(method), amount, r)
			result = entities.Failed{
				ErrorCode:    entities.ErrCodeProcessingError,
				ErrorMessage: "unexpected processing error",
				Method:       method,
				Amount:       amount,
			}
		}
	}()

	// Pre-validation order matters: first failing check wins.
	if amount <= 0 {
		return entities.Failed{
			ErrorCode:    entities.ErrCodeInvalidAmount,
			ErrorMessage: "amount must be greater than zero",
			Method:       method,
			Amount:       amount,
		}
	}
	if amount > u.maxAmount {
		return entities.Failed{
			ErrorCode:    entities.ErrCodeAmountTooLarge,
			ErrorMessage: fmt.Sprintf("amount %.2f exceeds global ceiling %.2f", amount, u.maxAmount),
			Method:       method,
			Amount:       amount,
		}
	}
	if method == nil {
		return entities.Failed{
			ErrorCode:    entities.ErrCodeUnsupportedMethod,
			ErrorMessage: "payment method is required",
			Amount:       amount,
		}
	}
	if !method.IsActive() {
		return entities.Failed{
			ErrorCode:    entities.ErrCodeInactiveMethod,
			ErrorMessage: fmt.Sprintf("payment method %s is inactive", method.MethodID()),
			Method:       method,
			Amount:       amount,
		}
	}
	if failed := u.preValidate(method, amount); failed != nil {
		return *failed
	}

	processor, ok := u.processors[method.MethodType()]
	if !ok {
		// Unreachable with the full processor map wired, kept as a guard.
		return entities.Failed{
			ErrorCode:    entities.ErrCodeNoProcessor,
			ErrorMessage: fmt.Sprintf("no processor registered for method type %s", method.MethodType()),
			Method:       method,
			Amount:       amount,
		}
	}

	return processor.ExecutePayment(ctx, method, amount)
}

// preValidate runs the cheap instrument-specific checks before dispatch so an
// obviously bad instrument never reaches a processor (or its simulated
// failure branch).
func (u *PaymentUseCase) preValidate(method entities.PaymentMethod, amount float64) *entities.Failed {
	switch m := method.(type) {
	case entities.CreditCard:
		if m.IsExpired(u.now()) {
			return &entities.Failed{
				ErrorCode:    entities.ErrCodeCardExpired,
				ErrorMessage: fmt.Sprintf("card %s expired %02d/%d", m.MaskedNumber(), m.ExpiryMonth, m.ExpiryYear),
				Method:       method,
				Amount:       amount,
			}
		}
	case entities.BankAccount:
		if len(m.RoutingNumber) != 9 {
			return &entities.Failed{
				ErrorCode:    entities.ErrCodeInvalidRoutingNumber,
				ErrorMessage: "routing number must be 9 digits",
				Method:       method,
				Amount:       amount,
			}
		}
		if m.Balance < amount {
			return &entities.Failed{
				ErrorCode:    entities.ErrCodeInsufficientFunds,
				ErrorMessage: fmt.Sprintf("account %s has insufficient funds", m.MaskedNumber()),
				Method:       method,
				Amount:       amount,
			}
		}
	case entities.DigitalWallet:
		if !strings.Contains(m.Email, "@") {
			return &entities.Failed{
				ErrorCode:    entities.ErrCodeInvalidEmail,
				ErrorMessage: "wallet email is not a valid address",
				Method:       method,
				Amount:       amount,
			}
		}
		if m.Balance < amount {
			return &entities.Failed{
				ErrorCode:    entities.ErrCodeInsufficientWalletBalance,
				ErrorMessage: fmt.Sprintf("wallet balance %.2f below amount %.2f", m.Balance, amount),
				Method:       method,
				Amount:       amount,
			}
		}
	}
	return nil
}

// record persists a trace of the outcome. Storage failures are logged and
// swallowed: the caller already holds the authoritative result.
func (u *PaymentUseCase) record(ctx context.Context, method entities.PaymentMethod, amount float64, result entities.PaymentResult) {
	if u.repo == nil {
		return
	}

	rec := entities.TransactionRecord{
		MethodID:  methodID(method),
		Amount:    amount,
		Status:    result.Kind(),
		CreatedAt: u.now().UTC(),
	}
	if method != nil {
		rec.MethodType = method.MethodType()
	}

	switch r := result.(type) {
	case entities.Success:
		rec.TransactionID = r.TransactionID
		rec.Fee = r.Fee
		rec.Total = r.Total
	case entities.Pending:
		rec.TransactionID = r.TransactionID
	case entities.Failed:
		rec.TransactionID = "TX-" + uuid.NewString()
		rec.ErrorCode = r.ErrorCode
	case entities.Cancelled:
		rec.TransactionID = "TX-" + uuid.NewString()
	}

	if _, err := u.repo.Create(ctx, rec); err != nil {
		log.Printf("[payment][usecase] transaction record create failed tx=%s err=%v", rec.TransactionID, err)
	}
}

func (u *PaymentUseCase) GetTransaction(ctx context.Context, transactionID string) (entities.TransactionRecord, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.TransactionRecord{}, ErrInvalidTransactionID
	}

	rec, err := u.repo.GetByID(ctx, transactionID)
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	if rec.TransactionID == "" {
		return entities.TransactionRecord{}, ErrTransactionNotFound
	}
	return rec, nil
}

func (u *PaymentUseCase) ListTransactionsByMethodID(ctx context.Context, methodID string) ([]entities.TransactionRecord, error) {
	methodID = strings.TrimSpace(methodID)
	if methodID == "" {
		return nil, ErrInvalidMethodID
	}
	return u.repo.ListByMethodID(ctx, methodID)
}

func methodID(method entities.PaymentMethod) string {
	if method == nil {
		return ""
	}
	return method.MethodID()
}
