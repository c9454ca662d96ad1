package payments

import (
	"context"
	"fmt"
	"log"

	"payflow/internal/config"
	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"
)

const (
	// Transfers above this amount settle out of band and come back Pending.
	bankSettlementThreshold = 5000.0
	// Estimated settlement window for Pending transfers: 24h in millis.
	bankSettlementWindowMillis = int64(86400000)

	routingNumberLength = 9
)

// BankTransferProcessor simulates an ACH-style transfer: routing number
// format check, funds check against the account balance, and an out-of-band
// settlement window for large transfers.

type BankTransferProcessor struct {
	processorCore
}

var _ interfaces.IPaymentProcessor = (*BankTransferProcessor)(nil)

func NewBankTransferProcessor(cfg config.ProcessorConfig) *BankTransferProcessor {
	return &BankTransferProcessor{processorCore: newProcessorCore("bank_transfer", cfg)}
}

func (p *BankTransferProcessor) ExecutePayment(ctx context.Context, method entities.PaymentMethod, amount float64) entities.PaymentResult {
	return p.execute(ctx, method, amount, p.ValidatePaymentMethod, p.ProcessPayment)
}

func (p *BankTransferProcessor) ValidatePaymentMethod(method entities.PaymentMethod, amount float64) *entities.Failed {
	account, ok := method.(entities.BankAccount)
	if !ok {
		return p.unsupported(method, amount)
	}
	if !isDigits(account.RoutingNumber) || len(account.RoutingNumber) != routingNumberLength {
		return &entities.Failed{
			ErrorCode:    entities.ErrCodeInvalidRoutingNumber,
			ErrorMessage: fmt.Sprintf("routing number must be %d digits", routingNumberLength),
			Method:       method,
			Amount:       amount,
		}
	}
	return nil
}

func (p *BankTransferProcessor) ProcessPayment(ctx context.Context, method entities.PaymentMethod, amount float64) entities.PaymentResult {
	account := method.(entities.BankAccount)

	if account.Balance < amount {
		return entities.Failed{
			ErrorCode:    entities.ErrCodeInsufficientFunds,
			ErrorMessage: fmt.Sprintf("account %s has insufficient funds", account.MaskedNumber()),
			Method:       method,
			Amount:       amount,
		}
	}

	if p.transientFailure() {
		log.Printf("[payment][processor] simulated bank network error method_id=%s account=%s", account.ID, account.MaskedNumber())
		return entities.Failed{
			ErrorCode:    entities.ErrCodeBankNetworkError,
			ErrorMessage: "bank network unavailable, try again later",
			Method:       method,
			Amount:       amount,
		}
	}

	txID := p.GenerateTransactionID(method)

	if amount > bankSettlementThreshold {
		log.Printf("[payment][processor] bank transfer pending settlement tx=%s account=%s amount=%.2f", txID, account.MaskedNumber(), amount)
		return entities.Pending{
			TransactionID:             txID,
			Amount:                    amount,
			Method:                    method,
			EstimatedCompletionMillis: bankSettlementWindowMillis,
			StatusCheckURL:            statusCheckPath + txID,
		}
	}

	fee := p.CalculateFee(amount)
	log.Printf("[payment][processor] bank transfer success tx=%s account=%s amount=%.2f fee=%.2f", txID, account.MaskedNumber(), amount, fee)
	return entities.NewSuccess(txID, amount, fee, method)
}
