package payments

import (
	"context"
	"fmt"
	"log"

	"payflow/internal/config"
	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"
)

// Credit card fees are clamped to a fixed band regardless of the configured
// rate.
const (
	creditCardMinFee = 0.30
	creditCardMaxFee = 50.00
)

// CreditCardProcessor simulates a card acquirer: expiry and number format
// checks, a clamped percentage fee, and a configurable transient failure rate
// standing in for provider network errors.

type CreditCardProcessor struct {
	processorCore
}

var _ interfaces.IPaymentProcessor = (*CreditCardProcessor)(nil)

func NewCreditCardProcessor(cfg config.ProcessorConfig) *CreditCardProcessor {
	return &CreditCardProcessor{processorCore: newProcessorCore("credit_card", cfg)}
}

func (p *CreditCardProcessor) ExecutePayment(ctx context.Context, method entities.PaymentMethod, amount float64) entities.PaymentResult {
	return p.execute(ctx, method, amount, p.ValidatePaymentMethod, p.ProcessPayment)
}

// CalculateFee applies the configured rate, then the fixed clamp band.
func (p *CreditCardProcessor) CalculateFee(amount float64) float64 {
	fee := p.processorCore.CalculateFee(amount)
	if fee < creditCardMinFee {
		fee = creditCardMinFee
	}
	if fee > creditCardMaxFee {
		fee = creditCardMaxFee
	}
	return fee
}

// CalculateTotal is the amount plus the clamped fee.
func (p *CreditCardProcessor) CalculateTotal(amount float64) float64 {
	return roundCents(amount + p.CalculateFee(amount))
}

func (p *CreditCardProcessor) ValidatePaymentMethod(method entities.PaymentMethod, amount float64) *entities.Failed {
	card, ok := method.(entities.CreditCard)
	if !ok {
		return p.unsupported(method, amount)
	}
	if !isDigits(card.CardNumber) || len(card.CardNumber) < 13 || len(card.CardNumber) > 19 {
		return &entities.Failed{
			ErrorCode:    entities.ErrCodeInvalidCardNumber,
			ErrorMessage: "card number must be 13 to 19 digits",
			Method:       method,
			Amount:       amount,
		}
	}
	if card.IsExpired(p.now()) {
		return &entities.Failed{
			ErrorCode:    entities.ErrCodeCardExpired,
			ErrorMessage: fmt.Sprintf("card %s expired %02d/%d", card.MaskedNumber(), card.ExpiryMonth, card.ExpiryYear),
			Method:       method,
			Amount:       amount,
		}
	}
	return nil
}

func (p *CreditCardProcessor) ProcessPayment(ctx context.Context, method entities.PaymentMethod, amount float64) entities.PaymentResult {
	card := method.(entities.CreditCard)

	if p.transientFailure() {
		log.Printf("[payment][processor] simulated network error method_id=%s card=%s", card.ID, card.MaskedNumber())
		return entities.Failed{
			ErrorCode:    entities.ErrCodeNetworkError,
			ErrorMessage: "card network unavailable, try again later",
			Method:       method,
			Amount:       amount,
		}
	}

	fee := p.CalculateFee(amount)
	txID := p.GenerateTransactionID(method)
	log.Printf("[payment][processor] credit card charge success tx=%s card=%s amount=%.2f fee=%.2f", txID, card.MaskedNumber(), amount, fee)
	return entities.NewSuccess(txID, amount, fee, method)
}
