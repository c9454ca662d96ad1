package payments

import (
	"context"
	"fmt"
	"log"
	"strings"

	"payflow/internal/config"
	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"
)

// Per-wallet-type transaction ceilings. Peer-to-peer wallets get lower limits
// than hosted checkout wallets.
var walletTypeLimits = map[entities.WalletType]float64{
	entities.WalletTypePaypal:   10000.0,
	entities.WalletTypeVenmo:    3000.0,
	entities.WalletTypeApplePay: 10000.0,
	entities.WalletTypeCrypto:   2000.0,
}

// DigitalWalletProcessor simulates a wallet provider: email check, balance
// check, then a per-wallet-type ceiling. The balance check runs first, so an
// underfunded wallet reports INSUFFICIENT_WALLET_BALANCE even when the amount
// also breaks the ceiling.

type DigitalWalletProcessor struct {
	processorCore
}

var _ interfaces.IPaymentProcessor = (*DigitalWalletProcessor)(nil)

func NewDigitalWalletProcessor(cfg config.ProcessorConfig) *DigitalWalletProcessor {
	return &DigitalWalletProcessor{processorCore: newProcessorCore("digital_wallet", cfg)}
}

func (p *DigitalWalletProcessor) ExecutePayment(ctx context.Context, method entities.PaymentMethod, amount float64) entities.PaymentResult {
	return p.execute(ctx, method, amount, p.ValidatePaymentMethod, p.ProcessPayment)
}

func (p *DigitalWalletProcessor) ValidatePaymentMethod(method entities.PaymentMethod, amount float64) *entities.Failed {
	wallet, ok := method.(entities.DigitalWallet)
	if !ok {
		return p.unsupported(method, amount)
	}
	if !isPlausibleEmail(wallet.Email) {
		return &entities.Failed{
			ErrorCode:    entities.ErrCodeInvalidEmail,
			ErrorMessage: "wallet email is not a valid address",
			Method:       method,
			Amount:       amount,
		}
	}
	return nil
}

func (p *DigitalWalletProcessor) ProcessPayment(ctx context.Context, method entities.PaymentMethod, amount float64) entities.PaymentResult {
	wallet := method.(entities.DigitalWallet)

	if wallet.Balance < amount {
		return entities.Failed{
			ErrorCode:    entities.ErrCodeInsufficientWalletBalance,
			ErrorMessage: fmt.Sprintf("wallet balance %.2f below amount %.2f", wallet.Balance, amount),
			Method:       method,
			Amount:       amount,
		}
	}

	if limit, ok := walletTypeLimits[wallet.WalletType]; ok && amount > limit {
		return entities.Failed{
			ErrorCode:    entities.ErrCodeWalletLimitExceeded,
			ErrorMessage: fmt.Sprintf("%s wallet limit is %.2f per transaction", wallet.WalletType, limit),
			Method:       method,
			Amount:       amount,
		}
	}

	if p.transientFailure() {
		log.Printf("[payment][processor] simulated wallet network error method_id=%s", wallet.ID)
		return entities.Failed{
			ErrorCode:    entities.ErrCodeNetworkError,
			ErrorMessage: "wallet provider unavailable, try again later",
			Method:       method,
			Amount:       amount,
		}
	}

	fee := p.CalculateFee(amount)
	txID := p.GenerateTransactionID(method)
	log.Printf("[payment][processor] wallet charge success tx=%s wallet_type=%s amount=%.2f fee=%.2f", txID, wallet.WalletType, amount, fee)
	return entities.NewSuccess(txID, amount, fee, method)
}

func isPlausibleEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
