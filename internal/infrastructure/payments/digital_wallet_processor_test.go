package payments

import (
	"context"
	"testing"

	"payflow/internal/config"
	"payflow/internal/domain/entities"
)

func digitalWalletTestConfig() config.ProcessorConfig {
	return config.ProcessorConfig{
		Enabled:     true,
		FeeRate:     0.02,
		MaxAmount:   25000,
		DelayMillis: 0,
		FailureRate: 0,
	}
}

func validWallet() entities.DigitalWallet {
	return entities.DigitalWallet{
		ID:         "wallet-1",
		WalletType: entities.WalletTypePaypal,
		Email:      "payer@example.com",
		Balance:    5000,
		Currency:   "USD",
		Active:     true,
	}
}

func TestDigitalWalletProcessor_ExecutePayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p := NewDigitalWalletProcessor(digitalWalletTestConfig())

		result := p.ExecutePayment(context.Background(), validWallet(), 100.0)
		success, ok := result.(entities.Success)
		if !ok {
			t.Fatalf("expected Success, got %#v", result)
		}
		if success.Fee != 2.0 {
			t.Fatalf("expected fee 2.00, got %.2f", success.Fee)
		}
		if success.Total != 102.0 {
			t.Fatalf("expected total 102.00, got %.2f", success.Total)
		}
	})

	t.Run("insufficient balance wins over wallet limit", func(t *testing.T) {
		p := NewDigitalWalletProcessor(digitalWalletTestConfig())

		wallet := validWallet()
		wallet.WalletType = entities.WalletTypeVenmo
		wallet.Balance = 1000

		// 1500 both exceeds the balance and the VENMO limit path is near;
		// the balance check must fire first.
		result := p.ExecutePayment(context.Background(), wallet, 1500.0)
		failed, ok := result.(entities.Failed)
		if !ok || failed.ErrorCode != entities.ErrCodeInsufficientWalletBalance {
			t.Fatalf("expected INSUFFICIENT_WALLET_BALANCE, got %#v", result)
		}
	})

	t.Run("per wallet type limit", func(t *testing.T) {
		p := NewDigitalWalletProcessor(digitalWalletTestConfig())

		wallet := validWallet()
		wallet.WalletType = entities.WalletTypeVenmo
		wallet.Balance = 10000

		result := p.ExecutePayment(context.Background(), wallet, 3500.0)
		failed, ok := result.(entities.Failed)
		if !ok || failed.ErrorCode != entities.ErrCodeWalletLimitExceeded {
			t.Fatalf("expected WALLET_LIMIT_EXCEEDED, got %#v", result)
		}
	})

	t.Run("crypto wallet has the lowest ceiling", func(t *testing.T) {
		p := NewDigitalWalletProcessor(digitalWalletTestConfig())

		wallet := validWallet()
		wallet.WalletType = entities.WalletTypeCrypto
		wallet.Balance = 10000

		result := p.ExecutePayment(context.Background(), wallet, 2500.0)
		failed, ok := result.(entities.Failed)
		if !ok || failed.ErrorCode != entities.ErrCodeWalletLimitExceeded {
			t.Fatalf("expected WALLET_LIMIT_EXCEEDED, got %#v", result)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		p := NewDigitalWalletProcessor(digitalWalletTestConfig())

		wallet := validWallet()
		wallet.Email = "not-an-email"

		result := p.ExecutePayment(context.Background(), wallet, 100.0)
		failed, ok := result.(entities.Failed)
		if !ok || failed.ErrorCode != entities.ErrCodeInvalidEmail {
			t.Fatalf("expected INVALID_EMAIL, got %#v", result)
		}
	})

	t.Run("unsupported method", func(t *testing.T) {
		p := NewDigitalWalletProcessor(digitalWalletTestConfig())

		result := p.ExecutePayment(context.Background(), validAccount(), 100.0)
		failed, ok := result.(entities.Failed)
		if !ok || failed.ErrorCode != entities.ErrCodeUnsupportedMethod {
			t.Fatalf("expected UNSUPPORTED_METHOD, got %#v", result)
		}
	})
}

func TestIsPlausibleEmail(t *testing.T) {
	valid := []string{"a@b.co", "payer@example.com", " padded@example.com "}
	for _, email := range valid {
		if !isPlausibleEmail(email) {
			t.Fatalf("expected %q to be plausible", email)
		}
	}

	invalid := []string{"", "nope", "@example.com", "user@", "user@nodot"}
	for _, email := range invalid {
		if isPlausibleEmail(email) {
			t.Fatalf("expected %q to be rejected", email)
		}
	}
}
