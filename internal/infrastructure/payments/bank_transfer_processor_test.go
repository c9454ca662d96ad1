package payments

import (
	"context"
	"strings"
	"testing"

	"payflow/internal/config"
	"payflow/internal/domain/entities"
)

func bankTransferTestConfig() config.ProcessorConfig {
	return config.ProcessorConfig{
		Enabled:     true,
		FeeRate:     0.01,
		MaxAmount:   100000,
		DelayMillis: 0,
		FailureRate: 0,
	}
}

func validAccount() entities.BankAccount {
	return entities.BankAccount{
		ID:            "acct-1",
		AccountNumber: "000123456789",
		RoutingNumber: "021000021",
		AccountType:   entities.AccountTypeChecking,
		BankName:      "First Example",
		Balance:       20000,
		Active:        true,
	}
}

func TestBankTransferProcessor_ExecutePayment(t *testing.T) {
	t.Run("small transfer succeeds", func(t *testing.T) {
		p := NewBankTransferProcessor(bankTransferTestConfig())
		p.rand = func() float64 { return 0.99 }

		result := p.ExecutePayment(context.Background(), validAccount(), 1000.0)
		success, ok := result.(entities.Success)
		if !ok {
			t.Fatalf("expected Success, got %#v", result)
		}
		if success.Fee != 10.0 {
			t.Fatalf("expected fee 10.00, got %.2f", success.Fee)
		}
		if success.Total != 1010.0 {
			t.Fatalf("expected total 1010.00, got %.2f", success.Total)
		}
	})

	t.Run("large transfer goes pending", func(t *testing.T) {
		p := NewBankTransferProcessor(bankTransferTestConfig())
		p.rand = func() float64 { return 0.99 }

		result := p.ExecutePayment(context.Background(), validAccount(), 6000.0)
		pending, ok := result.(entities.Pending)
		if !ok {
			t.Fatalf("expected Pending, got %#v", result)
		}
		if pending.TransactionID == "" {
			t.Fatalf("expected non-empty transaction id")
		}
		if pending.EstimatedCompletionMillis != 86400000 {
			t.Fatalf("expected 86400000ms settlement window, got %d", pending.EstimatedCompletionMillis)
		}
		if !strings.HasPrefix(pending.StatusCheckURL, "/v1/payments/") {
			t.Fatalf("unexpected status check url %q", pending.StatusCheckURL)
		}
		if !strings.HasSuffix(pending.StatusCheckURL, pending.TransactionID) {
			t.Fatalf("status check url %q does not reference tx %q", pending.StatusCheckURL, pending.TransactionID)
		}
	})

	t.Run("threshold amount itself still settles synchronously", func(t *testing.T) {
		p := NewBankTransferProcessor(bankTransferTestConfig())
		p.rand = func() float64 { return 0.99 }

		if _, ok := p.ExecutePayment(context.Background(), validAccount(), 5000.0).(entities.Success); !ok {
			t.Fatalf("expected Success at exactly 5000")
		}
	})

	t.Run("insufficient funds", func(t *testing.T) {
		p := NewBankTransferProcessor(bankTransferTestConfig())

		account := validAccount()
		account.Balance = 100

		result := p.ExecutePayment(context.Background(), account, 500.0)
		failed, ok := result.(entities.Failed)
		if !ok || failed.ErrorCode != entities.ErrCodeInsufficientFunds {
			t.Fatalf("expected INSUFFICIENT_FUNDS, got %#v", result)
		}
	})

	t.Run("invalid routing number", func(t *testing.T) {
		p := NewBankTransferProcessor(bankTransferTestConfig())

		account := validAccount()
		account.RoutingNumber = "12345"

		result := p.ExecutePayment(context.Background(), account, 500.0)
		failed, ok := result.(entities.Failed)
		if !ok || failed.ErrorCode != entities.ErrCodeInvalidRoutingNumber {
			t.Fatalf("expected INVALID_ROUTING_NUMBER, got %#v", result)
		}
	})

	t.Run("simulated bank network error", func(t *testing.T) {
		cfg := bankTransferTestConfig()
		cfg.FailureRate = 0.02
		p := NewBankTransferProcessor(cfg)
		p.rand = func() float64 { return 0.001 }

		result := p.ExecutePayment(context.Background(), validAccount(), 500.0)
		failed, ok := result.(entities.Failed)
		if !ok || failed.ErrorCode != entities.ErrCodeBankNetworkError {
			t.Fatalf("expected BANK_NETWORK_ERROR, got %#v", result)
		}
	})

	t.Run("funds check wins over network error", func(t *testing.T) {
		cfg := bankTransferTestConfig()
		cfg.FailureRate = 1.0
		p := NewBankTransferProcessor(cfg)
		p.rand = func() float64 { return 0.0 }

		account := validAccount()
		account.Balance = 1

		result := p.ExecutePayment(context.Background(), account, 500.0)
		failed, ok := result.(entities.Failed)
		if !ok || failed.ErrorCode != entities.ErrCodeInsufficientFunds {
			t.Fatalf("expected INSUFFICIENT_FUNDS before NETWORK_ERROR, got %#v", result)
		}
	})

	t.Run("unsupported method", func(t *testing.T) {
		p := NewBankTransferProcessor(bankTransferTestConfig())

		result := p.ExecutePayment(context.Background(), validCard(), 500.0)
		failed, ok := result.(entities.Failed)
		if !ok || failed.ErrorCode != entities.ErrCodeUnsupportedMethod {
			t.Fatalf("expected UNSUPPORTED_METHOD, got %#v", result)
		}
	})
}

func TestBankTransferProcessor_CalculateTotal(t *testing.T) {
	p := NewBankTransferProcessor(bankTransferTestConfig())

	if got := p.CalculateTotal(1000.0); got != 1010.0 {
		t.Fatalf("expected total 1010.00, got %.2f", got)
	}
}
