package request

import (
	"errors"
	"testing"

	"payflow/internal/domain/entities"
)

func TestPaymentMethodRequest_ToEntity(t *testing.T) {
	t.Run("credit card", func(t *testing.T) {
		req := PaymentMethodRequest{
			Type:        "credit_card",
			ID:          "card-1",
			CardNumber:  " 4532123456789012 ",
			ExpiryMonth: 12,
			ExpiryYear:  2099,
			CardType:    "visa",
			HolderName:  "Jane Roe",
		}

		method, err := req.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		card, ok := method.(entities.CreditCard)
		if !ok {
			t.Fatalf("expected CreditCard, got %#v", method)
		}
		if card.CardNumber != "4532123456789012" {
			t.Fatalf("card number not trimmed: %q", card.CardNumber)
		}
		if card.CardType != entities.CardTypeVisa {
			t.Fatalf("card type not normalized: %q", card.CardType)
		}
		if !card.Active {
			t.Fatalf("expected active to default to true")
		}
	})

	t.Run("bank account", func(t *testing.T) {
		req := PaymentMethodRequest{
			Type:          "bank_account",
			ID:            "acct-1",
			AccountNumber: "000123456789",
			RoutingNumber: "021000021",
			AccountType:   "checking",
			BankName:      "First Example",
			Balance:       5000,
		}

		method, err := req.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		account, ok := method.(entities.BankAccount)
		if !ok {
			t.Fatalf("expected BankAccount, got %#v", method)
		}
		if account.AccountType != entities.AccountTypeChecking {
			t.Fatalf("account type not normalized: %q", account.AccountType)
		}
		if account.Balance != 5000 {
			t.Fatalf("unexpected balance %.2f", account.Balance)
		}
	})

	t.Run("digital wallet", func(t *testing.T) {
		req := PaymentMethodRequest{
			Type:       "digital_wallet",
			ID:         "w-1",
			WalletType: "paypal",
			Email:      "payer@example.com",
			Balance:    300,
			Currency:   "usd",
		}

		method, err := req.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wallet, ok := method.(entities.DigitalWallet)
		if !ok {
			t.Fatalf("expected DigitalWallet, got %#v", method)
		}
		if wallet.WalletType != entities.WalletTypePaypal {
			t.Fatalf("wallet type not normalized: %q", wallet.WalletType)
		}
		if wallet.Currency != "USD" {
			t.Fatalf("currency not normalized: %q", wallet.Currency)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		req := PaymentMethodRequest{Type: "gift_card"}
		if _, err := req.ToEntity(); !errors.Is(err, ErrUnknownMethodType) {
			t.Fatalf("expected ErrUnknownMethodType, got %v", err)
		}
	})

	t.Run("missing id gets generated", func(t *testing.T) {
		req := PaymentMethodRequest{Type: "credit_card", CardNumber: "4532123456789012"}
		method, err := req.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if method.MethodID() == "" {
			t.Fatalf("expected a generated id")
		}
	})

	t.Run("explicit inactive flag is kept", func(t *testing.T) {
		inactive := false
		req := PaymentMethodRequest{Type: "credit_card", ID: "card-1", Active: &inactive}
		method, err := req.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if method.IsActive() {
			t.Fatalf("expected inactive method")
		}
	})
}
