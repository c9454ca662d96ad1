package response

import (
	"testing"

	"payflow/internal/domain/entities"
)

func TestFromPaymentResult(t *testing.T) {
	card := entities.CreditCard{ID: "card-1", CardNumber: "4532123456789012", Active: true}

	t.Run("success", func(t *testing.T) {
		res := FromPaymentResult(entities.NewSuccess("CC-tx-1", 100, 2.9, card))
		if res.Status != "success" || res.TransactionID != "CC-tx-1" {
			t.Fatalf("unexpected response %#v", res)
		}
		if res.Total != 102.9 {
			t.Fatalf("expected total 102.9, got %.2f", res.Total)
		}
		if res.MethodType != "credit_card" || res.MethodID != "card-1" {
			t.Fatalf("method fields not filled: %#v", res)
		}
	})

	t.Run("pending", func(t *testing.T) {
		pending := entities.Pending{
			TransactionID:             "BT-tx-1",
			Amount:                    6000,
			Method:                    card,
			EstimatedCompletionMillis: 86400000,
			StatusCheckURL:            "/v1/payments/BT-tx-1",
		}
		res := FromPaymentResult(pending)
		if res.Status != "pending" || res.EstimatedCompletionMillis != 86400000 {
			t.Fatalf("unexpected response %#v", res)
		}
		if res.StatusCheckURL != "/v1/payments/BT-tx-1" {
			t.Fatalf("unexpected status check url %q", res.StatusCheckURL)
		}
	})

	t.Run("failed", func(t *testing.T) {
		failed := entities.Failed{
			ErrorCode:    entities.ErrCodeInsufficientFunds,
			ErrorMessage: "not enough",
			Method:       card,
			Amount:       100,
		}
		res := FromPaymentResult(failed)
		if res.Status != "failed" || res.ErrorCode != entities.ErrCodeInsufficientFunds {
			t.Fatalf("unexpected response %#v", res)
		}
		if res.TransactionID != "" {
			t.Fatalf("failed result must not carry a transaction id")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		res := FromPaymentResult(entities.Cancelled{Reason: "user abort", Amount: 50})
		if res.Status != "cancelled" || res.Reason != "user abort" {
			t.Fatalf("unexpected response %#v", res)
		}
	})
}

func TestFromPaymentResults_KeepsOrder(t *testing.T) {
	card := entities.CreditCard{ID: "card-1", Active: true}
	results := []entities.PaymentResult{
		entities.NewSuccess("tx-1", 10, 1, card),
		entities.Failed{ErrorCode: entities.ErrCodeInvalidAmount, Amount: -1},
	}

	out := FromPaymentResults(results)
	if len(out) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(out))
	}
	if out[0].Status != "success" || out[1].Status != "failed" {
		t.Fatalf("order not preserved: %#v", out)
	}
}
