package request

import (
	"errors"
	"strings"

	"payflow/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrUnknownMethodType = errors.New("unknown payment method type")
)

// PaymentMethodRequest is the wire shape of a payment instrument. The "type"
// tag selects the variant; only the fields for that variant are read.
type PaymentMethodRequest struct {
	Type string `json:"type" binding:"required"`
	ID   string `json:"id"`

	// credit_card
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CardType    string `json:"card_type"`
	HolderName  string `json:"holder_name"`

	// bank_account
	AccountNumber string  `json:"account_number"`
	RoutingNumber string  `json:"routing_number"`
	AccountType   string  `json:"account_type"`
	BankName      string  `json:"bank_name"`
	Balance       float64 `json:"balance"`

	// digital_wallet
	WalletType string `json:"wallet_type"`
	Email      string `json:"email"`
	Currency   string `json:"currency"`

	// Active defaults to true when omitted.
	Active *bool `json:"active"`
}

// ToEntity maps the wire shape onto the matching domain variant. A missing id
// gets a generated one; callers that need correlation should supply their own.
func (r PaymentMethodRequest) ToEntity() (entities.PaymentMethod, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		id = uuid.NewString()
	}
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	switch entities.MethodType(strings.TrimSpace(r.Type)) {
	case entities.MethodTypeCreditCard:
		return entities.CreditCard{
			ID:          id,
			CardNumber:  strings.TrimSpace(r.CardNumber),
			ExpiryMonth: r.ExpiryMonth,
			ExpiryYear:  r.ExpiryYear,
			CardType:    entities.CardType(strings.ToUpper(strings.TrimSpace(r.CardType))),
			HolderName:  strings.TrimSpace(r.HolderName),
			Active:      active,
		}, nil
	case entities.MethodTypeBankAccount:
		return entities.BankAccount{
			ID:            id,
			AccountNumber: strings.TrimSpace(r.AccountNumber),
			RoutingNumber: strings.TrimSpace(r.RoutingNumber),
			AccountType:   entities.AccountType(strings.ToUpper(strings.TrimSpace(r.AccountType))),
			BankName:      strings.TrimSpace(r.BankName),
			Balance:       r.Balance,
			Active:        active,
		}, nil
	case entities.MethodTypeDigitalWallet:
		return entities.DigitalWallet{
			ID:         id,
			WalletType: entities.WalletType(strings.ToUpper(strings.TrimSpace(r.WalletType))),
			Email:      strings.TrimSpace(r.Email),
			Balance:    r.Balance,
			Currency:   strings.ToUpper(strings.TrimSpace(r.Currency)),
			Active:     active,
		}, nil
	default:
		return nil, ErrUnknownMethodType
	}
}

// PaymentCreateRequest is the payload for the single-payment route.
type PaymentCreateRequest struct {
	Method PaymentMethodRequest `json:"method" binding:"required"`
	Amount float64              `json:"amount" binding:"required"`
}

// BatchPaymentRequest is the payload for the batch route. Results come back
// in the same order as Payments.
type BatchPaymentRequest struct {
	Payments []PaymentCreateRequest `json:"payments" binding:"required"`
}
