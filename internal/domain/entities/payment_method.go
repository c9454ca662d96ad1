package entities

import (
	"strings"
	"time"
)

// MethodType tags each PaymentMethod variant so processors can be selected
// without reflection.

type MethodType string

const (
	MethodTypeCreditCard    MethodType = "credit_card"
	MethodTypeBankAccount   MethodType = "bank_account"
	MethodTypeDigitalWallet MethodType = "digital_wallet"
)

type CardType string

const (
	CardTypeVisa       CardType = "VISA"
	CardTypeMastercard CardType = "MASTERCARD"
	CardTypeAmex       CardType = "AMEX"
	CardTypePrepaid    CardType = "PREPAID"
)

type AccountType string

const (
	AccountTypeChecking AccountType = "CHECKING"
	AccountTypeSavings  AccountType = "SAVINGS"
)

type WalletType string

const (
	WalletTypePaypal   WalletType = "PAYPAL"
	WalletTypeVenmo    WalletType = "VENMO"
	WalletTypeApplePay WalletType = "APPLE_PAY"
	WalletTypeCrypto   WalletType = "CRYPTO"
)

// PaymentMethod is the closed set of payment instruments accepted by the
// service. Instances are built from the API request and live for the request
// only; they are never persisted.
//
// The id is caller-supplied and assumed unique per instrument.

type PaymentMethod interface {
	MethodID() string
	MethodType() MethodType
	IsActive() bool
}

type CreditCard struct {
	ID          string
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	CardType    CardType
	HolderName  string
	Active      bool
}

func (c CreditCard) MethodID() string       { return c.ID }
func (c CreditCard) MethodType() MethodType { return MethodTypeCreditCard }
func (c CreditCard) IsActive() bool         { return c.Active }

// IsExpired reports whether the card expiry is strictly in the past relative
// to now. A card expiring in the current month is still valid.
func (c CreditCard) IsExpired(now time.Time) bool {
	if c.ExpiryYear < now.Year() {
		return true
	}
	if c.ExpiryYear == now.Year() && c.ExpiryMonth < int(now.Month()) {
		return true
	}
	return false
}

// MaskedNumber keeps only the last four digits, for logs and audit trails.
func (c CreditCard) MaskedNumber() string {
	return maskNumber(c.CardNumber)
}

type BankAccount struct {
	ID            string
	AccountNumber string
	RoutingNumber string
	AccountType   AccountType
	BankName      string
	Balance       float64
	Active        bool
}

func (b BankAccount) MethodID() string       { return b.ID }
func (b BankAccount) MethodType() MethodType { return MethodTypeBankAccount }
func (b BankAccount) IsActive() bool         { return b.Active }

func (b BankAccount) MaskedNumber() string {
	return maskNumber(b.AccountNumber)
}

type DigitalWallet struct {
	ID         string
	WalletType WalletType
	Email      string
	Balance    float64
	Currency   string
	Active     bool
}

func (w DigitalWallet) MethodID() string       { return w.ID }
func (w DigitalWallet) MethodType() MethodType { return MethodTypeDigitalWallet }
func (w DigitalWallet) IsActive() bool         { return w.Active }

func maskNumber(number string) string {
	digits := strings.TrimSpace(number)
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
