package audit

import (
	"sync"
	"time"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"
)

// Amounts above this get the LARGE_TRANSACTION flag.
const largeTransactionThreshold = 10000.0

// ComplianceAuditor logs like LogAuditor and additionally keeps an in-memory
// event trail with heuristic flags. The trail is process-local and resets on
// restart; batch processing appends concurrently, so the list is mutex-guarded.

type ComplianceAuditor struct {
	LogAuditor

	mu     sync.Mutex
	events []entities.ComplianceEvent
	now    func() time.Time
}

var _ interfaces.IAuditor = (*ComplianceAuditor)(nil)

func NewComplianceAuditor() *ComplianceAuditor {
	return &ComplianceAuditor{now: time.Now}
}

func (a *ComplianceAuditor) AuditPaymentAttempt(method entities.PaymentMethod, amount float64) {
	a.LogAuditor.AuditPaymentAttempt(method, amount)
	a.append(entities.ComplianceEvent{
		Type:       entities.ComplianceEventPaymentAttempt,
		Amount:     amount,
		Flags:      complianceFlags(method, amount),
		MethodType: methodType(method),
		Timestamp:  a.now().UTC(),
	})
}

func (a *ComplianceAuditor) AuditPaymentResult(result entities.PaymentResult) {
	a.LogAuditor.AuditPaymentResult(result)

	var method entities.PaymentMethod
	var amount float64
	switch r := result.(type) {
	case entities.Success:
		method, amount = r.Method, r.Amount
	case entities.Pending:
		method, amount = r.Method, r.Amount
	case entities.Failed:
		method, amount = r.Method, r.Amount
	case entities.Cancelled:
		amount = r.Amount
	}

	a.append(entities.ComplianceEvent{
		Type:       entities.ComplianceEventPaymentResult,
		Amount:     amount,
		Flags:      complianceFlags(method, amount),
		MethodType: methodType(method),
		Timestamp:  a.now().UTC(),
	})
}

func (a *ComplianceAuditor) AuditSecurityEvent(event string, details string) {
	a.LogAuditor.AuditSecurityEvent(event, details)
	a.append(entities.ComplianceEvent{
		Type:      entities.ComplianceEventSecurity,
		Timestamp: a.now().UTC(),
	})
}

// Events returns a snapshot of the recorded trail.
func (a *ComplianceAuditor) Events() []entities.ComplianceEvent {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]entities.ComplianceEvent, len(a.events))
	copy(out, a.events)
	return out
}

func (a *ComplianceAuditor) append(e entities.ComplianceEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

func complianceFlags(method entities.PaymentMethod, amount float64) []string {
	var flags []string
	if amount > largeTransactionThreshold {
		flags = append(flags, entities.ComplianceFlagLargeTransaction)
	}
	switch m := method.(type) {
	case entities.DigitalWallet:
		if m.WalletType == entities.WalletTypeCrypto {
			flags = append(flags, entities.ComplianceFlagRiskyWalletType)
		}
	case entities.CreditCard:
		if m.CardType == entities.CardTypePrepaid {
			flags = append(flags, entities.ComplianceFlagPrepaidCard)
		}
	}
	return flags
}
