package interfaces

import "payflow/internal/domain/entities"

// IAuditor is the sink every processing attempt and outcome is forwarded to.
// Auditing is fire-and-forget: implementations must not fail the payment path.
type IAuditor interface {
	AuditPaymentAttempt(method entities.PaymentMethod, amount float64)
	AuditPaymentResult(result entities.PaymentResult)
	AuditSecurityEvent(event string, details string)
}
