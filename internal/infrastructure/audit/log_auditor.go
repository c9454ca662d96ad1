package audit

import (
	"log"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"
)

// LogAuditor is the default audit sink: structured log lines only, no state.

type LogAuditor struct{}

var _ interfaces.IAuditor = (*LogAuditor)(nil)

func NewLogAuditor() *LogAuditor {
	return &LogAuditor{}
}

func (a *LogAuditor) AuditPaymentAttempt(method entities.PaymentMethod, amount float64) {
	log.Printf("[audit][attempt] method_type=%s method_id=%s amount=%.2f", methodType(method), methodID(method), amount)
}

func (a *LogAuditor) AuditPaymentResult(result entities.PaymentResult) {
	switch r := result.(type) {
	case entities.Success:
		log.Printf("[audit][result] status=success tx=%s amount=%.2f fee=%.2f total=%.2f", r.TransactionID, r.Amount, r.Fee, r.Total)
	case entities.Pending:
		log.Printf("[audit][result] status=pending tx=%s amount=%.2f eta_ms=%d", r.TransactionID, r.Amount, r.EstimatedCompletionMillis)
	case entities.Failed:
		log.Printf("[audit][result] status=failed code=%s amount=%.2f msg=%q", r.ErrorCode, r.Amount, r.ErrorMessage)
	case entities.Cancelled:
		log.Printf("[audit][result] status=cancelled amount=%.2f reason=%q", r.Amount, r.Reason)
	default:
		log.Printf("[audit][result] status=%s", result.Kind())
	}
}

func (a *LogAuditor) AuditSecurityEvent(event string, details string) {
	log.Printf("[audit][security] event=%s details=%q", event, details)
}

func methodType(method entities.PaymentMethod) entities.MethodType {
	if method == nil {
		return ""
	}
	return method.MethodType()
}

func methodID(method entities.PaymentMethod) string {
	if method == nil {
		return ""
	}
	return method.MethodID()
}
