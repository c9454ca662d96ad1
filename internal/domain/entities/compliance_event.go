package entities

import "time"

// Compliance event types appended by the compliance auditor.
const (
	ComplianceEventPaymentAttempt = "payment_attempt"
	ComplianceEventPaymentResult  = "payment_result"
	ComplianceEventSecurity       = "security_event"
)

// Heuristic flags attached by the compliance auditor. Straight-line boolean
// rules, not a rule engine.
const (
	ComplianceFlagLargeTransaction = "LARGE_TRANSACTION"
	ComplianceFlagRiskyWalletType  = "RISKY_WALLET_TYPE"
	ComplianceFlagPrepaidCard      = "PREPAID_CARD"
)

// ComplianceEvent is an in-memory audit record. Events are append-only and
// live for the process lifetime only; they reset on restart.

type ComplianceEvent struct {
	Type       string
	Amount     float64
	Flags      []string
	MethodType MethodType
	Timestamp  time.Time
}
