package entities

import "time"

// TransactionRecord is the persisted trace of a processing attempt.
//
// Storage model (DynamoDB):
//   - PK: transaction_id
//   - GSI1 (method_id-index): method_id
//
// Records are written best-effort after processing; a storage failure never
// fails the payment itself.

type TransactionRecord struct {
	TransactionID string
	MethodID      string
	MethodType    MethodType
	Amount        float64
	Fee           float64
	Total         float64
	Status        ResultKind
	ErrorCode     string
	CreatedAt     time.Time
}
