package response

import (
	"time"

	"payflow/internal/domain/entities"
)

// PaymentResponse is the wire shape of a PaymentResult. The status field tells
// the caller which of the optional fields are meaningful.
type PaymentResponse struct {
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Amount        float64 `json:"amount"`
	Fee           float64 `json:"fee,omitempty"`
	Total         float64 `json:"total,omitempty"`

	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`

	EstimatedCompletionMillis int64  `json:"estimated_completion_ms,omitempty"`
	StatusCheckURL            string `json:"status_check_url,omitempty"`

	Reason string `json:"reason,omitempty"`

	MethodType string `json:"method_type,omitempty"`
	MethodID   string `json:"method_id,omitempty"`
}

func FromPaymentResult(result entities.PaymentResult) PaymentResponse {
	switch r := result.(type) {
	case entities.Success:
		res := PaymentResponse{
			Status:        string(r.Kind()),
			TransactionID: r.TransactionID,
			Amount:        r.Amount,
			Fee:           r.Fee,
			Total:         r.Total,
		}
		fillMethod(&res, r.Method)
		return res
	case entities.Pending:
		res := PaymentResponse{
			Status:                    string(r.Kind()),
			TransactionID:             r.TransactionID,
			Amount:                    r.Amount,
			EstimatedCompletionMillis: r.EstimatedCompletionMillis,
			StatusCheckURL:            r.StatusCheckURL,
		}
		fillMethod(&res, r.Method)
		return res
	case entities.Failed:
		res := PaymentResponse{
			Status:       string(r.Kind()),
			Amount:       r.Amount,
			ErrorCode:    r.ErrorCode,
			ErrorMessage: r.ErrorMessage,
		}
		fillMethod(&res, r.Method)
		return res
	case entities.Cancelled:
		return PaymentResponse{
			Status: string(r.Kind()),
			Amount: r.Amount,
			Reason: r.Reason,
		}
	default:
		return PaymentResponse{Status: string(result.Kind())}
	}
}

func FromPaymentResults(results []entities.PaymentResult) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(results))
	for _, r := range results {
		out = append(out, FromPaymentResult(r))
	}
	return out
}

func fillMethod(res *PaymentResponse, method entities.PaymentMethod) {
	if method == nil {
		return
	}
	res.MethodType = string(method.MethodType())
	res.MethodID = method.MethodID()
}

// TransactionResponse is the wire shape of a persisted TransactionRecord.
type TransactionResponse struct {
	TransactionID string    `json:"transaction_id"`
	MethodID      string    `json:"method_id"`
	MethodType    string    `json:"method_type"`
	Amount        float64   `json:"amount"`
	Fee           float64   `json:"fee,omitempty"`
	Total         float64   `json:"total,omitempty"`
	Status        string    `json:"status"`
	ErrorCode     string    `json:"error_code,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromTransactionRecord(rec entities.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		TransactionID: rec.TransactionID,
		MethodID:      rec.MethodID,
		MethodType:    string(rec.MethodType),
		Amount:        rec.Amount,
		Fee:           rec.Fee,
		Total:         rec.Total,
		Status:        string(rec.Status),
		ErrorCode:     rec.ErrorCode,
		CreatedAt:     rec.CreatedAt,
	}
}

func FromTransactionRecords(recs []entities.TransactionRecord) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromTransactionRecord(rec))
	}
	return out
}

// ComplianceEventResponse is the wire shape of an in-memory compliance event.
type ComplianceEventResponse struct {
	Type       string    `json:"type"`
	Amount     float64   `json:"amount"`
	Flags      []string  `json:"flags,omitempty"`
	MethodType string    `json:"method_type,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func FromComplianceEvents(events []entities.ComplianceEvent) []ComplianceEventResponse {
	out := make([]ComplianceEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ComplianceEventResponse{
			Type:       e.Type,
			Amount:     e.Amount,
			Flags:      e.Flags,
			MethodType: string(e.MethodType),
			Timestamp:  e.Timestamp,
		})
	}
	return out
}
