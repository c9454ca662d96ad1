package entities

// ResultKind tags each PaymentResult variant.

type ResultKind string

const (
	ResultKindSuccess   ResultKind = "success"
	ResultKindFailed    ResultKind = "failed"
	ResultKindPending   ResultKind = "pending"
	ResultKindCancelled ResultKind = "cancelled"
)

// Error codes surfaced through Failed.ErrorCode. Domain failures are always
// returned as values, never as Go errors or panics.
const (
	ErrCodeInvalidAmount             = "INVALID_AMOUNT"
	ErrCodeAmountTooLarge            = "AMOUNT_TOO_LARGE"
	ErrCodeAmountExceedsLimit        = "AMOUNT_EXCEEDS_LIMIT"
	ErrCodeInactiveMethod            = "INACTIVE_METHOD"
	ErrCodeCardExpired               = "CARD_EXPIRED"
	ErrCodeInvalidCardNumber         = "INVALID_CARD_NUMBER"
	ErrCodeInsufficientFunds         = "INSUFFICIENT_FUNDS"
	ErrCodeInvalidRoutingNumber      = "INVALID_ROUTING_NUMBER"
	ErrCodeInsufficientWalletBalance = "INSUFFICIENT_WALLET_BALANCE"
	ErrCodeInvalidEmail              = "INVALID_EMAIL"
	ErrCodeWalletLimitExceeded       = "WALLET_LIMIT_EXCEEDED"
	ErrCodeProcessorDisabled         = "PROCESSOR_DISABLED"
	ErrCodeNetworkError              = "NETWORK_ERROR"
	ErrCodeBankNetworkError          = "BANK_NETWORK_ERROR"
	ErrCodeNoProcessor               = "NO_PROCESSOR"
	ErrCodeUnsupportedMethod         = "UNSUPPORTED_METHOD"
	ErrCodeProcessingError           = "PROCESSING_ERROR"
)

// PaymentResult is the closed set of processing outcomes. Results are created
// once per attempt, immutable, and returned synchronously to the caller.

type PaymentResult interface {
	Kind() ResultKind
}

type Success struct {
	TransactionID string
	Amount        float64
	Fee           float64
	Total         float64
	Method        PaymentMethod
}

func (Success) Kind() ResultKind { return ResultKindSuccess }

// NewSuccess derives Total from Amount and Fee so the Total = Amount + Fee
// invariant cannot drift.
func NewSuccess(transactionID string, amount, fee float64, method PaymentMethod) Success {
	return Success{
		TransactionID: transactionID,
		Amount:        amount,
		Fee:           fee,
		Total:         amount + fee,
		Method:        method,
	}
}

type Failed struct {
	ErrorCode    string
	ErrorMessage string
	Method       PaymentMethod
	Amount       float64
}

func (Failed) Kind() ResultKind { return ResultKindFailed }

type Pending struct {
	TransactionID             string
	Amount                    float64
	Method                    PaymentMethod
	EstimatedCompletionMillis int64
	StatusCheckURL            string
}

func (Pending) Kind() ResultKind { return ResultKindPending }

type Cancelled struct {
	Reason string
	Amount float64
}

func (Cancelled) Kind() ResultKind { return ResultKindCancelled }
