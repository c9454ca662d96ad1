package handlers

import (
	"errors"
	"log"
	"net/http"

	request "payflow/internal/adapter/http/dto/request"
	response "payflow/internal/adapter/http/dto/response"
	"payflow/internal/domain/entities"
	"payflow/internal/usecase"
	"payflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for payment processing and transaction
// lookups.
//
// Domain failures arrive as entities.Failed values, not Go errors; the handler
// only maps them to a status code. Go errors only occur on the lookup paths.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment processes a single payment.
//
// @Summary      Process a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body  request.PaymentCreateRequest  true  "payment"
// @Success      200  {object}  response.PaymentResponse
// @Success      202  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	method, err := payload.Method.ToEntity()
	if err != nil {
		log.Printf("[payment][handler] invalid method payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] process start method_type=%s method_id=%s amount=%.2f", method.MethodType(), method.MethodID(), payload.Amount)
	result := h.usecase.ProcessPayment(c.Request.Context(), method, payload.Amount)
	writePaymentResult(c, result)
}

// ProcessBatch processes a list of payments concurrently; the response list
// keeps the input order.
//
// @Summary      Process a batch of payments
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        batch  body  request.BatchPaymentRequest  true  "batch"
// @Success      200  {array}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /payments/batch [post]
func (h *PaymentHandler) ProcessBatch(c *gin.Context) {
	var payload request.BatchPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	if len(payload.Payments) == 0 {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("EMPTY_BATCH", "Batch must contain at least one payment", http.StatusBadRequest).ToHTTPError())
		return
	}

	requests := make([]usecase.PaymentRequest, 0, len(payload.Payments))
	for _, item := range payload.Payments {
		method, err := item.Method.ToEntity()
		if err != nil {
			c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
			return
		}
		requests = append(requests, usecase.PaymentRequest{Method: method, Amount: item.Amount})
	}

	log.Printf("[payment][handler] batch start size=%d", len(requests))
	results := h.usecase.ProcessBatchPayments(c.Request.Context(), requests)
	c.JSON(http.StatusOK, response.FromPaymentResults(results))
}

// GetTransaction returns a persisted transaction record.
//
// @Summary      Get a transaction by id
// @Tags         payments
// @Produce      json
// @Param        transaction_id  path  string  true  "transaction id"
// @Success      200  {object}  response.TransactionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{transaction_id} [get]
func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	rec, err := h.usecase.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactionRecord(rec))
}

// ListTransactionsByMethod returns the persisted records for one instrument.
//
// @Summary      List transactions for a payment method
// @Tags         payments
// @Produce      json
// @Param        method_id  path  string  true  "method id"
// @Success      200  {array}  response.TransactionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /methods/{method_id}/payments [get]
func (h *PaymentHandler) ListTransactionsByMethod(c *gin.Context) {
	methodID := c.Param("method_id")

	records, err := h.usecase.ListTransactionsByMethodID(c.Request.Context(), methodID)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactionRecords(records))
}

func writePaymentResult(c *gin.Context, result entities.PaymentResult) {
	body := response.FromPaymentResult(result)
	switch r := result.(type) {
	case entities.Success:
		log.Printf("[payment][handler] process success tx=%s total=%.2f", r.TransactionID, r.Total)
		c.JSON(http.StatusOK, body)
	case entities.Pending:
		log.Printf("[payment][handler] process pending tx=%s", r.TransactionID)
		c.JSON(http.StatusAccepted, body)
	case entities.Failed:
		log.Printf("[payment][handler] process failed code=%s msg=%q", r.ErrorCode, r.ErrorMessage)
		c.JSON(failedHTTPStatus(r.ErrorCode), body)
	default:
		c.JSON(http.StatusOK, body)
	}
}

func failedHTTPStatus(errorCode string) int {
	switch errorCode {
	case entities.ErrCodeInvalidAmount,
		entities.ErrCodeAmountTooLarge,
		entities.ErrCodeInvalidCardNumber,
		entities.ErrCodeInvalidRoutingNumber,
		entities.ErrCodeInvalidEmail,
		entities.ErrCodeUnsupportedMethod:
		return http.StatusBadRequest
	case entities.ErrCodeInsufficientFunds,
		entities.ErrCodeInsufficientWalletBalance:
		return http.StatusPaymentRequired
	case entities.ErrCodeInactiveMethod,
		entities.ErrCodeCardExpired,
		entities.ErrCodeWalletLimitExceeded,
		entities.ErrCodeAmountExceedsLimit:
		return http.StatusUnprocessableEntity
	case entities.ErrCodeProcessorDisabled:
		return http.StatusServiceUnavailable
	case entities.ErrCodeNetworkError,
		entities.ErrCodeBankNetworkError:
		return http.StatusBadGateway
	default:
		// NO_PROCESSOR, PROCESSING_ERROR and anything unrecognized.
		return http.StatusInternalServerError
	}
}

func mapTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransactionID), errors.Is(err, usecase.ErrInvalidMethodID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
