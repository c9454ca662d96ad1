package routes

import (
	"payflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathMethods  = "/methods"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.POST("/batch", paymentHandler.ProcessBatch)
		payments.GET("/:transaction_id", paymentHandler.GetTransaction)
	}

	methods := rg.Group(PathMethods)
	{
		methods.GET("/:method_id/payments", paymentHandler.ListTransactionsByMethod)
	}
}

func addComplianceRoutes(rg *gin.RouterGroup, complianceHandler *handlers.ComplianceHandler) {
	rg.GET("/compliance/events", complianceHandler.ListEvents)
}
