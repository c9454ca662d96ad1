package routes

import (
	"log"
	_ "payflow/docs" // This will be auto-generated
	"payflow/internal/adapter/http/handlers"
	"payflow/internal/adapter/messaging"
	repository2 "payflow/internal/adapter/persistence/repository"
	"payflow/internal/config"
	"payflow/internal/domain/entities"
	"payflow/internal/infrastructure/audit"
	"payflow/internal/infrastructure/database"
	"payflow/internal/infrastructure/payments"
	"payflow/internal/usecase"
	"payflow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()
	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)

	processors := map[entities.MethodType]interfaces.IPaymentProcessor{
		entities.MethodTypeCreditCard:    payments.NewCreditCardProcessor(cfg.CreditCard),
		entities.MethodTypeBankAccount:   payments.NewBankTransferProcessor(cfg.BankTransfer),
		entities.MethodTypeDigitalWallet: payments.NewDigitalWalletProcessor(cfg.DigitalWallet),
	}

	var complianceAuditor *audit.ComplianceAuditor
	var auditor interfaces.IAuditor
	switch cfg.AuditMode {
	case config.AuditModeCompliance:
		complianceAuditor = audit.NewComplianceAuditor()
		auditor = complianceAuditor
	default:
		auditor = audit.NewLogAuditor()
	}
	log.Printf("[routes] audit mode=%s", cfg.AuditMode)

	if cfg.RabbitMQURL != "" {
		publisher, err := messaging.NewAuditPublisher(cfg.RabbitMQURL, auditor)
		if err != nil {
			log.Printf("RabbitMQ audit publisher not configured: %v", err)
		} else {
			auditor = publisher
		}
	}

	paymentUseCase := usecase.NewPaymentUseCase(processors, auditor, transactionRepo, cfg.MaxPaymentAmount)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)

	if complianceAuditor != nil {
		addComplianceRoutes(v1, handlers.NewComplianceHandler(complianceAuditor))
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
