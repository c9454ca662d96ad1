package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// ProcessorConfig is the per-instrument tuning block.
//
// DelayMillis and FailureRate drive the simulated provider behavior; both are
// zeroed in tests for determinism.

type ProcessorConfig struct {
	Enabled     bool
	FeeRate     float64
	MaxAmount   float64
	DelayMillis int
	FailureRate float64
}

// RetryConfig is recognized configuration that no processor consults yet.
// Retries are not implemented; the fields exist so operators can pre-provision
// them without a config format change.

type RetryConfig struct {
	MaxAttempts int
	DelayMillis int
}

const (
	AuditModeLog        = "log"
	AuditModeCompliance = "compliance"
)

// Config stores all configuration for the payment service. Every field is
// read explicitly from viper by its env key; nothing is unmarshalled by tag.
type Config struct {
	ServerPort       string
	MaxPaymentAmount float64
	AuditMode        string
	RabbitMQURL      string

	CreditCard    ProcessorConfig
	BankTransfer  ProcessorConfig
	DigitalWallet ProcessorConfig

	Retry RetryConfig
}

// LoadConfig reads configuration from environment variables or a .env file.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("MAX_PAYMENT_AMOUNT", 100000.0)
	viper.SetDefault("AUDIT_MODE", AuditModeLog)

	viper.SetDefault("CREDIT_CARD_ENABLED", true)
	viper.SetDefault("CREDIT_CARD_FEE_RATE", 0.029)
	viper.SetDefault("CREDIT_CARD_MAX_AMOUNT", 50000.0)
	viper.SetDefault("CREDIT_CARD_DELAY_MS", 100)
	viper.SetDefault("CREDIT_CARD_FAILURE_RATE", 0.05)

	viper.SetDefault("BANK_TRANSFER_ENABLED", true)
	viper.SetDefault("BANK_TRANSFER_FEE_RATE", 0.01)
	viper.SetDefault("BANK_TRANSFER_MAX_AMOUNT", 100000.0)
	viper.SetDefault("BANK_TRANSFER_DELAY_MS", 150)
	viper.SetDefault("BANK_TRANSFER_FAILURE_RATE", 0.02)

	viper.SetDefault("DIGITAL_WALLET_ENABLED", true)
	viper.SetDefault("DIGITAL_WALLET_FEE_RATE", 0.02)
	viper.SetDefault("DIGITAL_WALLET_MAX_AMOUNT", 25000.0)
	viper.SetDefault("DIGITAL_WALLET_DELAY_MS", 80)
	viper.SetDefault("DIGITAL_WALLET_FAILURE_RATE", 0.0)

	viper.SetDefault("RETRY_MAX_ATTEMPTS", 3)
	viper.SetDefault("RETRY_DELAY_MS", 500)

	// Bind envs explicitly so containers pick them up reliably
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("MAX_PAYMENT_AMOUNT")
	_ = viper.BindEnv("AUDIT_MODE")
	_ = viper.BindEnv("RABBITMQ_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Error reading config file: %s", err)
		}
	}

	cfg := &Config{
		ServerPort:       viper.GetString("SERVER_PORT"),
		MaxPaymentAmount: viper.GetFloat64("MAX_PAYMENT_AMOUNT"),
		AuditMode:        strings.ToLower(strings.TrimSpace(viper.GetString("AUDIT_MODE"))),
		RabbitMQURL:      viper.GetString("RABBITMQ_URL"),
		CreditCard:       loadProcessorConfig("CREDIT_CARD"),
		BankTransfer:     loadProcessorConfig("BANK_TRANSFER"),
		DigitalWallet:    loadProcessorConfig("DIGITAL_WALLET"),
		Retry: RetryConfig{
			MaxAttempts: viper.GetInt("RETRY_MAX_ATTEMPTS"),
			DelayMillis: viper.GetInt("RETRY_DELAY_MS"),
		},
	}

	if cfg.AuditMode != AuditModeLog && cfg.AuditMode != AuditModeCompliance {
		log.Printf("Warning: unknown AUDIT_MODE %q, falling back to %q", cfg.AuditMode, AuditModeLog)
		cfg.AuditMode = AuditModeLog
	}

	return cfg, nil
}

func loadProcessorConfig(prefix string) ProcessorConfig {
	return ProcessorConfig{
		Enabled:     viper.GetBool(prefix + "_ENABLED"),
		FeeRate:     viper.GetFloat64(prefix + "_FEE_RATE"),
		MaxAmount:   viper.GetFloat64(prefix + "_MAX_AMOUNT"),
		DelayMillis: viper.GetInt(prefix + "_DELAY_MS"),
		FailureRate: viper.GetFloat64(prefix + "_FAILURE_RATE"),
	}
}
