package interfaces

import (
	"context"

	"payflow/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for TransactionRecord.

type ITransactionRepository interface {
	Create(ctx context.Context, rec entities.TransactionRecord) (entities.TransactionRecord, error)
	GetByID(ctx context.Context, transactionID string) (entities.TransactionRecord, error)
	ListByMethodID(ctx context.Context, methodID string) ([]entities.TransactionRecord, error)
}
