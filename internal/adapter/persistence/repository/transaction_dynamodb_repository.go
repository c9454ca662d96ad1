package repository

import (
	"context"
	"time"

	"payflow/internal/domain/entities"
	"payflow/internal/usecase/interfaces"
	"payflow/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsMethodIDIndex    = "method_id-index"
)

type transactionItem struct {
	TransactionID string  `dynamodbav:"transaction_id"`
	MethodID      string  `dynamodbav:"method_id"`
	MethodType    string  `dynamodbav:"method_type"`
	Amount        float64 `dynamodbav:"amount"`
	Fee           float64 `dynamodbav:"fee,omitempty"`
	Total         float64 `dynamodbav:"total,omitempty"`
	Status        string  `dynamodbav:"status"`
	ErrorCode     string  `dynamodbav:"error_code,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

// TransactionDynamoRepository persists TransactionRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: transaction_id (string)
//   - GSI: method_id-index (PK: method_id)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: pkg.GetenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, rec entities.TransactionRecord) (entities.TransactionRecord, error) {
	it := toTransactionItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TransactionRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#tid)"),
		ExpressionAttributeNames: map[string]string{
			"#tid": "transaction_id",
		},
	})
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	return rec, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, transactionID string) (entities.TransactionRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.TransactionRecord{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TransactionRecord{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByMethodID(ctx context.Context, methodID string) ([]entities.TransactionRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsMethodIDIndex),
		KeyConditionExpression: aws.String("method_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: methodID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.TransactionRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromTransactionItem(it))
	}
	return records, nil
}

func toTransactionItem(rec entities.TransactionRecord) transactionItem {
	return transactionItem{
		TransactionID: rec.TransactionID,
		MethodID:      rec.MethodID,
		MethodType:    string(rec.MethodType),
		Amount:        rec.Amount,
		Fee:           rec.Fee,
		Total:         rec.Total,
		Status:        string(rec.Status),
		ErrorCode:     rec.ErrorCode,
		CreatedAt:     rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.TransactionRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.TransactionRecord{
		TransactionID: it.TransactionID,
		MethodID:      it.MethodID,
		MethodType:    entities.MethodType(it.MethodType),
		Amount:        it.Amount,
		Fee:           it.Fee,
		Total:         it.Total,
		Status:        entities.ResultKind(it.Status),
		ErrorCode:     it.ErrorCode,
		CreatedAt:     createdAt,
	}
}
