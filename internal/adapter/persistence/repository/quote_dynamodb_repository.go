package repository

import (
	"context"
	"sort"

	"cercovibrados/internal/domain/entities"
	"cercovibrados/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	RUT          string `dynamodbav:"rut"`
	Phone        string `dynamodbav:"phone"`
	Address      string `dynamodbav:"address"`
	Email        string `dynamodbav:"email"`
	FenceHeight  string `dynamodbav:"fence_height"`
	FenceType    string `dynamodbav:"fence_type"`
	LinearMeters string `dynamodbav:"linear_meters"`
	Message      string `dynamodbav:"message,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	quotes := make([]entities.Quote, 0)

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:           q.ID,
		Name:         q.Name,
		RUT:          q.RUT,
		Phone:        q.Phone,
		Address:      q.Address,
		Email:        q.Email,
		FenceHeight:  q.FenceHeight,
		FenceType:    q.FenceType,
		LinearMeters: q.LinearMeters,
		Message:      q.Message,
		CreatedAt:    formatTime(q.CreatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:           it.ID,
		Name:         it.Name,
		RUT:          it.RUT,
		Phone:        it.Phone,
		Address:      it.Address,
		Email:        it.Email,
		FenceHeight:  it.FenceHeight,
		FenceType:    it.FenceType,
		LinearMeters: it.LinearMeters,
		Message:      it.Message,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
