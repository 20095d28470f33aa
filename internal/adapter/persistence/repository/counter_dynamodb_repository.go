package repository

import (
	"context"
	"errors"
	"strconv"

	"cercovibrados/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// InvoiceCounterDynamoRepository keeps one atomic sequence document per
// year (id "invoice-<year>", attribute seq). The ADD update is what makes
// concurrent invoice creation allocate distinct numbers.
//
// Table requirements:
//   - PK: id (string)
type InvoiceCounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceCounterRepository = (*InvoiceCounterDynamoRepository)(nil)

func NewInvoiceCounterDynamoRepository(ddb *dynamodb.Client) *InvoiceCounterDynamoRepository {
	return &InvoiceCounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *InvoiceCounterDynamoRepository) Increment(ctx context.Context, year int) (int, bool, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: counterID(year)},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":  "id",
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return 0, false, nil
		}
		return 0, false, err
	}

	seqAttr, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, false, errors.New("counter returned no seq attribute")
	}
	seq, err := strconv.Atoi(seqAttr.Value)
	if err != nil {
		return 0, false, err
	}
	return seq, true, nil
}

func (r *InvoiceCounterDynamoRepository) Initialize(ctx context.Context, year, start int) (bool, error) {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"id":  &types.AttributeValueMemberS{Value: counterID(year)},
			"seq": &types.AttributeValueMemberN{Value: strconv.Itoa(start)},
		},
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func counterID(year int) string {
	return "invoice-" + strconv.Itoa(year)
}
