package repository

import (
	"context"

	"cercovibrados/internal/domain/entities"
	"cercovibrados/internal/domain/invoicenum"
	"cercovibrados/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesNumberIndex      = "invoice_number-index"
)

type invoiceLineItem struct {
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
}

type invoiceItemRecord struct {
	ID            string            `dynamodbav:"id"`
	FirstName     string            `dynamodbav:"first_name"`
	LastName      string            `dynamodbav:"last_name"`
	CompanyName   string            `dynamodbav:"company_name,omitempty"`
	Country       string            `dynamodbav:"country"`
	StreetAddress string            `dynamodbav:"street_address"`
	City          string            `dynamodbav:"city"`
	Region        string            `dynamodbav:"region"`
	PostalCode    string            `dynamodbav:"postal_code,omitempty"`
	Phone         string            `dynamodbav:"phone"`
	Email         string            `dynamodbav:"email"`
	OrderNotes    string            `dynamodbav:"order_notes,omitempty"`
	InvoiceNumber string            `dynamodbav:"invoice_number"`
	Status        string            `dynamodbav:"status"`
	Items         []invoiceLineItem `dynamodbav:"items"`
	Total         string            `dynamodbav:"total"`
	Currency      string            `dynamodbav:"currency"`
	InternalNotes string            `dynamodbav:"internal_notes,omitempty"`
	CreatedBy     string            `dynamodbav:"created_by"`
	CreatedAt     string            `dynamodbav:"created_at"`
	UpdatedAt     string            `dynamodbav:"updated_at"`
	DueDate       string            `dynamodbav:"due_date"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_number-index (PK: invoice_number)
type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceRecord(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var rec invoiceItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceRecord(rec), nil
}

func (r *InvoiceDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesNumberIndex),
		KeyConditionExpression: aws.String("invoice_number = :number"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": &types.AttributeValueMemberS{Value: number},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.Invoice{}, nil
	}

	var rec invoiceItemRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceRecord(rec), nil
}

func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	invoices := make([]entities.Invoice, 0)

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var rec invoiceItemRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			invoices = append(invoices, fromInvoiceRecord(rec))
		}
	}
	return invoices, nil
}

// ListNumbersByYear projects just the invoice numbers beginning with the
// year prefix, used to seed the per-year counter on first allocation.
func (r *InvoiceDynamoRepository) ListNumbersByYear(ctx context.Context, year int) ([]string, error) {
	numbers := make([]string, 0)

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		FilterExpression:     aws.String("begins_with(#number, :prefix)"),
		ProjectionExpression: aws.String("#number"),
		ExpressionAttributeNames: map[string]string{
			"#number": "invoice_number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: invoicenum.Prefix(year)},
		},
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var rec struct {
				InvoiceNumber string `dynamodbav:"invoice_number"`
			}
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			numbers = append(numbers, rec.InvoiceNumber)
		}
	}
	return numbers, nil
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceRecord(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toInvoiceRecord(inv entities.Invoice) invoiceItemRecord {
	lines := make([]invoiceLineItem, len(inv.Items))
	for i, it := range inv.Items {
		lines[i] = invoiceLineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   floatToString(it.UnitPrice),
			Total:       floatToString(it.Total),
		}
	}
	return invoiceItemRecord{
		ID:            inv.ID,
		FirstName:     inv.FirstName,
		LastName:      inv.LastName,
		CompanyName:   inv.CompanyName,
		Country:       inv.Country,
		StreetAddress: inv.StreetAddress,
		City:          inv.City,
		Region:        inv.Region,
		PostalCode:    inv.PostalCode,
		Phone:         inv.Phone,
		Email:         inv.Email,
		OrderNotes:    inv.OrderNotes,
		InvoiceNumber: inv.InvoiceNumber,
		Status:        string(inv.Status),
		Items:         lines,
		Total:         floatToString(inv.Total),
		Currency:      inv.Currency,
		InternalNotes: inv.InternalNotes,
		CreatedBy:     inv.CreatedBy,
		CreatedAt:     formatTime(inv.CreatedAt),
		UpdatedAt:     formatTime(inv.UpdatedAt),
		DueDate:       formatTime(inv.DueDate),
	}
}

func fromInvoiceRecord(rec invoiceItemRecord) entities.Invoice {
	items := make([]entities.InvoiceItem, len(rec.Items))
	for i, it := range rec.Items {
		items[i] = entities.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   stringToFloat(it.UnitPrice),
			Total:       stringToFloat(it.Total),
		}
	}
	return entities.Invoice{
		ID:            rec.ID,
		FirstName:     rec.FirstName,
		LastName:      rec.LastName,
		CompanyName:   rec.CompanyName,
		Country:       rec.Country,
		StreetAddress: rec.StreetAddress,
		City:          rec.City,
		Region:        rec.Region,
		PostalCode:    rec.PostalCode,
		Phone:         rec.Phone,
		Email:         rec.Email,
		OrderNotes:    rec.OrderNotes,
		InvoiceNumber: rec.InvoiceNumber,
		Status:        entities.InvoiceStatus(rec.Status),
		Items:         items,
		Total:         stringToFloat(rec.Total),
		Currency:      rec.Currency,
		InternalNotes: rec.InternalNotes,
		CreatedBy:     rec.CreatedBy,
		CreatedAt:     parseTime(rec.CreatedAt),
		UpdatedAt:     parseTime(rec.UpdatedAt),
		DueDate:       parseTime(rec.DueDate),
	}
}
