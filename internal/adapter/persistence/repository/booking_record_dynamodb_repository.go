package repository

import (
	"context"
	"errors"
	"time"

	"smartride/internal/domain/entities"
	"smartride/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBookingRecordsTableName = "booking_records"

type bookingRecordItem struct {
	DeliveryID       string `dynamodbav:"delivery_id"`
	SessionID        string `dynamodbav:"session_id"`
	AmountTotal      int64  `dynamodbav:"amount_total"`
	Currency         string `dynamodbav:"currency"`
	PaymentReference string `dynamodbav:"payment_reference,omitempty"`
	PaymentStatus    string `dynamodbav:"payment_status"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// BookingRecordDynamoRepository persists BookingRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: delivery_id (string)
//   - GSI: session_id-index (PK: session_id)

type BookingRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRecordRepository = (*BookingRecordDynamoRepository)(nil)

func NewBookingRecordDynamoRepository(ddb *dynamodb.Client) *BookingRecordDynamoRepository {
	return &BookingRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKING_RECORDS_TABLE", defaultBookingRecordsTableName),
	}
}

func (r *BookingRecordDynamoRepository) Create(ctx context.Context, rec entities.BookingRecord) (entities.BookingRecord, error) {
	it := toBookingRecordItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BookingRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#delivery_id)"),
		ExpressionAttributeNames: map[string]string{
			"#delivery_id": "delivery_id",
		},
	})
	if err != nil {
		return entities.BookingRecord{}, err
	}
	return rec, nil
}

func (r *BookingRecordDynamoRepository) GetByDeliveryID(ctx context.Context, deliveryID string) (entities.BookingRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"delivery_id": &types.AttributeValueMemberS{Value: deliveryID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BookingRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.BookingRecord{}, nil
	}

	var it bookingRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BookingRecord{}, err
	}
	return fromBookingRecordItem(it), nil
}

func (r *BookingRecordDynamoRepository) UpdatePaymentOutcome(ctx context.Context, deliveryID string, status entities.PaymentStatus, reference string) (entities.BookingRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"delivery_id": &types.AttributeValueMemberS{Value: deliveryID},
		},
		ConditionExpression: aws.String("attribute_exists(#delivery_id)"),
		UpdateExpression:    aws.String("SET #payment_status = :payment_status, #payment_reference = :payment_reference, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payment_status":    &types.AttributeValueMemberS{Value: string(status)},
			":payment_reference": &types.AttributeValueMemberS{Value: reference},
			":updated_at":        &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#delivery_id":       "delivery_id",
			"#payment_status":    "payment_status",
			"#payment_reference": "payment_reference",
			"#updated_at":        "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BookingRecord{}, nil
		}
		return entities.BookingRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BookingRecord{}, nil
	}

	var it bookingRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BookingRecord{}, err
	}
	return fromBookingRecordItem(it), nil
}

func toBookingRecordItem(rec entities.BookingRecord) bookingRecordItem {
	return bookingRecordItem{
		DeliveryID:       rec.DeliveryID,
		SessionID:        rec.SessionID,
		AmountTotal:      rec.AmountTotal,
		Currency:         rec.Currency,
		PaymentReference: rec.PaymentReference,
		PaymentStatus:    string(rec.PaymentStatus),
		CreatedAt:        rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingRecordItem(it bookingRecordItem) entities.BookingRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.BookingRecord{
		DeliveryID:       it.DeliveryID,
		SessionID:        it.SessionID,
		AmountTotal:      it.AmountTotal,
		Currency:         it.Currency,
		PaymentReference: it.PaymentReference,
		PaymentStatus:    entities.PaymentStatus(it.PaymentStatus),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
