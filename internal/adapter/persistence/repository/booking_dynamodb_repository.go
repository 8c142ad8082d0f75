package repository

import (
	"context"
	"errors"
	"time"

	"homeez_booking/internal/domain/entities"
	"homeez_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultBookingsTableName = "bookings"
	bookingsUserIDIndex      = "user_id-index"
)

// DynamoAPI is the subset of *dynamodb.Client used by the repository.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type addressItem struct {
	Name    string `dynamodbav:"name"`
	Line1   string `dynamodbav:"line1"`
	Line2   string `dynamodbav:"line2,omitempty"`
	City    string `dynamodbav:"city"`
	State   string `dynamodbav:"state"`
	Pincode string `dynamodbav:"pincode"`
	Phone   string `dynamodbav:"phone"`
}

type bookingItem struct {
	ID            string      `dynamodbav:"id"`
	BookingID     string      `dynamodbav:"booking_id"`
	UserID        string      `dynamodbav:"user_id"`
	ServiceID     string      `dynamodbav:"service_id"`
	OptionID      string      `dynamodbav:"option_id"`
	ProviderID    string      `dynamodbav:"provider_id"`
	Date          string      `dynamodbav:"date"`
	TimeSlot      string      `dynamodbav:"time_slot"`
	Address       addressItem `dynamodbav:"address"`
	PaymentMethod string      `dynamodbav:"payment_method"`
	PaymentID     string      `dynamodbav:"payment_id,omitempty"`
	TotalPrice    int64       `dynamodbav:"total_price"`
	Status        string      `dynamodbav:"status"`
	ConfirmedAt   string      `dynamodbav:"confirmed_at"`
	CreatedAt     string      `dynamodbav:"created_at"`
	UpdatedAt     string      `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists handed-off bookings in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type BookingDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb DynamoAPI, tableName string) *BookingDynamoRepository {
	if tableName == "" {
		tableName = DefaultBookingsTableName
	}
	return &BookingDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, interfaces.ErrBookingAlreadyExists
		}
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})

	items := make([]entities.Booking, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it bookingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromBookingItem(it))
		}
	}
	return items, nil
}

// UpdateStatus returns a zero Booking when the id does not exist.
func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	now := formatTime(r.now())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}
	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func toBookingItem(b entities.Booking) bookingItem {
	date := ""
	if !b.Date.IsZero() {
		date = b.Date.Format(dateLayout)
	}
	return bookingItem{
		ID:         b.ID,
		BookingID:  b.BookingID,
		UserID:     b.UserID,
		ServiceID:  b.ServiceID,
		OptionID:   b.OptionID,
		ProviderID: b.ProviderID,
		Date:       date,
		TimeSlot:   b.TimeSlot,
		Address: addressItem{
			Name:    b.Address.Name,
			Line1:   b.Address.Line1,
			Line2:   b.Address.Line2,
			City:    b.Address.City,
			State:   b.Address.State,
			Pincode: b.Address.Pincode,
			Phone:   b.Address.Phone,
		},
		PaymentMethod: string(b.PaymentMethod),
		PaymentID:     b.PaymentID,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		ConfirmedAt:   formatTime(b.ConfirmedAt),
		CreatedAt:     formatTime(b.CreatedAt),
		UpdatedAt:     formatTime(b.UpdatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	date, _ := time.Parse(dateLayout, it.Date)
	return entities.Booking{
		ID:        it.ID,
		PaymentID: it.PaymentID,
		ConfirmedBooking: entities.ConfirmedBooking{
			BookingID:  it.BookingID,
			UserID:     it.UserID,
			ServiceID:  it.ServiceID,
			OptionID:   it.OptionID,
			ProviderID: it.ProviderID,
			Date:       date,
			TimeSlot:   it.TimeSlot,
			Address: entities.Address{
				Name:    it.Address.Name,
				Line1:   it.Address.Line1,
				Line2:   it.Address.Line2,
				City:    it.Address.City,
				State:   it.Address.State,
				Pincode: it.Address.Pincode,
				Phone:   it.Address.Phone,
			},
			PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
			TotalPrice:    it.TotalPrice,
			Status:        entities.BookingStatus(it.Status),
			ConfirmedAt:   parseTime(it.ConfirmedAt),
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
