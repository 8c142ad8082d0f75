package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"homeez_booking/internal/domain/entities"
	"homeez_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	items    map[string]map[string]types.AttributeValue
	pageSize int
	putErr   error
	lastPut  *dynamodb.PutItemInput
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(m map[string]types.AttributeValue) string {
	if s, ok := m["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	if f.putErr != nil {
		return nil, f.putErr
	}
	id := keyOf(in.Item)
	if _, ok := f.items[id]; ok && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

// Query pages through the items of one user, pageSize at a time.
func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	uid := in.ExpressionAttributeValues[":uid"].(*types.AttributeValueMemberS).Value
	var matched []map[string]types.AttributeValue
	for _, id := range sortedKeys(f.items) {
		it := f.items[id]
		if s, ok := it["user_id"].(*types.AttributeValueMemberS); ok && s.Value == uid {
			matched = append(matched, it)
		}
	}
	start := 0
	if in.ExclusiveStartKey != nil {
		for i, it := range matched {
			if keyOf(it) == keyOf(in.ExclusiveStartKey) {
				start = i + 1
			}
		}
	}
	end := len(matched)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}
	out := &dynamodb.QueryOutput{Items: matched[start:end]}
	if end < len(matched) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": matched[end-1]["id"]}
	}
	return out, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	id := keyOf(in.Key)
	it, ok := f.items[id]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	it["status"] = in.ExpressionAttributeValues[":status"]
	it["updated_at"] = in.ExpressionAttributeValues[":updated_at"]
	return &dynamodb.UpdateItemOutput{Attributes: it}, nil
}

func sortedKeys(m map[string]map[string]types.AttributeValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

func sampleBooking(id, userID string) entities.Booking {
	at := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	return entities.Booking{
		ID: id,
		ConfirmedBooking: entities.ConfirmedBooking{
			BookingID:  "BK482913",
			UserID:     userID,
			ServiceID:  "home-cleaning",
			OptionID:   "clean-1bhk-furnished",
			ProviderID: "sp1",
			Date:       time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			TimeSlot:   "08:00 AM",
			Address: entities.Address{
				Name: "Asha Rao", Line1: "12 MG Road", City: "Bengaluru",
				State: "Karnataka", Pincode: "560001", Phone: "9876543210",
			},
			PaymentMethod: entities.PaymentMethodCash,
			TotalPrice:    1348,
			Status:        entities.BookingStatusConfirmed,
			ConfirmedAt:   at,
		},
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestBookingItemMapping(t *testing.T) {
	b := sampleBooking("id-1", "user-1")
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if v, ok := av["date"].(*types.AttributeValueMemberS); !ok || v.Value != "2026-03-12" {
		t.Fatalf("expected date stored as day, got %#v", av["date"])
	}
	if v, ok := av["total_price"].(*types.AttributeValueMemberN); !ok || v.Value != "1348" {
		t.Fatalf("expected numeric total_price, got %#v", av["total_price"])
	}
	if _, ok := av["payment_id"]; ok {
		t.Fatalf("empty payment_id must be omitted")
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := fromBookingItem(it); !reflect.DeepEqual(got, b) {
		t.Fatalf("mapping mismatch:\n got %+v\nwant %+v", got, b)
	}
}

func TestBookingDynamoRepository_Create(t *testing.T) {
	t.Run("conditional put", func(t *testing.T) {
		ddb := newFakeDynamo()
		r := NewBookingDynamoRepository(ddb, "")
		if _, err := r.Create(context.Background(), sampleBooking("id-1", "user-1")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(ddb.lastPut.TableName) != DefaultBookingsTableName {
			t.Fatalf("expected default table, got %q", aws.ToString(ddb.lastPut.TableName))
		}
		if aws.ToString(ddb.lastPut.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("expected conditional put, got %q", aws.ToString(ddb.lastPut.ConditionExpression))
		}

		_, err := r.Create(context.Background(), sampleBooking("id-1", "user-1"))
		if !errors.Is(err, interfaces.ErrBookingAlreadyExists) {
			t.Fatalf("expected ErrBookingAlreadyExists, got %v", err)
		}
	})

	t.Run("transport error", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.putErr = errors.New("throttled")
		r := NewBookingDynamoRepository(ddb, "bookings-test")
		_, err := r.Create(context.Background(), sampleBooking("id-1", "user-1"))
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled, got %v", err)
		}
	})
}

func TestBookingDynamoRepository_Reads(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	ddb.pageSize = 1
	r := NewBookingDynamoRepository(ddb, "bookings")
	for _, b := range []entities.Booking{
		sampleBooking("a", "user-1"),
		sampleBooking("b", "user-2"),
		sampleBooking("c", "user-1"),
	} {
		if _, err := r.Create(ctx, b); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	t.Run("get missing returns zero", func(t *testing.T) {
		got, err := r.GetByID(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero booking, got %+v err=%v", got, err)
		}
	})

	t.Run("list follows pages", func(t *testing.T) {
		got, err := r.ListByUserID(ctx, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
			t.Fatalf("unexpected list: %+v", got)
		}
	})

	t.Run("update status", func(t *testing.T) {
		r.now = func() time.Time { return time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC) }
		got, err := r.UpdateStatus(ctx, "a", entities.BookingStatusCancelled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.BookingStatusCancelled || !got.UpdatedAt.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected booking: %+v", got)
		}

		missing, err := r.UpdateStatus(ctx, "zzz", entities.BookingStatusCancelled)
		if err != nil || missing.ID != "" {
			t.Fatalf("expected zero booking for missing id, got %+v err=%v", missing, err)
		}
	})
}
