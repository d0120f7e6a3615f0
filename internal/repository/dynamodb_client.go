package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"bodyshop-chat/internal/domain"
)

const (
	pkPrefixBooking = "BOOKING#"
	skMeta          = "META#"
	ttlDuration     = 180 * 24 * time.Hour // 180-day TTL
)

// dynamodbAPI is the minimal DynamoDB interface required by Client.
// Defined here for testability.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Client wraps a DynamoDB table holding booking requests.
type Client struct {
	api       dynamodbAPI
	tableName string
	now       func() time.Time
}

// New creates a new repository Client.
func New(api dynamodbAPI, tableName string) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Client{api: api, tableName: tableName, now: time.Now}, nil
}

// bookingPK returns the DynamoDB partition key for a booking request.
func bookingPK(id string) string {
	return pkPrefixBooking + id
}

// SaveBookingRequest writes a new booking request. CreatedAt and TTL are
// filled in when unset. Writing an existing id fails.
func (c *Client) SaveBookingRequest(ctx context.Context, req domain.BookingRequest) error {
	if strings.TrimSpace(req.ID) == "" {
		return errors.New("repository: SaveBookingRequest: id is required")
	}
	now := c.now().UTC()
	if req.CreatedAt == "" {
		req.CreatedAt = now.Format(time.RFC3339)
	}
	if req.TTL == 0 {
		req.TTL = now.Add(ttlDuration).Unix()
	}

	_, err := c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(c.tableName),
		Item:                bookingItem(req),
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		return fmt.Errorf("repository: SaveBookingRequest: %w", err)
	}
	return nil
}

// GetBookingRequest reads a booking request by id. It reports false when no
// such request exists.
func (c *Client) GetBookingRequest(ctx context.Context, id string) (domain.BookingRequest, bool, error) {
	out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: bookingPK(id)},
			"SK": &types.AttributeValueMemberS{Value: skMeta},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return domain.BookingRequest{}, false, fmt.Errorf("repository: GetBookingRequest get item: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return domain.BookingRequest{}, false, nil
	}

	req, err := itemToBooking(out.Item)
	if err != nil {
		return domain.BookingRequest{}, false, fmt.Errorf("repository: GetBookingRequest decode: %w", err)
	}
	return req, true, nil
}

// bookingFields maps optional string attributes to their struct fields.
func bookingFields(req *domain.BookingRequest) map[string]*string {
	return map[string]*string{
		"source":        &req.Source,
		"sessionId":     &req.SessionID,
		"name":          &req.Name,
		"contact":       &req.Contact,
		"contactMethod": &req.ContactMethod,
		"service":       &req.Service,
		"timeframe":     &req.Timeframe,
		"preferredDate": &req.PreferredDate,
		"dayOfWeek":     &req.DayOfWeek,
		"timeOfDay":     &req.TimeOfDay,
		"specificTime":  &req.SpecificTime,
		"vehicle":       &req.Vehicle,
		"vin":           &req.VIN,
		"vehicleInfo":   &req.VehicleInfo,
		"notes":         &req.Notes,
		"createdAt":     &req.CreatedAt,
	}
}

func bookingItem(req domain.BookingRequest) map[string]types.AttributeValue {
	item := map[string]types.AttributeValue{
		"PK":        &types.AttributeValueMemberS{Value: bookingPK(req.ID)},
		"SK":        &types.AttributeValueMemberS{Value: skMeta},
		"bookingId": &types.AttributeValueMemberS{Value: req.ID},
		"ttl":       &types.AttributeValueMemberN{Value: strconv.FormatInt(req.TTL, 10)},
	}
	for name, v := range bookingFields(&req) {
		if *v != "" {
			item[name] = &types.AttributeValueMemberS{Value: *v}
		}
	}
	return item
}

// itemToBooking converts a DynamoDB attribute map to a BookingRequest.
func itemToBooking(item map[string]types.AttributeValue) (domain.BookingRequest, error) {
	var req domain.BookingRequest
	id, err := strAttr(item, "bookingId")
	if err != nil {
		return req, err
	}
	req.ID = id
	for name, dst := range bookingFields(&req) {
		if _, ok := item[name]; !ok {
			continue
		}
		v, err := strAttr(item, name)
		if err != nil {
			return domain.BookingRequest{}, err
		}
		*dst = v
	}
	if _, ok := item["ttl"]; ok {
		ttl, err := int64Attr(item, "ttl")
		if err != nil {
			return domain.BookingRequest{}, err
		}
		req.TTL = ttl
	}
	return req, nil
}

func strAttr(item map[string]types.AttributeValue, key string) (string, error) {
	v, ok := item[key]
	if !ok {
		return "", fmt.Errorf("repository: missing attribute %q", key)
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("repository: attribute %q is not a string", key)
	}
	return s.Value, nil
}

func int64Attr(item map[string]types.AttributeValue, key string) (int64, error) {
	v, ok := item[key]
	if !ok {
		return 0, fmt.Errorf("repository: missing attribute %q", key)
	}
	n, ok := v.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("repository: attribute %q is not a number", key)
	}
	parsed, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("repository: parse attribute %q: %w", key, err)
	}
	return parsed, nil
}
