package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/runforua/donorboard/internal/config"
	"github.com/runforua/donorboard/internal/domain/tracking"
	ierr "github.com/runforua/donorboard/internal/errors"
	"github.com/runforua/donorboard/internal/logger"
	"github.com/runforua/donorboard/internal/wave"
)

// QueryAPI is the slice of the DynamoDB client the tracking store needs.
type QueryAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// TrackingStore reads click-attribution records from the tracking table.
// The partition key is the business id decoded from the configured
// composite business identifier.
type TrackingStore struct {
	db         QueryAPI
	tableName  string
	businessID string
	log        *logger.Logger
}

var _ tracking.Repository = (*TrackingStore)(nil)

// NewTrackingStore builds the tracking repository, or a nil repository
// when DynamoDB is not in use for this deployment (reports then simply
// carry no UTM columns).
func NewTrackingStore(client *Client, cfg *config.Configuration, log *logger.Logger) (tracking.Repository, error) {
	if client == nil {
		return nil, nil
	}

	businessID, err := wave.DecodeBusinessID(cfg.Wave.BusinessID)
	if err != nil {
		return nil, err
	}

	return &TrackingStore{
		db:         client.DB(),
		tableName:  cfg.DynamoDB.TrackingTableName,
		businessID: businessID,
		log:        log,
	}, nil
}

// newTrackingStoreWithAPI is used by tests to substitute the query API.
func newTrackingStoreWithAPI(db QueryAPI, tableName, businessID string, log *logger.Logger) *TrackingStore {
	return &TrackingStore{
		db:         db,
		tableName:  tableName,
		businessID: businessID,
		log:        log,
	}
}

// ListAll returns every tracking record for the business, following the
// LastEvaluatedKey continuation until the query is exhausted.
func (s *TrackingStore) ListAll(ctx context.Context) ([]tracking.Record, error) {
	var records []tracking.Record

	var startKey map[string]ddbtypes.AttributeValue
	for {
		out, err := s.db.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			KeyConditionExpression: aws.String("business_id = :business_id"),
			ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
				":business_id": &ddbtypes.AttributeValueMemberS{Value: s.businessID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Could not read the donation tracking table").
				Mark(ierr.ErrDatabase)
		}

		page, err := unmarshalRecords(out.Items)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	s.log.Debugw("fetched tracking records", "business_id", s.businessID, "count", len(records))
	return records, nil
}

func unmarshalRecords(items []map[string]ddbtypes.AttributeValue) ([]tracking.Record, error) {
	records := make([]tracking.Record, 0, len(items))
	for _, item := range items {
		var rec tracking.Record
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, ierr.WithError(err).
				WithHint("A tracking record did not match the expected shape").
				Mark(ierr.ErrDatabase)
		}

		// Keep any extra attribution fields the pipeline wrote
		var attrs map[string]interface{}
		if err := attributevalue.UnmarshalMap(item, &attrs); err == nil {
			delete(attrs, "business_id")
			delete(attrs, "donation_id")
			delete(attrs, "referrer")
			if len(attrs) > 0 {
				rec.Attributes = attrs
			}
		}

		records = append(records, rec)
	}
	return records, nil
}
