package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runforua/donorboard/internal/config"
	"github.com/runforua/donorboard/internal/logger"
)

type fakeQueryAPI struct {
	pages   []*dynamodb.QueryOutput
	inputs  []*dynamodb.QueryInput
	err     error
	pageIdx int
}

func (f *fakeQueryAPI) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	out := f.pages[f.pageIdx]
	f.pageIdx++
	return out, nil
}

func trackingItem(donationID, referrer string) map[string]ddbtypes.AttributeValue {
	return map[string]ddbtypes.AttributeValue{
		"business_id": &ddbtypes.AttributeValueMemberS{Value: "biz-1"},
		"donation_id": &ddbtypes.AttributeValueMemberS{Value: donationID},
		"referrer":    &ddbtypes.AttributeValueMemberS{Value: referrer},
		"user_agent":  &ddbtypes.AttributeValueMemberS{Value: "Mozilla/5.0"},
	}
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(config.GetDefaultConfig())
	require.NoError(t, err)
	return log
}

func TestListAllFollowsContinuation(t *testing.T) {
	continuation := map[string]ddbtypes.AttributeValue{
		"business_id": &ddbtypes.AttributeValueMemberS{Value: "biz-1"},
		"donation_id": &ddbtypes.AttributeValueMemberS{Value: "don-2"},
	}
	fake := &fakeQueryAPI{
		pages: []*dynamodb.QueryOutput{
			{
				Items: []map[string]ddbtypes.AttributeValue{
					trackingItem("don-1", "https://example.org/?utm_campaign=spring"),
					trackingItem("don-2", "https://example.org/?utm_campaign=spring"),
				},
				LastEvaluatedKey: continuation,
			},
			{
				Items: []map[string]ddbtypes.AttributeValue{
					trackingItem("don-3", "https://example.org/"),
				},
			},
		},
	}

	store := newTrackingStoreWithAPI(fake, "donation-tracking", "biz-1", newTestLogger(t))

	records, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "don-1", records[0].DonationID)
	assert.Equal(t, "don-3", records[2].DonationID)
	assert.Equal(t, "Mozilla/5.0", records[0].Attributes["user_agent"])

	// Both requests keep the key condition; the second carries the
	// continuation token.
	require.Len(t, fake.inputs, 2)
	for _, input := range fake.inputs {
		assert.Equal(t, "donation-tracking", *input.TableName)
		assert.Equal(t, "business_id = :business_id", *input.KeyConditionExpression)
	}
	assert.Nil(t, fake.inputs[0].ExclusiveStartKey)
	assert.Equal(t, continuation, fake.inputs[1].ExclusiveStartKey)
}

func TestListAllPropagatesQueryError(t *testing.T) {
	fake := &fakeQueryAPI{err: errors.New("throttled")}
	store := newTrackingStoreWithAPI(fake, "donation-tracking", "biz-1", newTestLogger(t))

	_, err := store.ListAll(context.Background())
	require.Error(t, err)
}

func TestNewTrackingStoreDecodesBusinessID(t *testing.T) {
	cfg := config.GetDefaultConfig()
	store, err := NewTrackingStore(&Client{}, cfg, newTestLogger(t))
	require.NoError(t, err)

	ts, ok := store.(*TrackingStore)
	require.True(t, ok)
	// GetDefaultConfig carries base64("Business:test-business-id")
	assert.Equal(t, "test-business-id", ts.businessID)
}

func TestNewTrackingStoreNilClient(t *testing.T) {
	store, err := NewTrackingStore(nil, config.GetDefaultConfig(), newTestLogger(t))
	require.NoError(t, err)
	assert.Nil(t, store)
}
