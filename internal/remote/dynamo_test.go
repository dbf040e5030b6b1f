package remote

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetsync/internal/wire"
)

type fakeDynamo struct {
	putInputs    []*dynamodb.PutItemInput
	deleteInputs []*dynamodb.DeleteItemInput
	scanPages    []*dynamodb.ScanOutput
	scanCalls    int
	err          error
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInputs = append(f.putInputs, params)
	return &dynamodb.PutItemOutput{}, f.err
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleteInputs = append(f.deleteInputs, params)
	return &dynamodb.DeleteItemOutput{}, f.err
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := f.scanPages[f.scanCalls]
	f.scanCalls++
	return out, nil
}

func item(plate string) wire.Item {
	return wire.Item{"plate": &types.AttributeValueMemberS{Value: plate}}
}

func TestDynamoTable_PutItem(t *testing.T) {
	f := &fakeDynamo{}
	tbl := NewDynamoTable(f)

	require.NoError(t, tbl.PutItem(context.Background(), "Vehicles", item("ABC123")))
	require.Len(t, f.putInputs, 1)
	assert.Equal(t, "Vehicles", *f.putInputs[0].TableName)
}

func TestDynamoTable_DeleteItem(t *testing.T) {
	f := &fakeDynamo{}
	tbl := NewDynamoTable(f)

	require.NoError(t, tbl.DeleteItem(context.Background(), "Vehicles", item("ABC123")))
	require.Len(t, f.deleteInputs, 1)
	assert.Equal(t, "Vehicles", *f.deleteInputs[0].TableName)
}

func TestDynamoTable_Scan_FollowsContinuationKeys(t *testing.T) {
	f := &fakeDynamo{
		scanPages: []*dynamodb.ScanOutput{
			{
				Items:            []map[string]types.AttributeValue{item("ABC123"), item("XYZ789")},
				LastEvaluatedKey: item("XYZ789"),
			},
			{
				Items: []map[string]types.AttributeValue{item("DEF456")},
			},
		},
	}
	tbl := NewDynamoTable(f)

	items, err := tbl.Scan(context.Background(), "Vehicles")
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 2, f.scanCalls)
}

func TestDynamoTable_Scan_PropagatesError(t *testing.T) {
	f := &fakeDynamo{err: errors.New("throttled")}
	tbl := NewDynamoTable(f)

	_, err := tbl.Scan(context.Background(), "Vehicles")
	assert.Error(t, err)
}
