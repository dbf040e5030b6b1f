package remote

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"fleetsync/internal/wire"
)

// DynamoAPI is the subset of the DynamoDB client used by DynamoTable.
// Narrowed so tests can substitute a fake.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoTable implements TableStore over a DynamoDB client.
type DynamoTable struct {
	client DynamoAPI
}

func NewDynamoTable(client DynamoAPI) *DynamoTable {
	return &DynamoTable{client: client}
}

func (t *DynamoTable) PutItem(ctx context.Context, table string, item wire.Item) error {
	_, err := t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	})
	return err
}

func (t *DynamoTable) DeleteItem(ctx context.Context, table string, key wire.Item) error {
	_, err := t.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	return err
}

// Scan reads the whole table, following continuation keys so results larger
// than one response page are not silently truncated.
func (t *DynamoTable) Scan(ctx context.Context, table string) ([]wire.Item, error) {
	var items []wire.Item
	var startKey wire.Item

	for {
		out, err := t.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			items = append(items, item)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
