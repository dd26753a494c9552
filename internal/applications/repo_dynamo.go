package applications

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the slice of the DynamoDB client the repo uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DynamoRepo stores application records in a DynamoDB table keyed by id.
type DynamoRepo struct {
	client DynamoAPI
	table  string
}

func NewDynamoRepo(client DynamoAPI, table string) *DynamoRepo {
	return &DynamoRepo{client: client, table: table}
}

func (r *DynamoRepo) Save(ctx context.Context, app Application) error {
	item, err := attributevalue.MarshalMap(app)
	if err != nil {
		return fmt.Errorf("marshal application %s: %w", app.ID, err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("save application %s: %w", app.ID, err)
	}
	return nil
}

func (r *DynamoRepo) Get(ctx context.Context, id string) (Application, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return Application{}, fmt.Errorf("get application %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return Application{}, ErrNotFound
	}
	var app Application
	if err := attributevalue.UnmarshalMap(out.Item, &app); err != nil {
		return Application{}, fmt.Errorf("unmarshal application %s: %w", id, err)
	}
	return app, nil
}

func (r *DynamoRepo) List(ctx context.Context, limit int) ([]Application, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.table)}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}
	out, err := r.client.Scan(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	var apps []Application
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &apps); err != nil {
		return nil, fmt.Errorf("unmarshal applications: %w", err)
	}
	return apps, nil
}
