package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfigFromEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("create dynamodb config: %w", err)
	}
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
}

// TableSpec describes a table with string keys; GSIs project all attributes.
type TableSpec struct {
	Name         string
	PartitionKey string
	Indexes      []IndexSpec
}

type IndexSpec struct {
	Name         string
	PartitionKey string
	SortKey      string
}

// ServiceTables returns the tables used by the pickup service, named from env.
func ServiceTables() []TableSpec {
	return []TableSpec{
		{
			Name:         getenvDefault("REQUESTS_TABLE", "pickup_requests"),
			PartitionKey: "id",
			Indexes: []IndexSpec{
				{Name: "user_id-index", PartitionKey: "user_id", SortKey: "created_at"},
				{Name: "slot_date-index", PartitionKey: "slot_date", SortKey: "slot_start"},
				{Name: "status-index", PartitionKey: "status", SortKey: "created_at"},
			},
		},
		{
			Name:         getenvDefault("REWARDS_TABLE", "rewards"),
			PartitionKey: "id",
			Indexes: []IndexSpec{
				{Name: "user_id-index", PartitionKey: "user_id", SortKey: "created_at"},
			},
		},
		{
			Name:         getenvDefault("NOTIFICATIONS_TABLE", "notifications"),
			PartitionKey: "id",
			Indexes: []IndexSpec{
				{Name: "status-index", PartitionKey: "status", SortKey: "created_at"},
				{Name: "user_id-index", PartitionKey: "user_id", SortKey: "created_at"},
			},
		},
	}
}

// EnsureTables creates missing tables (on-demand billing). Intended for
// DynamoDB Local; production tables are provisioned outside the service.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, specs []TableSpec) error {
	for _, spec := range specs {
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", spec.Name, err)
		}
		if _, err := ddb.CreateTable(ctx, CreateTableInput(spec)); err != nil {
			return fmt.Errorf("create table %s: %w", spec.Name, err)
		}
		log.Printf("[database][dynamodb] created table=%s", spec.Name)
	}
	return nil
}

func CreateTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	seen := map[string]bool{spec.PartitionKey: true}
	attrs := []types.AttributeDefinition{{AttributeName: aws.String(spec.PartitionKey), AttributeType: types.ScalarAttributeTypeS}}
	addAttr := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS})
	}

	var gsis []types.GlobalSecondaryIndex
	for _, idx := range spec.Indexes {
		addAttr(idx.PartitionKey)
		addAttr(idx.SortKey)
		schema := []types.KeySchemaElement{{AttributeName: aws.String(idx.PartitionKey), KeyType: types.KeyTypeHash}}
		if idx.SortKey != "" {
			schema = append(schema, types.KeySchemaElement{AttributeName: aws.String(idx.SortKey), KeyType: types.KeyTypeRange})
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.Name),
			KeySchema:  schema,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	in := &dynamodb.CreateTableInput{
		TableName:            aws.String(spec.Name),
		AttributeDefinitions: attrs,
		KeySchema:            []types.KeySchemaElement{{AttributeName: aws.String(spec.PartitionKey), KeyType: types.KeyTypeHash}},
		BillingMode:          types.BillingModePayPerRequest,
	}
	if len(gsis) > 0 {
		in.GlobalSecondaryIndexes = gsis
	}
	return in
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
