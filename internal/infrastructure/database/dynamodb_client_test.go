package database

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestCreateTableInput(t *testing.T) {
	spec := TableSpec{
		Name:         "pickup_requests",
		PartitionKey: "id",
		Indexes: []IndexSpec{
			{Name: "user_id-index", PartitionKey: "user_id", SortKey: "created_at"},
			{Name: "status-index", PartitionKey: "status", SortKey: "created_at"},
		},
	}
	in := CreateTableInput(spec)

	if aws.ToString(in.TableName) != "pickup_requests" || in.BillingMode != types.BillingModePayPerRequest {
		t.Fatalf("unexpected table input: %+v", in)
	}
	// id, user_id, created_at, status; created_at is shared and declared once.
	if len(in.AttributeDefinitions) != 4 {
		t.Fatalf("expected 4 attribute definitions, got %d", len(in.AttributeDefinitions))
	}
	if len(in.GlobalSecondaryIndexes) != 2 {
		t.Fatalf("expected 2 GSIs, got %d", len(in.GlobalSecondaryIndexes))
	}
	if in.GlobalSecondaryIndexes[0].KeySchema[1].KeyType != types.KeyTypeRange {
		t.Fatalf("expected sort key on index")
	}
}

func TestServiceTablesHonorsEnv(t *testing.T) {
	t.Setenv("REWARDS_TABLE", "rewards_test")
	specs := ServiceTables()
	if len(specs) != 3 {
		t.Fatalf("expected 3 tables, got %d", len(specs))
	}
	if specs[1].Name != "rewards_test" {
		t.Fatalf("env table name not applied: %s", specs[1].Name)
	}
}
