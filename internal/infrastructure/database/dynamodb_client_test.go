package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeTables struct {
	existing map[string]bool
	created  []*dynamodb.CreateTableInput
	failWith error
}

func (f *fakeTables) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if f.existing[aws.ToString(in.TableName)] {
		return &dynamodb.DescribeTableOutput{}, nil
	}
	return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
}

func (f *fakeTables) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = append(f.created, in)
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables(t *testing.T) {
	tables := []TableSpec{
		{Name: "days", Hash: KeyAttr{Name: "id", Type: types.ScalarAttributeTypeS}},
		{
			Name: "bookings",
			Hash: KeyAttr{Name: "id", Type: types.ScalarAttributeTypeS},
			Indexes: []IndexSpec{{
				Name:  "day_id-index",
				Hash:  KeyAttr{Name: "day_id", Type: types.ScalarAttributeTypeS},
				Range: &KeyAttr{Name: "position", Type: types.ScalarAttributeTypeN},
			}},
		},
	}

	t.Run("creates missing tables only", func(t *testing.T) {
		f := &fakeTables{existing: map[string]bool{"days": true}}
		if err := EnsureTables(context.Background(), f, tables); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.created) != 1 || aws.ToString(f.created[0].TableName) != "bookings" {
			t.Fatalf("unexpected created tables: %+v", f.created)
		}
		in := f.created[0]
		if len(in.AttributeDefinitions) != 3 || len(in.GlobalSecondaryIndexes) != 1 {
			t.Fatalf("unexpected definition: %+v", in)
		}
		if len(in.GlobalSecondaryIndexes[0].KeySchema) != 2 {
			t.Fatalf("expected hash and range key on index")
		}
	})

	t.Run("describe error", func(t *testing.T) {
		f := &fakeTables{failWith: errors.New("boom")}
		if err := EnsureTables(context.Background(), f, tables); err == nil {
			t.Fatalf("expected error")
		}
	})
}
