package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
)

const defaultSequencesTableName = "sequences"

// SequenceDynamoRepository allocates numbering sequences with a DynamoDB
// ADD expression. The increment is atomic on the item, so concurrent
// allocations never hand out the same number.
//
// Table requirements:
//   - PK: id (string), one item per sequence name and year.

type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCES_TABLE", defaultSequencesTableName),
	}
}

func (r *SequenceDynamoRepository) Next(ctx context.Context, name string, year int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: fmt.Sprintf("%s#%d", name, year)},
		},
		UpdateExpression: aws.String("ADD seq_value :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["seq_value"]
	if !ok {
		return 0, fmt.Errorf("sequence %s#%d returned no value", name, year)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("sequence %s#%d returned a non-numeric value", name, year)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}
