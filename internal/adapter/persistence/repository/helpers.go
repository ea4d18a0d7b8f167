package repository

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// timeToString renders timestamps for storage. RFC3339 in UTC is
// fixed-width, so lexicographic sort-key comparisons match chronological
// order; sub-second precision is not needed for any range-queried field.
func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func stringToTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func timePtrToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeToString(*t)
}

func stringToTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := stringToTime(s)
	return &t
}

// putNew inserts an item, refusing to overwrite an existing id.
func putNew(ctx context.Context, ddb *dynamodb.Client, tableName string, av map[string]types.AttributeValue) error {
	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// putVersioned writes the full aggregate conditionally on the version the
// caller read. The item must already carry the bumped version; the
// condition checks the stored one. A failed condition surfaces as
// ErrVersionConflict so the usecase can reject the stale transition
// instead of overwriting a newer state.
func putVersioned(ctx context.Context, ddb *dynamodb.Client, tableName string, av map[string]types.AttributeValue, expectedVersion int64) error {
	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrVersionConflict
		}
		return err
	}
	return nil
}
