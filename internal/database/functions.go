package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrNotFound is returned by GetItem when the key has no item.
var ErrNotFound = errors.New("database: item not found")

const maxScanPage = 100

type Item = map[string]types.AttributeValue

// StringKey builds a single string partition key.
func StringKey(name, value string) Item {
	return Item{name: &types.AttributeValueMemberS{Value: value}}
}

// PutItem marshals v with its dynamodbav tags and writes it, replacing any
// item with the same key.
func (c *DynamoDBClient) PutItem(ctx context.Context, table string, v any) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return fmt.Errorf("database: marshal %s item: %w", table, err)
	}
	if _, err := c.svc.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("database: put %s: %w", table, err)
	}
	return nil
}

// GetItem reads the item at key into out. A missing item wraps ErrNotFound.
func (c *DynamoDBClient) GetItem(ctx context.Context, table string, key Item, out any) error {
	res, err := c.svc.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("database: get %s: %w", table, err)
	}
	if res.Item == nil {
		return fmt.Errorf("database: get %s: %w", table, ErrNotFound)
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return fmt.Errorf("database: unmarshal %s item: %w", table, err)
	}
	return nil
}

// ScanLimit reads up to limit items, following LastEvaluatedKey across
// pages. A limit of zero or less reads the whole table.
func (c *DynamoDBClient) ScanLimit(ctx context.Context, table string, limit int) ([]Item, error) {
	var (
		items    []Item
		startKey Item
	)
	for {
		pageSize := maxScanPage
		if remaining := limit - len(items); limit > 0 && remaining < pageSize {
			pageSize = remaining
		}
		res, err := c.svc.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			Limit:             aws.Int32(int32(pageSize)),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("database: scan %s: %w", table, err)
		}
		items = append(items, res.Items...)
		if limit > 0 && len(items) >= limit {
			return items[:limit], nil
		}
		if len(res.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = res.LastEvaluatedKey
	}
}

func UnmarshalItems(items []Item, out any) error {
	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("database: unmarshal items: %w", err)
	}
	return nil
}
