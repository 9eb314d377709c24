// Package archive writes conversation transcripts to DynamoDB. The server
// only ever writes; transcripts are never loaded back into the live store.
package archive

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"support-desk-backend/internal/database"
	"support-desk-backend/internal/model"
)

const partitionKey = "conversationId"

var ErrNotFound = errors.New("archive: transcript not found")

type Archiver interface {
	Put(ctx context.Context, t model.TranscriptItem) error
	Get(ctx context.Context, conversationID string) (model.TranscriptItem, error)
	List(ctx context.Context, limit int) ([]model.TranscriptItem, error)
}

// itemStore is implemented by *database.DynamoDBClient.
type itemStore interface {
	PutItem(ctx context.Context, tableName string, item interface{}) error
	GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue, out interface{}) error
	ScanLimit(ctx context.Context, tableName string, limit int) ([]map[string]types.AttributeValue, error)
}

type DynamoArchiver struct {
	db    itemStore
	table string
}

var _ Archiver = (*DynamoArchiver)(nil)

func NewDynamoArchiver(db *database.DynamoDBClient, table string) *DynamoArchiver {
	return &DynamoArchiver{db: db, table: table}
}

// Put stores t, replacing any earlier transcript of the same conversation.
func (a *DynamoArchiver) Put(ctx context.Context, t model.TranscriptItem) error {
	if t.ConversationID == "" {
		return errors.New("archive: conversation id required")
	}
	if t.Messages == nil {
		t.Messages = []model.Message{}
	}
	if err := a.db.PutItem(ctx, a.table, t); err != nil {
		return fmt.Errorf("archive: put %s: %w", t.ConversationID, err)
	}
	return nil
}

func (a *DynamoArchiver) Get(ctx context.Context, conversationID string) (model.TranscriptItem, error) {
	var t model.TranscriptItem
	err := a.db.GetItem(ctx, a.table, database.StringKey(partitionKey, conversationID), &t)
	if errors.Is(err, database.ErrNotFound) {
		return model.TranscriptItem{}, ErrNotFound
	}
	if err != nil {
		return model.TranscriptItem{}, fmt.Errorf("archive: get %s: %w", conversationID, err)
	}
	return t, nil
}

// List returns up to limit transcripts, newest archive first. Scan order is
// arbitrary, so the limit cuts an unordered sample before sorting.
func (a *DynamoArchiver) List(ctx context.Context, limit int) ([]model.TranscriptItem, error) {
	items, err := a.db.ScanLimit(ctx, a.table, limit)
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	out := make([]model.TranscriptItem, 0, len(items))
	if err := database.UnmarshalItems(items, &out); err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ArchivedAt.After(out[j].ArchivedAt)
	})
	return out, nil
}
