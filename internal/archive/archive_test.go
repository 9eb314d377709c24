package archive

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"support-desk-backend/internal/database"
	"support-desk-backend/internal/model"
)

type memoryItems struct {
	tables map[string][]map[string]types.AttributeValue
	err    error
}

func newMemoryItems() *memoryItems {
	return &memoryItems{tables: make(map[string][]map[string]types.AttributeValue)}
}

func (m *memoryItems) PutItem(ctx context.Context, table string, item interface{}) error {
	if m.err != nil {
		return m.err
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	key := av[partitionKey].(*types.AttributeValueMemberS).Value
	rows := m.tables[table]
	for i, row := range rows {
		if row[partitionKey].(*types.AttributeValueMemberS).Value == key {
			rows[i] = av
			return nil
		}
	}
	m.tables[table] = append(rows, av)
	return nil
}

func (m *memoryItems) GetItem(ctx context.Context, table string, key map[string]types.AttributeValue, out interface{}) error {
	if m.err != nil {
		return m.err
	}
	want := key[partitionKey].(*types.AttributeValueMemberS).Value
	for _, row := range m.tables[table] {
		if row[partitionKey].(*types.AttributeValueMemberS).Value == want {
			return attributevalue.UnmarshalMap(row, out)
		}
	}
	return fmt.Errorf("get item %s: %w", table, database.ErrNotFound)
}

func (m *memoryItems) ScanLimit(ctx context.Context, table string, limit int) ([]map[string]types.AttributeValue, error) {
	if m.err != nil {
		return nil, m.err
	}
	rows := m.tables[table]
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func transcript(id string, archivedAt time.Time) model.TranscriptItem {
	return model.TranscriptItem{
		ConversationID: id,
		Conversation:   model.Conversation{ID: id, Subject: "Billing", Status: model.ConversationStatusOpen},
		Messages: []model.Message{
			{ID: "msg-1", ConversationID: id, Sender: model.SenderCustomer, Content: "hi", Timestamp: archivedAt},
		},
		ArchivedAt: archivedAt,
	}
}

func TestPutAndGet(t *testing.T) {
	a := &DynamoArchiver{db: newMemoryItems(), table: "Transcripts"}
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	if err := a.Put(ctx, transcript("conv-1", at)); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	got, err := a.Get(ctx, "conv-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Conversation.Subject != "Billing" || len(got.Messages) != 1 || !got.ArchivedAt.Equal(at) {
		t.Fatalf("unexpected transcript %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	a := &DynamoArchiver{db: newMemoryItems(), table: "Transcripts"}
	if _, err := a.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPutRequiresID(t *testing.T) {
	a := &DynamoArchiver{db: newMemoryItems(), table: "Transcripts"}
	if err := a.Put(context.Background(), model.TranscriptItem{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestListNewestFirst(t *testing.T) {
	a := &DynamoArchiver{db: newMemoryItems(), table: "Transcripts"}
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	a.Put(ctx, transcript("conv-1", base))
	a.Put(ctx, transcript("conv-2", base.Add(time.Hour)))
	a.Put(ctx, transcript("conv-1", base.Add(2*time.Hour)))

	got, err := a.List(ctx, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ConversationID != "conv-1" || got[1].ConversationID != "conv-2" {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestBackendErrorsWrap(t *testing.T) {
	items := newMemoryItems()
	items.err = errors.New("throttled")
	a := &DynamoArchiver{db: items, table: "Transcripts"}
	if err := a.Put(context.Background(), transcript("conv-1", time.Now())); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected error %v", err)
	}
	if _, err := a.Get(context.Background(), "conv-1"); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected error %v", err)
	}
}
