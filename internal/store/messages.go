package store

import (
	"sync"
	"time"

	"support-desk-backend/internal/model"
)

// messageLog is append-only and indexed by conversation so listing one
// conversation does not scan every message.
type messageLog struct {
	mu             sync.RWMutex
	items          []model.Message
	ids            map[string]struct{}
	byConversation map[string][]int
}

func newMessageLog() *messageLog {
	return &messageLog{
		ids:            make(map[string]struct{}),
		byConversation: make(map[string][]int),
	}
}

func (l *messageLog) list(conversationID string) []model.Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	idx := l.byConversation[conversationID]
	out := make([]model.Message, len(idx))
	for i, pos := range idx {
		out[i] = l.items[pos]
	}
	return out
}

// append assigns an id and a timestamp that never precedes the previous
// message of the same conversation.
func (l *messageLog) append(m model.Message, newID func() string, now func() time.Time) model.Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := newID()
	for {
		if _, taken := l.ids[id]; !taken {
			break
		}
		id = newID()
	}
	m.ID = id
	m.Timestamp = now()
	if idx := l.byConversation[m.ConversationID]; len(idx) > 0 {
		if prev := l.items[idx[len(idx)-1]].Timestamp; m.Timestamp.Before(prev) {
			m.Timestamp = prev
		}
	}
	l.store(m)
	return m
}

func (l *messageLog) put(m model.Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.ids[m.ID]; exists {
		return
	}
	l.store(m)
}

func (l *messageLog) store(m model.Message) {
	l.ids[m.ID] = struct{}{}
	l.byConversation[m.ConversationID] = append(l.byConversation[m.ConversationID], len(l.items))
	l.items = append(l.items, m)
}
