package support

import (
	"context"
	"errors"

	"support-desk-backend/internal/archive"
	"support-desk-backend/internal/model"
)

const maxTranscriptList = 100

func (s *Service) archiveAvailable() error {
	if s.archiver == nil {
		return newError(ErrorCodeUnavailable, "transcript archive is not configured", nil)
	}
	return nil
}

// ArchiveConversation writes the conversation, its customer and all of its
// messages to the archive. The live store is unchanged.
func (s *Service) ArchiveConversation(ctx context.Context, conversationID string) (model.TranscriptItem, error) {
	if err := s.archiveAvailable(); err != nil {
		return model.TranscriptItem{}, err
	}
	conv, ok := s.store.GetConversation(conversationID)
	if !ok {
		return model.TranscriptItem{}, notFound("conversation")
	}
	t := model.TranscriptItem{
		ConversationID: conv.ID,
		Conversation:   conv,
		Messages:       s.store.ListMessages(conv.ID),
		ArchivedAt:     s.now().UTC(),
	}
	if c, ok := s.store.GetCustomer(conv.CustomerID); ok {
		t.Customer = &c
	}
	if err := s.archiver.Put(ctx, t); err != nil {
		return model.TranscriptItem{}, newError(ErrorCodeUnavailable, "failed to archive conversation", err)
	}
	return t, nil
}

func (s *Service) ListTranscripts(ctx context.Context, limit int) ([]model.TranscriptItem, error) {
	if err := s.archiveAvailable(); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > maxTranscriptList {
		limit = maxTranscriptList
	}
	items, err := s.archiver.List(ctx, limit)
	if err != nil {
		return nil, newError(ErrorCodeUnavailable, "failed to list transcripts", err)
	}
	if items == nil {
		items = []model.TranscriptItem{}
	}
	return items, nil
}

func (s *Service) GetTranscript(ctx context.Context, conversationID string) (model.TranscriptItem, error) {
	if err := s.archiveAvailable(); err != nil {
		return model.TranscriptItem{}, err
	}
	t, err := s.archiver.Get(ctx, conversationID)
	if errors.Is(err, archive.ErrNotFound) {
		return model.TranscriptItem{}, notFound("transcript")
	}
	if err != nil {
		return model.TranscriptItem{}, newError(ErrorCodeUnavailable, "failed to load transcript", err)
	}
	return t, nil
}
