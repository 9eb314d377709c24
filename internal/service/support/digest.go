package support

import (
	"context"
	"fmt"

	"support-desk-backend/internal/notify"
)

// SendDigest posts the current analytics to every connected Slack
// integration. It is a no-op without an alerter or webhooks.
func (s *Service) SendDigest(ctx context.Context) error {
	if s.alerter == nil {
		return nil
	}
	webhooks := notify.SlackWebhooks(s.store.ListIntegrations())
	if len(webhooks) == 0 {
		return nil
	}
	if err := s.alerter.Digest(ctx, webhooks, s.store.Analytics(), s.now()); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	return nil
}
