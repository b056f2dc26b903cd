package sync

import (
	"memos-widget/internal/webhook"
	pkgLog "memos-widget/pkg/log"
)

type WebhookHandler struct {
	refresher Refresher
	memoID    string
	security  *webhook.SecurityValidator
	l         pkgLog.Logger
}

func NewWebhookHandler(refresher Refresher, memoID string, security *webhook.SecurityValidator, l pkgLog.Logger) *WebhookHandler {
	return &WebhookHandler{
		refresher: refresher,
		memoID:    memoID,
		security:  security,
		l:         l,
	}
}
