package sync

import (
	"strings"

	"github.com/gin-gonic/gin"

	"memos-widget/internal/webhook"
	pkgResponse "memos-widget/pkg/response"
)

// HandleMemosWebhook processes Memos webhook events.
func (h *WebhookHandler) HandleMemosWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.Forbidden(c)
		return
	}

	token := c.Query("token")
	if token == "" {
		token = c.GetHeader(TokenHeader)
	}
	if err := h.security.ValidateToken(token); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	if err := h.security.CheckRateLimit(webhook.ExtractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	var payload MemosWebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.l.Errorf(ctx, "webhook: failed to parse payload: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if !h.isMirrored(payload) {
		h.l.Debugf(ctx, "webhook: ignoring %s for %s", payload.ActivityType, payload.Memo.Name)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	h.l.Infof(ctx, "webhook: received %s for memo %s", payload.ActivityType, h.memoID)

	switch payload.ActivityType {
	case ActivityCreated, ActivityUpdated:
		// The pull runs on the scheduler; Memos gets its answer right away.
		h.refresher.RequestPull()
	case ActivityDeleted:
		h.l.Warnf(ctx, "webhook: memo %s was deleted upstream, keeping local copy", h.memoID)
	default:
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *WebhookHandler) isMirrored(p MemosWebhookPayload) bool {
	if p.Memo.UID != "" && p.Memo.UID == h.memoID {
		return true
	}
	return strings.TrimPrefix(p.Memo.Name, "memos/") == h.memoID
}
