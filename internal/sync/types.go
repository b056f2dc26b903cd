package sync

// MemosWebhookPayload matches Memos API v1 webhook format.
type MemosWebhookPayload struct {
	ActivityType string `json:"activityType"` // e.g., "memos.memo.updated"
	Creator      string `json:"creator"`
	Memo         struct {
		Name string `json:"name"` // e.g., "memos/123"
		UID  string `json:"uid"`  // Short UID (Base58)
	} `json:"memo"`
}

const (
	ActivityCreated = "memos.memo.created"
	ActivityUpdated = "memos.memo.updated"
	ActivityDeleted = "memos.memo.deleted"
)

// TokenHeader carries the shared webhook token when it is not in the query.
const TokenHeader = "X-Webhook-Token"
