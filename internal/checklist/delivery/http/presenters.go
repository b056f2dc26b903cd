package http

import (
	"time"

	"memos-widget/internal/checklist"
	"memos-widget/pkg/response"
)

// --- Request DTOs ---

type addReq struct {
	Body string `json:"body" binding:"max=4096"`
}

type popupReq struct {
	Refresh bool `form:"refresh"`
}

// --- Response DTOs ---

type panelResp struct {
	Text  string `json:"text"`
	State string `json:"state"`
}

type rowResp struct {
	Row           int    `json:"row"`
	Text          string `json:"text"`
	Kind          string `json:"kind"`
	Checked       bool   `json:"checked"`
	DocumentIndex int    `json:"document_index"`
}

type statsResp struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

type popupResp struct {
	Rows  []rowResp `json:"rows"`
	Stats statsResp `json:"stats"`
}

func newPopupResp(out checklist.PopupOutput) popupResp {
	rows := make([]rowResp, len(out.Rows))
	for i, r := range out.Rows {
		rows[i] = rowResp{
			Row:           i,
			Text:          r.Text,
			Kind:          r.Kind.String(),
			Checked:       r.Checked,
			DocumentIndex: r.DocumentIndex,
		}
	}
	return popupResp{
		Rows: rows,
		Stats: statsResp{
			Total:     out.Stats.Total,
			Completed: out.Stats.Completed,
			Pending:   out.Stats.Pending,
		},
	}
}

type editResp struct {
	Applied       bool   `json:"applied"`
	DocumentIndex int    `json:"document_index"`
	Pushed        bool   `json:"pushed"`
	Panel         string `json:"panel"`
}

func newEditResp(out checklist.EditOutput, panel string) editResp {
	return editResp{
		Applied:       out.Applied,
		DocumentIndex: out.DocumentIndex,
		Pushed:        out.Pushed,
		Panel:         panel,
	}
}

type syncResp struct {
	Changed   bool              `json:"changed"`
	Lines     int               `json:"lines"`
	FromCache bool              `json:"from_cache"`
	SyncedAt  response.DateTime `json:"synced_at"`
}

func newSyncResp(out checklist.PullOutput, at time.Time) syncResp {
	return syncResp{
		Changed:   out.Changed,
		Lines:     out.Lines,
		FromCache: out.FromCache,
		SyncedAt:  response.DateTime(at),
	}
}
