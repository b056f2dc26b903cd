package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"memos-widget/internal/checklist"
	"memos-widget/pkg/response"
)

// Panel godoc
// @Summary     Current panel line
// @Description Returns the text the panel shows right now and the sync state.
// @Tags        Checklist
// @Produce     json
// @Success     200 {object} panelResp
// @Failure     503 {object} response.Resp "Scheduler stopped"
// @Router      /api/v1/checklist/panel [GET]
func (h *handler) Panel(c *gin.Context) {
	ctx := c.Request.Context()

	var out panelResp
	err := h.exec.Do(ctx, func(ctx context.Context, uc checklist.UseCase) error {
		out = panelResp{Text: uc.CurrentPanelLine(), State: uc.State().String()}
		return nil
	})
	if err != nil {
		h.l.Errorf(ctx, "checklist.http.Panel: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, out)
}

// Popup godoc
// @Summary     Popup rows
// @Description Lists the popup rows with stats. With refresh=true the memo is pulled first, like opening the popup.
// @Tags        Checklist
// @Produce     json
// @Param       refresh query bool false "Pull before listing"
// @Success     200 {object} popupResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/checklist/popup [GET]
func (h *handler) Popup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPopupReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var out checklist.PopupOutput
	err = h.exec.Do(ctx, func(ctx context.Context, uc checklist.UseCase) error {
		if req.Refresh {
			out = uc.OpenPopup(ctx)
		} else {
			out = uc.PopupRows()
		}
		return nil
	})
	if err != nil {
		h.l.Errorf(ctx, "checklist.http.Popup: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newPopupResp(out))
}

// Add godoc
// @Summary     Add a task
// @Description Appends an unchecked task to the memo and pushes it. A blank body changes nothing.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Task text"
// @Success     200 {object} editResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "No document loaded"
// @Router      /api/v1/checklist/items [POST]
func (h *handler) Add(c *gin.Context) {
	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.edit(c, "Add", func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error) {
		return uc.Add(ctx, req.Body)
	})
}

// Toggle godoc
// @Summary     Toggle a row
// @Description Flips the checked state of a popup row and pushes the memo.
// @Tags        Checklist
// @Produce     json
// @Param       row path int true "Popup row"
// @Success     200 {object} editResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Row out of range"
// @Router      /api/v1/checklist/items/{row}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	row, err := parseRow(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.edit(c, "Toggle", func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error) {
		return uc.Toggle(ctx, row)
	})
}

// Delete godoc
// @Summary     Delete a row
// @Description Removes the line behind a popup row and pushes the memo.
// @Tags        Checklist
// @Produce     json
// @Param       row path int true "Popup row"
// @Success     200 {object} editResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Row out of range"
// @Router      /api/v1/checklist/items/{row} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	row, err := parseRow(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.edit(c, "Delete", func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error) {
		return uc.Delete(ctx, row)
	})
}

// Sync godoc
// @Summary     Pull the memo
// @Description Fetches the memo now. On failure the current document is kept.
// @Tags        Checklist
// @Produce     json
// @Success     200 {object} syncResp
// @Failure     503 {object} response.Resp "Memos unreachable"
// @Router      /api/v1/checklist/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	var out checklist.PullOutput
	err := h.exec.Do(ctx, func(ctx context.Context, uc checklist.UseCase) error {
		var err error
		out, err = uc.Pull(ctx)
		return err
	})
	if err != nil {
		h.l.Warnf(ctx, "checklist.http.Sync: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newSyncResp(out, time.Now()))
}

// Push godoc
// @Summary     Push the memo
// @Description Sends the local document to Memos.
// @Tags        Checklist
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     503 {object} response.Resp "Memos unreachable or nothing loaded"
// @Router      /api/v1/checklist/push [POST]
func (h *handler) Push(c *gin.Context) {
	ctx := c.Request.Context()

	err := h.exec.Do(ctx, func(ctx context.Context, uc checklist.UseCase) error {
		return uc.Push(ctx)
	})
	if err != nil {
		h.l.Warnf(ctx, "checklist.http.Push: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *handler) edit(c *gin.Context, op string, fn func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error)) {
	ctx := c.Request.Context()

	var panel string
	out, err := h.exec.Edit(ctx, func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error) {
		out, err := fn(ctx, uc)
		panel = uc.CurrentPanelLine()
		return out, err
	})
	if err != nil {
		h.l.Errorf(ctx, "checklist.http.%s: %v", op, err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newEditResp(out, panel))
}
