package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"memos-widget/internal/checklist"
	"memos-widget/internal/scheduler"
	"memos-widget/pkg/response"
)

var errInvalidRow = errors.New("row must be a non-negative integer")

// mapError translates use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checklist.ErrIndexOutOfRange):
		response.NotFound(c, err)
	case errors.Is(err, checklist.ErrRemoteUnavailable),
		errors.Is(err, checklist.ErrNoDocument),
		errors.Is(err, scheduler.ErrStopped):
		response.ServiceUnavailable(c, err)
	default:
		response.InternalError(c, err)
	}
}

func parseRow(c *gin.Context) (int, error) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil || row < 0 {
		return 0, errInvalidRow
	}
	return row, nil
}
