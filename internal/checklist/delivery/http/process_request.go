package http

import "github.com/gin-gonic/gin"

// processAddReq binds the add item request body.
func (h *handler) processAddReq(c *gin.Context) (addReq, error) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processPopupReq binds the popup query parameters.
func (h *handler) processPopupReq(c *gin.Context) (popupReq, error) {
	var req popupReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
