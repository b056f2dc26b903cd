package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/panel", h.Panel)
	rg.GET("/popup", h.Popup)
	rg.POST("/sync", h.Sync)
	rg.POST("/push", h.Push)

	items := rg.Group("/items")
	{
		items.POST("", h.Add)
		items.POST("/:row/toggle", h.Toggle)
		items.DELETE("/:row", h.Delete)
	}
}
