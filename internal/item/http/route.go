package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *ItemHandler, callerMiddleware gin.HandlerFunc) {
	group := g.Group("/items")
	group.Use(callerMiddleware)
	{
		group.POST("", h.Create)       // List a new item
		group.GET("", h.ListMine)      // Caller's items
		group.GET("/search", h.Search) // Search available items
		group.GET("/:id", h.Get)       // Item view
		group.PATCH("/:id", h.Update)  // Owner patch
	}
}
