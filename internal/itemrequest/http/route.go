package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *ItemRequestHandler, callerMiddleware gin.HandlerFunc) {
	group := g.Group("/requests")
	group.Use(callerMiddleware)
	{
		group.POST("", h.Create)
		group.GET("", h.ListMine)
		group.GET("/all", h.ListOthers)
		group.GET("/:id", h.Get)
	}
}
