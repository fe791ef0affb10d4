package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *CommentHandler, callerMiddleware gin.HandlerFunc) {
	g.POST("/items/:id/comment", callerMiddleware, h.Create)
}
