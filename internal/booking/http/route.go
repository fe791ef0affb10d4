package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, callerMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(callerMiddleware)
	{
		group.POST("", h.Create)         // Request a booking
		group.GET("", h.ListMine)        // Caller's bookings
		group.GET("/owner", h.ListOwned) // Bookings of caller's items
		group.GET("/:id", h.Get)         // Booking details
		group.PATCH("/:id", h.Decide)    // Approve or reject
	}
}
