package http

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/booking"
	itemHttp "github.com/nekogravitycat/shareit-backend/internal/item/http"
	userHttp "github.com/nekogravitycat/shareit-backend/internal/user/http"
)

// BookingResponse carries the booked item and the booker in full.
type BookingResponse struct {
	ID     int64                 `json:"id"`
	Start  time.Time             `json:"start"`
	End    time.Time             `json:"end"`
	Status string                `json:"status"`
	Item   itemHttp.ItemResponse `json:"item"`
	Booker userHttp.UserResponse `json:"booker"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Item:   itemHttp.NewItemResponse(&b.Item),
		Booker: userHttp.NewUserResponse(&b.Booker),
	}
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required,min=1"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// DecideBookingRequest binds the approved query parameter of PATCH /bookings/:id.
type DecideBookingRequest struct {
	Approved *bool `form:"approved" binding:"required"`
}
