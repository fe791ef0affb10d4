package booking

import (
	"time"

	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/shareit-backend/internal/user"
)

var (
	ErrNotFound         = apperror.NotFound("booking not found")
	ErrWrongOwner       = apperror.NotFound("wrong owner")
	ErrNotVisible       = apperror.NotFound("booking is unavailable")
	ErrItemUnavailable  = apperror.Unavailable("item is unavailable for booking")
	ErrInvalidTimeRange = apperror.Unavailable("booking time range is invalid")
	ErrAlreadyConfirmed = apperror.Unavailable("booking is already confirmed")
	ErrUnknownState     = apperror.Validation("Unknown state: UNSUPPORTED_STATUS")
	ErrUnknownStatus    = apperror.Validation("unknown booking status")
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// ParseStatus maps a stored or submitted token to a Status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusWaiting, StatusApproved, StatusRejected:
		return st, nil
	}
	return "", ErrUnknownStatus
}

// State selects which bookings a list query returns.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
	StateApproved State = "APPROVED"
)

// ParseState matches s exactly, case-sensitive.
func ParseState(s string) (State, error) {
	switch st := State(s); st {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected, StateApproved:
		return st, nil
	}
	return "", ErrUnknownState
}

// Booking is a request by a booker to use an item for [Start, End].
// Item and booker references never change after creation.
type Booking struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status Status
	Item   item.Item
	Booker user.User
}

// Filter narrows a booking list to one booker or to the items of one owner.
// Exactly one of BookerID and OwnerID is set.
type Filter struct {
	BookerID int64
	OwnerID  int64
	State    State
	Now      time.Time
	Limit    int
	Offset   int
}
