package user

import (
	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("user not found")
	ErrEmailAlreadyUsed = apperror.AlreadyExists("email address already in use")
	ErrNameRequired     = apperror.Validation("name is required")
	ErrEmailRequired    = apperror.Validation("email is required")
	ErrStillReferenced  = apperror.AlreadyExists("user is still referenced by other records")
)

// User represents a member of the sharing community.
type User struct {
	ID    int64
	Name  string
	Email string
}
