package request

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

var (
	ErrIncorrectPaging = apperror.Validation("Incorrect parameters")
)

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// PageParams holds the from/size query parameters shared by list endpoints.
type PageParams struct {
	From int
	Size int
}

// BindPage reads from/size from the query string, defaulting from to 0 and
// size to defaultSize. Non-numeric values are rejected.
func BindPage(c *gin.Context, defaultSize int) (PageParams, error) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		return PageParams{}, ErrIncorrectPaging
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if err != nil {
		return PageParams{}, ErrIncorrectPaging
	}
	return PageParams{From: from, Size: size}, nil
}

// Validate rejects a negative offset or a non-positive size.
func (p PageParams) Validate() error {
	if p.From < 0 || p.Size < 1 {
		return ErrIncorrectPaging
	}
	return nil
}

// PageOffset converts from/size into the row offset of the page that contains
// row `from`, i.e. (from / size) * size. A row offset that is not a multiple of
// size is truncated down to the start of its page.
func PageOffset(from, size int) int {
	if from <= 0 || size <= 0 {
		return 0
	}
	return (from / size) * size
}
