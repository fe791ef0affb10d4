package request

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageOffset(t *testing.T) {
	tests := []struct {
		from, size, want int
	}{
		{0, 10, 0},
		{-5, 10, 0},
		{5, 10, 0},
		{10, 10, 10},
		{19, 10, 10},
		{25, 10, 20},
		{3, 2, 2},
		{4, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PageOffset(tt.from, tt.size), "from=%d size=%d", tt.from, tt.size)
	}
}

func TestPageParamsValidate(t *testing.T) {
	assert.NoError(t, PageParams{From: 0, Size: 1}.Validate())
	assert.ErrorIs(t, PageParams{From: -1, Size: 10}.Validate(), ErrIncorrectPaging)
	assert.ErrorIs(t, PageParams{From: 0, Size: 0}.Validate(), ErrIncorrectPaging)
}

func TestBindPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(target string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, target, nil)
		return c
	}

	p, err := BindPage(newCtx("/items"), 20)
	require.NoError(t, err)
	assert.Equal(t, PageParams{From: 0, Size: 20}, p)

	p, err = BindPage(newCtx("/items?from=5&size=2"), 20)
	require.NoError(t, err)
	assert.Equal(t, PageParams{From: 5, Size: 2}, p)

	_, err = BindPage(newCtx("/items?size=big"), 20)
	assert.ErrorIs(t, err, ErrIncorrectPaging)
}
