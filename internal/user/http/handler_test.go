package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nekogravitycat/shareit-backend/internal/user"
	"github.com/nekogravitycat/shareit-backend/internal/user/usertest"
)

func setupRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group(""), NewHandler(svc))
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateUser(t *testing.T) {
	svc := new(usertest.MockService)
	svc.On("Create", mock.Anything, user.CreateRequest{Name: "Ann", Email: "ann@mail.io"}).
		Return(&user.User{ID: 1, Name: "Ann", Email: "ann@mail.io"}, nil)
	svc.On("Create", mock.Anything, user.CreateRequest{Name: "Bob", Email: "ann@mail.io"}).
		Return(nil, user.ErrEmailAlreadyUsed)
	r := setupRouter(svc)

	w := do(r, http.MethodPost, "/users", `{"name":"Ann","email":"ann@mail.io"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Ann","email":"ann@mail.io"}`, w.Body.String())

	w = do(r, http.MethodPost, "/users", `{"name":"Bob","email":"ann@mail.io"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"email address already in use"}`, w.Body.String())

	w = do(r, http.MethodPost, "/users", `{"name":"Eve","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNumberOfCalls(t, "Create", 2)
}

func TestGetUser(t *testing.T) {
	svc := new(usertest.MockService).Unknown(9)
	svc.On("GetByID", mock.Anything, int64(1)).Return(&user.User{ID: 1, Name: "Ann", Email: "ann@mail.io"}, nil)
	r := setupRouter(svc)

	w := do(r, http.MethodGet, "/users/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Ann","email":"ann@mail.io"}`, w.Body.String())

	w = do(r, http.MethodGet, "/users/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUsers(t *testing.T) {
	svc := new(usertest.MockService)
	svc.On("List", mock.Anything).Return([]*user.User{}, nil)

	w := do(setupRouter(svc), http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdateUser(t *testing.T) {
	name := "Anna"
	svc := new(usertest.MockService)
	svc.On("Update", mock.Anything, int64(1), user.UpdateRequest{Name: &name}).
		Return(&user.User{ID: 1, Name: "Anna", Email: "ann@mail.io"}, nil)
	svc.On("Update", mock.Anything, int64(9), mock.Anything).Return(nil, user.ErrNotFound)
	r := setupRouter(svc)

	w := do(r, http.MethodPatch, "/users/1", `{"name":"Anna"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Anna"`)

	w = do(r, http.MethodPatch, "/users/9", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	svc := new(usertest.MockService)
	svc.On("Delete", mock.Anything, int64(1)).Return(nil)
	svc.On("Delete", mock.Anything, int64(2)).Return(user.ErrStillReferenced)
	svc.On("Delete", mock.Anything, int64(9)).Return(user.ErrNotFound)
	r := setupRouter(svc)

	w := do(r, http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, http.MethodDelete, "/users/2", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodDelete, "/users/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
