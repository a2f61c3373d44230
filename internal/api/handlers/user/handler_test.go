package user

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/zlog"

	"github.com/niloyahmadramjan/surplusshare-server/internal/api/middleware"
	mocks "github.com/niloyahmadramjan/surplusshare-server/internal/mocks/api/handlers/user"
	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
	"github.com/niloyahmadramjan/surplusshare-server/internal/repository/user"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockuserService, *gomock.Controller) {
	t.Helper()
	zlog.Init()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	service := mocks.NewMockuserService(ctrl)

	return NewHandler(service, validator.New()), service, ctrl
}

func newTestContext(w *httptest.ResponseRecorder, method, body string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	c.Set(middleware.CtxEmail, "user@example.com")
	c.Set(middleware.CtxName, "Jordan Smith")
	return c
}

func TestUpsert(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	service.EXPECT().
		UpsertUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, u model.User) error {
			assert.Equal(t, "user@example.com", u.Email)
			assert.Equal(t, "Jordan Smith", u.Name)
			assert.Equal(t, "https://example.com/p.png", u.PhotoURL)
			return nil
		})

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodPut, `{"photo_url":"https://example.com/p.png"}`)

	h.Upsert(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpsert_InvalidPhotoURL(t *testing.T) {
	h, _, ctrl := setupHandler(t)
	defer ctrl.Finish()

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodPut, `{"photo_url":"not a url"}`)

	h.Upsert(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGet_Self(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	service.EXPECT().
		GetUserByEmail(gomock.Any(), "user@example.com").
		Return(model.User{Email: "user@example.com", Name: "Jordan Smith"}, nil)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "")
	c.Params = gin.Params{{Key: "email", Value: "user@example.com"}}

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jordan Smith")
}

func TestGet_OtherUserForbidden(t *testing.T) {
	h, _, ctrl := setupHandler(t)
	defer ctrl.Finish()

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "")
	c.Params = gin.Params{{Key: "email", Value: "someone-else@example.com"}}

	h.Get(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGet_AdminSeesAnyone(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	service.EXPECT().
		GetUserByEmail(gomock.Any(), "someone-else@example.com").
		Return(model.User{Email: "someone-else@example.com"}, nil)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "")
	c.Set(middleware.CtxRole, model.RoleAdmin)
	c.Params = gin.Params{{Key: "email", Value: "someone-else@example.com"}}

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGet_NotFound(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	service.EXPECT().
		GetUserByEmail(gomock.Any(), "user@example.com").
		Return(model.User{}, user.ErrUserNotFound)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "")
	c.Params = gin.Params{{Key: "email", Value: "user@example.com"}}

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
