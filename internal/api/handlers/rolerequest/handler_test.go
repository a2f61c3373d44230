package rolerequest

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/zlog"

	"github.com/niloyahmadramjan/surplusshare-server/internal/api/middleware"
	mocks "github.com/niloyahmadramjan/surplusshare-server/internal/mocks/api/handlers/rolerequest"
	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
	"github.com/niloyahmadramjan/surplusshare-server/internal/repository/rolerequest"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockroleRequestService, *gomock.Controller) {
	t.Helper()
	zlog.Init()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	service := mocks.NewMockroleRequestService(ctrl)

	return NewHandler(service, validator.New()), service, ctrl
}

func newTestContext(w *httptest.ResponseRecorder, method, body string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	c.Set(middleware.CtxEmail, "user@example.com")
	c.Set(middleware.CtxName, "Sam")
	return c
}

func TestCreate(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	id := uuid.New()

	service.EXPECT().
		CreateRoleRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, rr model.CharityRoleRequest) (uuid.UUID, error) {
			assert.Equal(t, "user@example.com", rr.UserEmail)
			assert.Equal(t, "City Shelter", rr.Organization)
			return id, nil
		})

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodPost, `{"organization":"City Shelter","mission":"feeding the homeless"}`)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
}

func TestCreate_Duplicate(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	service.EXPECT().
		CreateRoleRequest(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, rolerequest.ErrDuplicateRoleRequest)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodPost, `{"organization":"City Shelter","mission":"feeding the homeless"}`)

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDecide_Approved(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	id := uuid.New()

	service.EXPECT().
		DecideRoleRequest(gomock.Any(), id, model.RoleRequestApproved).
		Return(nil)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodPatch, `{"status":"approved"}`)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Decide(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDecide_InvalidStatus(t *testing.T) {
	h, _, ctrl := setupHandler(t)
	defer ctrl.Finish()

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodPatch, `{"status":"pending"}`)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

	h.Decide(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMine_NotFound(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	service.EXPECT().
		GetRoleRequestByEmail(gomock.Any(), "user@example.com").
		Return(model.CharityRoleRequest{}, rolerequest.ErrRoleRequestNotFound)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "")

	h.GetMine(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
