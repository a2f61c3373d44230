package donation

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
	"github.com/niloyahmadramjan/surplusshare-server/internal/config"
	mocks "github.com/niloyahmadramjan/surplusshare-server/internal/mocks/api/handlers/donation"
	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
	"github.com/niloyahmadramjan/surplusshare-server/internal/repository/donation"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockdonationService, *gomock.Controller) {
	t.Helper()
	zlog.Init()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	service := mocks.NewMockdonationService(ctrl)
	cfg := &config.Config{}
	cfg.Retry.Attempts = 1

	return NewHandler(service, validator.New(), cfg), service, ctrl
}

func newTestContext(w *httptest.ResponseRecorder, method, target, body string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	c.Set(middleware.CtxEmail, "donor@example.com")
	c.Set(middleware.CtxName, "Corner Bakery")
	return c
}

func TestCreate(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	id := uuid.New()

	service.EXPECT().
		CreateDonation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ interface{}, d model.Donation) (uuid.UUID, error) {
			assert.Equal(t, "Day-old pastries", d.Title)
			assert.Equal(t, "donor@example.com", d.DonorEmail)
			assert.Equal(t, "Corner Bakery", d.DonorName)
			return id, nil
		})

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodPost, "/", `{
		"title": "Day-old pastries",
		"location": "12 Baker St",
		"quantity": "3 boxes",
		"food_type": "bakery",
		"pickup_window": "17:00-19:00"
	}`)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
}

func TestCreate_MissingFields(t *testing.T) {
	h, _, ctrl := setupHandler(t)
	defer ctrl.Finish()

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodPost, "/", `{"title":"Day-old pastries"}`)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_Filtered(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	service.EXPECT().
		GetDonations(gomock.Any(), model.DonationFilter{FoodType: "bakery", Location: "Baker"}).
		Return([]model.Donation{{ID: uuid.New(), Title: "Day-old pastries"}}, nil)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "/?food_type=bakery&location=Baker", "")

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Day-old pastries")
}

func TestList_Empty(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	service.EXPECT().
		GetDonations(gomock.Any(), gomock.Any()).
		Return(nil, donation.ErrNoDonationsFound)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "/", "")

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGet_NotFound(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	id := uuid.New()

	service.EXPECT().
		GetDonationByID(gomock.Any(), id).
		Return(model.Donation{}, donation.ErrDonationNotFound)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "/", "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStatus(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	id := uuid.New()

	service.EXPECT().
		GetDonationStatusByID(gomock.Any(), gomock.Any(), id).
		Return(string(model.DonationRequested), nil)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodGet, "/", "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "requested")
}

func TestVerify(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	id := uuid.New()

	service.EXPECT().
		SetVerification(gomock.Any(), id, model.VerificationVerified).
		Return(nil)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodPatch, "/", `{"verification":"verified"}`)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerify_InvalidValue(t *testing.T) {
	h, _, ctrl := setupHandler(t)
	defer ctrl.Finish()

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodPatch, "/", `{"verification":"maybe"}`)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

	h.Verify(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDelete_Claimed(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	id := uuid.New()

	service.EXPECT().
		GetDonationByID(gomock.Any(), id).
		Return(model.Donation{ID: id, DonorEmail: "donor@example.com"}, nil)
	service.EXPECT().
		DeleteDonation(gomock.Any(), id).
		Return(donation.ErrDonationClaimed)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodDelete, "/", "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDelete(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	id := uuid.New()

	service.EXPECT().
		GetDonationByID(gomock.Any(), id).
		Return(model.Donation{ID: id, DonorEmail: "donor@example.com"}, nil)
	service.EXPECT().
		DeleteDonation(gomock.Any(), id).
		Return(nil)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodDelete, "/", "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDelete_NotOwner(t *testing.T) {
	h, service, ctrl := setupHandler(t)
	defer ctrl.Finish()

	id := uuid.New()

	service.EXPECT().
		GetDonationByID(gomock.Any(), id).
		Return(model.Donation{ID: id, DonorEmail: "someone-else@example.com"}, nil)

	w := httptest.NewRecorder()
	c := newTestContext(w, http.MethodDelete, "/", "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
