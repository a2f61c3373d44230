package donation

import (
	"context"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/niloyahmadramjan/surplusshare-server/internal/mocks/service/donation"
	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
	donationrepo "github.com/niloyahmadramjan/surplusshare-server/internal/repository/donation"
)

func setupService(t *testing.T) (*Service, *mocks.MockdonationRepository, *mocks.Mockcache) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockdonationRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	return NewService(repoMock, cacheMock), repoMock, cacheMock
}

func TestService_CreateDonation(t *testing.T) {
	svc, repoMock, cacheMock := setupService(t)

	donationID := uuid.New()
	d := model.Donation{
		Title:      "Bread surplus",
		DonorName:  "Corner Bakery",
		DonorEmail: "bakery@example.com",
	}
	strategy := retry.Strategy{}

	repoMock.EXPECT().CreateDonation(gomock.Any(), d).Return(donationID, nil)
	cacheMock.EXPECT().
		SetWithRetry(gomock.Any(), strategy, donationID.String(), string(model.DonationAvailable)).
		Return(nil)

	id, err := svc.CreateDonation(context.Background(), strategy, d)
	assert.NoError(t, err)
	assert.Equal(t, donationID, id)
}

func TestService_GetDonationStatusByID_CacheHit(t *testing.T) {
	svc, _, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return("requested", nil)

	status, err := svc.GetDonationStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, "requested", status)
}

func TestService_GetDonationStatusByID_CacheMiss(t *testing.T) {
	svc, repoMock, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return("", redis.Nil)
	repoMock.EXPECT().GetDonationStatusByID(gomock.Any(), id).Return("available", nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), "available").Return(nil)

	status, err := svc.GetDonationStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, "available", status)
}

func TestService_GetDonationStatusByID_NotFound(t *testing.T) {
	svc, repoMock, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return("", redis.Nil)
	repoMock.EXPECT().GetDonationStatusByID(gomock.Any(), id).Return("", donationrepo.ErrDonationNotFound)

	_, err := svc.GetDonationStatusByID(context.Background(), strategy, id)
	assert.ErrorIs(t, err, donationrepo.ErrDonationNotFound)
}

func TestService_DeleteDonation(t *testing.T) {
	svc, repoMock, cacheMock := setupService(t)

	id := uuid.New()

	repoMock.EXPECT().DeleteDonation(gomock.Any(), id).Return(nil)
	cacheMock.EXPECT().Del(gomock.Any(), id.String()).Return(redis.NewIntResult(1, nil))

	err := svc.DeleteDonation(context.Background(), id)
	assert.NoError(t, err)
}

func TestService_DeleteDonation_Claimed(t *testing.T) {
	svc, repoMock, _ := setupService(t)

	id := uuid.New()

	repoMock.EXPECT().DeleteDonation(gomock.Any(), id).Return(donationrepo.ErrDonationClaimed)

	err := svc.DeleteDonation(context.Background(), id)
	assert.ErrorIs(t, err, donationrepo.ErrDonationClaimed)
}

func TestService_SetVerification(t *testing.T) {
	svc, repoMock, _ := setupService(t)

	id := uuid.New()

	repoMock.EXPECT().UpdateVerification(gomock.Any(), id, model.VerificationVerified).Return(nil)

	err := svc.SetVerification(context.Background(), id, model.VerificationVerified)
	assert.NoError(t, err)
}

func TestService_SetVerification_InvalidStatus(t *testing.T) {
	svc, _, _ := setupService(t)

	err := svc.SetVerification(context.Background(), uuid.New(), model.VerificationPending)
	assert.Error(t, err)
}
