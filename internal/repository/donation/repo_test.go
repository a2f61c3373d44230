package donation

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func donationRows(d model.Donation) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "image_url", "donor_name", "donor_email",
		"location", "quantity", "food_type", "pickup_window",
		"status", "verification", "claimed_by", "created_at", "updated_at",
	}).AddRow(
		d.ID, d.Title, d.Description, d.ImageURL, d.DonorName, d.DonorEmail,
		d.Location, d.Quantity, d.FoodType, d.PickupWindow,
		d.Status, d.Verification, d.ClaimedBy, d.CreatedAt, d.UpdatedAt,
	)
}

func TestCreateDonation(t *testing.T) {
	repo, mock := setupMockDB(t)

	donationID := uuid.New()
	d := model.Donation{
		Title:        "Bread surplus",
		Description:  "20 loaves from today's bake",
		DonorName:    "Corner Bakery",
		DonorEmail:   "bakery@example.com",
		Location:     "Dhaka",
		Quantity:     "20 loaves",
		FoodType:     "bakery",
		PickupWindow: "18:00-20:00",
	}

	mock.ExpectQuery(`INSERT INTO donations`).
		WithArgs(d.Title, d.Description, d.ImageURL, d.DonorName, d.DonorEmail,
			d.Location, d.Quantity, d.FoodType, d.PickupWindow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(donationID))

	id, err := repo.CreateDonation(context.Background(), d)
	assert.NoError(t, err)
	assert.Equal(t, donationID, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDonationByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	d := model.Donation{
		ID:           uuid.New(),
		Title:        "Bread surplus",
		DonorName:    "Corner Bakery",
		DonorEmail:   "bakery@example.com",
		Status:       model.DonationAvailable,
		Verification: model.VerificationVerified,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	mock.ExpectQuery(`FROM donations`).
		WithArgs(d.ID).
		WillReturnRows(donationRows(d))

	got, err := repo.GetDonationByID(context.Background(), d.ID)
	assert.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, model.DonationAvailable, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDonationStatusByID_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectQuery(`SELECT status`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetDonationStatusByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrDonationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVerification(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(`SET verification = \$1`).
		WithArgs(model.VerificationVerified, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateVerification(context.Background(), id, model.VerificationVerified)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(`SET verification = \$1`).
		WithArgs(model.VerificationRejected, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateVerification(context.Background(), id, model.VerificationRejected)
	assert.ErrorIs(t, err, ErrDonationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDonation(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(`DELETE FROM donations`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteDonation(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDonation_Claimed(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(`DELETE FROM donations`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.DeleteDonation(context.Background(), id)
	assert.ErrorIs(t, err, ErrDonationClaimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDonation_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(`DELETE FROM donations`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.DeleteDonation(context.Background(), id)
	assert.ErrorIs(t, err, ErrDonationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDonations_FilterAndEmpty(t *testing.T) {
	repo, mock := setupMockDB(t)

	d := model.Donation{
		ID:           uuid.New(),
		Title:        "Rice surplus",
		FoodType:     "cooked",
		Location:     "Dhaka",
		Status:       model.DonationAvailable,
		Verification: model.VerificationVerified,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	mock.ExpectQuery(`verification = 'verified'`).
		WithArgs("cooked", "Dhaka").
		WillReturnRows(donationRows(d))

	list, err := repo.GetDonations(context.Background(), model.DonationFilter{FoodType: "cooked", Location: "Dhaka"})
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(`verification = 'verified'`).
		WithArgs("", "").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "image_url", "donor_name", "donor_email",
			"location", "quantity", "food_type", "pickup_window",
			"status", "verification", "claimed_by", "created_at", "updated_at",
		}))

	_, err = repo.GetDonations(context.Background(), model.DonationFilter{})
	assert.ErrorIs(t, err, ErrNoDonationsFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
