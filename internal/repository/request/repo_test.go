package request

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
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

func pendingRequestRows(req model.DonationRequest) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "donation_id", "charity_name", "charity_email",
		"pickup_time", "description", "status", "created_at",
	}).AddRow(
		req.ID, req.DonationID, req.CharityName, req.CharityEmail,
		req.PickupTime, req.Description, req.Status, req.CreatedAt,
	)
}

func TestCreateRequest(t *testing.T) {
	repo, mock := setupMockDB(t)

	requestID := uuid.New()
	req := model.DonationRequest{
		DonationID:   uuid.New(),
		CharityName:  "Food Rescue",
		CharityEmail: "charity@example.com",
		PickupTime:   "2025-10-02 18:00",
		Description:  "We can pick up tonight",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status`).
		WithArgs(req.DonationID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("available"))
	mock.ExpectQuery(`INSERT INTO donation_requests`).
		WithArgs(req.DonationID, req.CharityName, req.CharityEmail, req.PickupTime, req.Description).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(requestID))
	mock.ExpectExec(`UPDATE donations`).
		WithArgs(req.CharityName, req.DonationID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.CreateRequest(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, requestID, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest_DonationNotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	req := model.DonationRequest{
		DonationID:   uuid.New(),
		CharityName:  "Food Rescue",
		CharityEmail: "charity@example.com",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status`).
		WithArgs(req.DonationID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	_, err := repo.CreateRequest(context.Background(), req)
	assert.ErrorIs(t, err, ErrDonationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest_Duplicate(t *testing.T) {
	repo, mock := setupMockDB(t)

	req := model.DonationRequest{
		DonationID:   uuid.New(),
		CharityName:  "Food Rescue",
		CharityEmail: "charity@example.com",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status`).
		WithArgs(req.DonationID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("requested"))
	mock.ExpectQuery(`INSERT INTO donation_requests`).
		WithArgs(req.DonationID, req.CharityName, req.CharityEmail, req.PickupTime, req.Description).
		WillReturnError(&pq.Error{Code: uniqueViolation})
	mock.ExpectRollback()

	_, err := repo.CreateRequest(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateRequest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequest_DonationPickedUp(t *testing.T) {
	repo, mock := setupMockDB(t)

	req := model.DonationRequest{
		DonationID:   uuid.New(),
		CharityName:  "Food Rescue",
		CharityEmail: "charity@example.com",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status`).
		WithArgs(req.DonationID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("picked_up"))
	mock.ExpectRollback()

	_, err := repo.CreateRequest(context.Background(), req)
	assert.ErrorIs(t, err, ErrDonationUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecide_Accepted_RejectsSiblings(t *testing.T) {
	repo, mock := setupMockDB(t)

	req := model.DonationRequest{
		ID:           uuid.New(),
		DonationID:   uuid.New(),
		CharityName:  "Food Rescue",
		CharityEmail: "charity@example.com",
		Status:       model.RequestPending,
		CreatedAt:    time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM donation_requests`).
		WithArgs(req.ID).
		WillReturnRows(pendingRequestRows(req))
	mock.ExpectQuery(`SELECT 1 FROM donations`).
		WithArgs(req.DonationID).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectExec(`SET status = 'accepted'`).
		WithArgs(req.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	loserID := uuid.New()
	mock.ExpectQuery(`SET status = 'rejected'`).
		WithArgs(req.DonationID, req.ID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "charity_name", "charity_email"}).
			AddRow(loserID, "City Shelter", "shelter@example.com"))
	mock.ExpectCommit()

	got, losers, err := repo.Decide(context.Background(), req.ID, model.RequestAccepted)
	assert.NoError(t, err)
	assert.Equal(t, model.RequestAccepted, got.Status)
	assert.Equal(t, req.DonationID, got.DonationID)
	assert.Len(t, losers, 1)
	assert.Equal(t, loserID, losers[0].ID)
	assert.Equal(t, model.RequestRejected, losers[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A donation whose winner was already accepted can still see a later
// accept; the broadcast must sweep up the previous winner, not just the
// pending siblings, so the donation never holds two accepted requests.
func TestDecide_Accepted_SupersedesPriorWinner(t *testing.T) {
	repo, mock := setupMockDB(t)

	req := model.DonationRequest{
		ID:           uuid.New(),
		DonationID:   uuid.New(),
		CharityName:  "City Shelter",
		CharityEmail: "shelter@example.com",
		Status:       model.RequestPending,
		CreatedAt:    time.Now(),
	}
	priorWinnerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM donation_requests`).
		WithArgs(req.ID).
		WillReturnRows(pendingRequestRows(req))
	mock.ExpectQuery(`SELECT 1 FROM donations`).
		WithArgs(req.DonationID).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectExec(`SET status = 'accepted'`).
		WithArgs(req.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`status IN \('pending', 'accepted'\)`).
		WithArgs(req.DonationID, req.ID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "charity_name", "charity_email"}).
			AddRow(priorWinnerID, "Food Rescue", "charity@example.com"))
	mock.ExpectCommit()

	got, losers, err := repo.Decide(context.Background(), req.ID, model.RequestAccepted)
	assert.NoError(t, err)
	assert.Equal(t, model.RequestAccepted, got.Status)
	assert.Len(t, losers, 1)
	assert.Equal(t, priorWinnerID, losers[0].ID)
	assert.Equal(t, model.RequestRejected, losers[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecide_Rejected_LeavesSiblingsAlone(t *testing.T) {
	repo, mock := setupMockDB(t)

	req := model.DonationRequest{
		ID:           uuid.New(),
		DonationID:   uuid.New(),
		CharityName:  "Food Rescue",
		CharityEmail: "charity@example.com",
		Status:       model.RequestPending,
		CreatedAt:    time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM donation_requests`).
		WithArgs(req.ID).
		WillReturnRows(pendingRequestRows(req))
	mock.ExpectExec(`SET status = 'rejected'`).
		WithArgs(req.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, losers, err := repo.Decide(context.Background(), req.ID, model.RequestRejected)
	assert.NoError(t, err)
	assert.Equal(t, model.RequestRejected, got.Status)
	assert.Empty(t, losers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecide_AlreadyDecided(t *testing.T) {
	repo, mock := setupMockDB(t)

	req := model.DonationRequest{
		ID:           uuid.New(),
		DonationID:   uuid.New(),
		CharityName:  "Food Rescue",
		CharityEmail: "charity@example.com",
		Status:       model.RequestRejected,
		CreatedAt:    time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM donation_requests`).
		WithArgs(req.ID).
		WillReturnRows(pendingRequestRows(req))
	mock.ExpectRollback()

	_, _, err := repo.Decide(context.Background(), req.ID, model.RequestAccepted)
	assert.ErrorIs(t, err, ErrRequestDecided)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecide_RequestNotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM donation_requests`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "donation_id", "charity_name", "charity_email",
			"pickup_time", "description", "status", "created_at",
		}))
	mock.ExpectRollback()

	_, _, err := repo.Decide(context.Background(), id, model.RequestAccepted)
	assert.ErrorIs(t, err, ErrRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelRequest(t *testing.T) {
	repo, mock := setupMockDB(t)

	req := model.DonationRequest{
		ID:           uuid.New(),
		DonationID:   uuid.New(),
		CharityName:  "Food Rescue",
		CharityEmail: "charity@example.com",
		Status:       model.RequestPending,
		CreatedAt:    time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM donation_requests`).
		WithArgs(req.ID).
		WillReturnRows(pendingRequestRows(req))
	mock.ExpectExec(`DELETE FROM donation_requests`).
		WithArgs(req.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`SET status = 'available'`).
		WithArgs(req.DonationID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.CancelRequest(context.Background(), req.ID)
	assert.NoError(t, err)
	assert.Equal(t, req.DonationID, got.DonationID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelRequest_NotPending(t *testing.T) {
	repo, mock := setupMockDB(t)

	req := model.DonationRequest{
		ID:           uuid.New(),
		DonationID:   uuid.New(),
		CharityName:  "Food Rescue",
		CharityEmail: "charity@example.com",
		Status:       model.RequestAccepted,
		CreatedAt:    time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM donation_requests`).
		WithArgs(req.ID).
		WillReturnRows(pendingRequestRows(req))
	mock.ExpectRollback()

	_, err := repo.CancelRequest(context.Background(), req.ID)
	assert.ErrorIs(t, err, ErrRequestNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmPickup(t *testing.T) {
	repo, mock := setupMockDB(t)

	req := model.DonationRequest{
		ID:           uuid.New(),
		DonationID:   uuid.New(),
		CharityName:  "Food Rescue",
		CharityEmail: "charity@example.com",
		Status:       model.RequestAccepted,
		CreatedAt:    time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM donation_requests`).
		WithArgs(req.ID).
		WillReturnRows(pendingRequestRows(req))
	mock.ExpectExec(`SET status = 'picked_up'`).
		WithArgs(req.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE donations`).
		WithArgs(req.DonationID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.ConfirmPickup(context.Background(), req.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.RequestPickedUp, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmPickup_NotAccepted(t *testing.T) {
	repo, mock := setupMockDB(t)

	req := model.DonationRequest{
		ID:           uuid.New(),
		DonationID:   uuid.New(),
		CharityName:  "Food Rescue",
		CharityEmail: "charity@example.com",
		Status:       model.RequestPending,
		CreatedAt:    time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM donation_requests`).
		WithArgs(req.ID).
		WillReturnRows(pendingRequestRows(req))
	mock.ExpectRollback()

	_, err := repo.ConfirmPickup(context.Background(), req.ID)
	assert.ErrorIs(t, err, ErrRequestNotAccepted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequestByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "donation_id", "title", "donor_email", "charity_name",
		"charity_email", "pickup_time", "description", "status", "created_at",
	}).AddRow(id, uuid.New(), "Bread surplus", "donor@example.com", "Food Rescue",
		"a@example.com", "18:00", "", "pending", time.Now())

	mock.ExpectQuery(`WHERE r\.id = \$1`).
		WithArgs(id).
		WillReturnRows(rows)

	req, err := repo.GetRequestByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, id, req.ID)
	assert.Equal(t, "Bread surplus", req.DonationTitle)
	assert.Equal(t, "donor@example.com", req.DonorEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequestByID_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectQuery(`WHERE r\.id = \$1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRequestByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequestsByDonation(t *testing.T) {
	repo, mock := setupMockDB(t)

	donationID := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "donation_id", "title", "charity_name", "charity_email",
		"pickup_time", "description", "status", "created_at",
	}).
		AddRow(uuid.New(), donationID, "Bread surplus", "Food Rescue", "a@example.com",
			"18:00", "", "pending", time.Now()).
		AddRow(uuid.New(), donationID, "Bread surplus", "City Shelter", "b@example.com",
			"19:00", "", "pending", time.Now())

	mock.ExpectQuery(`WHERE r\.donation_id = \$1`).
		WithArgs(donationID).
		WillReturnRows(rows)

	list, err := repo.GetRequestsByDonation(context.Background(), donationID)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequestsByCharity_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(`WHERE r\.charity_email = \$1`).
		WithArgs("charity@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "donation_id", "title", "charity_name", "charity_email",
			"pickup_time", "description", "status", "created_at",
		}))

	_, err := repo.GetRequestsByCharity(context.Background(), "charity@example.com")
	assert.ErrorIs(t, err, ErrNoRequestsFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
