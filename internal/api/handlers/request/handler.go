package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/niloyahmadramjan/surplusshare-server/internal/api/middleware"
	"github.com/niloyahmadramjan/surplusshare-server/internal/api/respond"
	"github.com/niloyahmadramjan/surplusshare-server/internal/config"
	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
	"github.com/niloyahmadramjan/surplusshare-server/internal/repository/request"
	"github.com/niloyahmadramjan/surplusshare-server/internal/service/arbitration"
)

// arbitrationService defines the interface that the Handler depends on.
//
// It abstracts the claim lifecycle: submitting, deciding, cancelling and
// confirming pickup of donation requests.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/request/mock.go -package=mocks
type arbitrationService interface {
	SubmitRequest(ctx context.Context, strategy retry.Strategy, req model.DonationRequest) (uuid.UUID, error)
	DecideRequest(ctx context.Context, strategy retry.Strategy, id uuid.UUID, decision model.RequestStatus) (model.DonationRequest, error)
	CancelRequest(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error
	ConfirmPickup(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.DonationRequest, error)
	GetRequest(ctx context.Context, id uuid.UUID) (model.DonationRequest, error)
	GetRequestsByDonation(ctx context.Context, donationID uuid.UUID) ([]model.DonationRequest, error)
	GetRequestsByCharity(ctx context.Context, charityEmail string) ([]model.DonationRequest, error)
}

// Handler handles HTTP requests for the claim request lifecycle.
type Handler struct {
	service   arbitrationService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s arbitrationService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// SubmitRequest represents the JSON body of a claim submission.
type SubmitRequest struct {
	PickupTime  string `json:"pickup_time" validate:"required"`
	Description string `json:"description"`
}

// DecideRequest represents the JSON body of an accept/reject decision.
type DecideRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// Submit handles POST /donations/:id/requests. The charity identity comes
// from the verified token, never from the body.
func (h *Handler) Submit(c *ginext.Context) {
	donationID, ok := parseID(c)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	donReq := model.DonationRequest{
		DonationID:   donationID,
		CharityName:  c.GetString(middleware.CtxName),
		CharityEmail: c.GetString(middleware.CtxEmail),
		PickupTime:   req.PickupTime,
		Description:  req.Description,
	}

	id, err := h.service.SubmitRequest(c.Request.Context(), h.cfg.Retry, donReq)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrDonationNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("donation not found"))
		case errors.Is(err, request.ErrDonationUnavailable):
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("donation no longer available"))
		case errors.Is(err, request.ErrDuplicateRequest):
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("already requested"))
		default:
			zlog.Logger.Error().Err(err).Str("donation_id", donationID.String()).Msg("failed to submit request")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.Created(c.Writer, id)
}

// Decide handles PATCH /donation-requests/:id/status. Only the donation's
// donor and admins may decide.
func (h *Handler) Decide(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if !h.requireDonor(c, id) {
		return
	}

	var req DecideRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("status must be accepted or rejected"))
		return
	}

	decided, err := h.service.DecideRequest(c.Request.Context(), h.cfg.Retry, id, model.RequestStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, request.ErrRequestNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("request not found"))
		case errors.Is(err, arbitration.ErrInvalidDecision), errors.Is(err, request.ErrRequestDecided):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		default:
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to decide request")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, decided)
}

// Cancel handles DELETE /donation-requests/:id.
func (h *Handler) Cancel(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.service.CancelRequest(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrRequestNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("request not found"))
		case errors.Is(err, request.ErrRequestNotPending):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		default:
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cancel request")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, "request canceled")
}

// ConfirmPickup handles PATCH /donation-requests/:id/confirm-pickup. Only
// the donation's donor and admins may confirm.
func (h *Handler) ConfirmPickup(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if !h.requireDonor(c, id) {
		return
	}

	confirmed, err := h.service.ConfirmPickup(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrRequestNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("request not found"))
		case errors.Is(err, request.ErrRequestNotAccepted):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		default:
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to confirm pickup")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, confirmed)
}

// Get handles GET /donation-requests/:id. Only the charity that filed the
// request, the donation's donor and admins may read it.
func (h *Handler) Get(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	req, err := h.service.GetRequest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, request.ErrRequestNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("request not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get request")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	caller := c.GetString(middleware.CtxEmail)
	if req.CharityEmail != caller && req.DonorEmail != caller && c.GetString(middleware.CtxRole) != model.RoleAdmin {
		respond.Fail(c.Writer, http.StatusForbidden, fmt.Errorf("forbidden"))
		return
	}

	respond.OK(c.Writer, req)
}

// ListByDonation handles GET /donations/:id/requests.
func (h *Handler) ListByDonation(c *ginext.Context) {
	donationID, ok := parseID(c)
	if !ok {
		return
	}

	requests, err := h.service.GetRequestsByDonation(c.Request.Context(), donationID)
	if err != nil {
		if errors.Is(err, request.ErrNoRequestsFound) {
			respond.OK(c.Writer, []model.DonationRequest{})
			return
		}

		zlog.Logger.Error().Err(err).Str("donation_id", donationID.String()).Msg("failed to list requests")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, requests)
}

// ListMine handles GET /donation-requests for the authenticated charity.
func (h *Handler) ListMine(c *ginext.Context) {
	email := c.GetString(middleware.CtxEmail)

	requests, err := h.service.GetRequestsByCharity(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, request.ErrNoRequestsFound) {
			respond.OK(c.Writer, []model.DonationRequest{})
			return
		}

		zlog.Logger.Error().Err(err).Str("email", email).Msg("failed to list requests")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, requests)
}

// requireDonor loads the request and rejects the call unless the caller
// is the donor of the underlying donation or an admin. Writes the error
// response itself and reports whether the caller may proceed.
func (h *Handler) requireDonor(c *ginext.Context, id uuid.UUID) bool {
	req, err := h.service.GetRequest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, request.ErrRequestNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("request not found"))
			return false
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get request")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return false
	}

	if req.DonorEmail != c.GetString(middleware.CtxEmail) && c.GetString(middleware.CtxRole) != model.RoleAdmin {
		respond.Fail(c.Writer, http.StatusForbidden, fmt.Errorf("forbidden"))
		return false
	}

	return true
}

func parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return uuid.Nil, false
	}

	return id, true
}
