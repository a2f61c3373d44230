package donation

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
	"github.com/niloyahmadramjan/surplusshare-server/internal/repository/donation"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/donation/mock.go -package=mocks

type donationService interface {
	CreateDonation(ctx context.Context, strategy retry.Strategy, d model.Donation) (uuid.UUID, error)
	GetDonationByID(ctx context.Context, id uuid.UUID) (model.Donation, error)
	GetDonations(ctx context.Context, filter model.DonationFilter) ([]model.Donation, error)
	GetAllDonations(ctx context.Context) ([]model.Donation, error)
	GetDonationsByDonor(ctx context.Context, donorEmail string) ([]model.Donation, error)
	GetDonationStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error)
	SetVerification(ctx context.Context, id uuid.UUID, v model.Verification) error
	DeleteDonation(ctx context.Context, id uuid.UUID) error
}

// Handler handles HTTP requests for donation listings.
type Handler struct {
	service   donationService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s donationService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// CreateRequest represents the JSON body of a donation listing.
type CreateRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	Location     string `json:"location" validate:"required"`
	Quantity     string `json:"quantity" validate:"required"`
	FoodType     string `json:"food_type" validate:"required"`
	PickupWindow string `json:"pickup_window" validate:"required"`
}

// VerifyRequest represents the JSON body of an admin verification decision.
type VerifyRequest struct {
	Verification string `json:"verification" validate:"required,oneof=verified rejected"`
}

// Create handles POST /donations. The donor identity comes from the
// verified token.
func (h *Handler) Create(c *ginext.Context) {
	var req CreateRequest
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

	d := model.Donation{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		DonorName:    c.GetString(middleware.CtxName),
		DonorEmail:   c.GetString(middleware.CtxEmail),
		Location:     req.Location,
		Quantity:     req.Quantity,
		FoodType:     req.FoodType,
		PickupWindow: req.PickupWindow,
	}

	id, err := h.service.CreateDonation(c.Request.Context(), h.cfg.Retry, d)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to create donation")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// List handles GET /donations: verified donations only, with optional
// food_type and location query filters.
func (h *Handler) List(c *ginext.Context) {
	filter := model.DonationFilter{
		FoodType: c.Query("food_type"),
		Location: c.Query("location"),
	}

	donations, err := h.service.GetDonations(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, donation.ErrNoDonationsFound) {
			respond.OK(c.Writer, []model.Donation{})
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to list donations")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, donations)
}

// ListAll handles GET /admin/donations: every donation regardless of
// verification.
func (h *Handler) ListAll(c *ginext.Context) {
	donations, err := h.service.GetAllDonations(c.Request.Context())
	if err != nil {
		if errors.Is(err, donation.ErrNoDonationsFound) {
			respond.OK(c.Writer, []model.Donation{})
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to list all donations")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, donations)
}

// ListMine handles GET /my-donations for the authenticated donor.
func (h *Handler) ListMine(c *ginext.Context) {
	email := c.GetString(middleware.CtxEmail)

	donations, err := h.service.GetDonationsByDonor(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, donation.ErrNoDonationsFound) {
			respond.OK(c.Writer, []model.Donation{})
			return
		}

		zlog.Logger.Error().Err(err).Str("email", email).Msg("failed to list donor donations")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, donations)
}

// Get handles GET /donations/:id.
func (h *Handler) Get(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.service.GetDonationByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, donation.ErrDonationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("donation not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get donation")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, d)
}

// GetStatus handles GET /donations/:id/status.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	status, err := h.service.GetDonationStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, donation.ErrDonationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("donation not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get donation status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]string{"status": status})
}

// Verify handles PATCH /admin/donations/:id/verification.
func (h *Handler) Verify(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req VerifyRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("verification must be verified or rejected"))
		return
	}

	err := h.service.SetVerification(c.Request.Context(), id, model.Verification(req.Verification))
	if err != nil {
		if errors.Is(err, donation.ErrDonationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("donation not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to set verification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "verification updated")
}

// Delete handles DELETE /donations/:id. Only the donor or an admin may
// remove a donation, and never one with live claim requests.
func (h *Handler) Delete(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.service.GetDonationByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, donation.ErrDonationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("donation not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get donation")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if d.DonorEmail != c.GetString(middleware.CtxEmail) && c.GetString(middleware.CtxRole) != model.RoleAdmin {
		respond.Fail(c.Writer, http.StatusForbidden, fmt.Errorf("forbidden"))
		return
	}

	err = h.service.DeleteDonation(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, donation.ErrDonationNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("donation not found"))
		case errors.Is(err, donation.ErrDonationClaimed):
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("donation has live requests"))
		default:
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete donation")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, "donation deleted")
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
