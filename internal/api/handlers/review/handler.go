package review

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/niloyahmadramjan/surplusshare-server/internal/api/middleware"
	"github.com/niloyahmadramjan/surplusshare-server/internal/api/respond"
	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
	"github.com/niloyahmadramjan/surplusshare-server/internal/repository/review"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/review/mock.go -package=mocks

type reviewService interface {
	CreateReview(ctx context.Context, rev model.Review) (uuid.UUID, error)
	GetReviewsByDonation(ctx context.Context, donationID uuid.UUID) ([]model.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID, reviewerEmail string) error
}

// Handler handles HTTP requests for donation reviews.
type Handler struct {
	service   reviewService
	validator *validator.Validate
}

func NewHandler(s reviewService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// CreateRequest represents the JSON body of a review.
type CreateRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Create handles POST /donations/:id/reviews.
func (h *Handler) Create(c *ginext.Context) {
	donationID, ok := parseID(c)
	if !ok {
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("rating must be between 1 and 5"))
		return
	}

	rev := model.Review{
		DonationID:    donationID,
		ReviewerName:  c.GetString(middleware.CtxName),
		ReviewerEmail: c.GetString(middleware.CtxEmail),
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	id, err := h.service.CreateReview(c.Request.Context(), rev)
	if err != nil {
		if errors.Is(err, review.ErrDuplicateReview) {
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("already reviewed"))
			return
		}

		zlog.Logger.Error().Err(err).Str("donation_id", donationID.String()).Msg("failed to create review")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// ListByDonation handles GET /donations/:id/reviews.
func (h *Handler) ListByDonation(c *ginext.Context) {
	donationID, ok := parseID(c)
	if !ok {
		return
	}

	reviews, err := h.service.GetReviewsByDonation(c.Request.Context(), donationID)
	if err != nil {
		if errors.Is(err, review.ErrNoReviewsFound) {
			respond.OK(c.Writer, []model.Review{})
			return
		}

		zlog.Logger.Error().Err(err).Str("donation_id", donationID.String()).Msg("failed to list reviews")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, reviews)
}

// Delete handles DELETE /reviews/:id. Users can remove only their own
// reviews.
func (h *Handler) Delete(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.service.DeleteReview(c.Request.Context(), id, c.GetString(middleware.CtxEmail))
	if err != nil {
		if errors.Is(err, review.ErrReviewNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("review not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete review")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "review deleted")
}

func parseID(c *ginext.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}
