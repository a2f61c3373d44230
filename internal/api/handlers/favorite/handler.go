package favorite

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
	"github.com/niloyahmadramjan/surplusshare-server/internal/repository/favorite"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/favorite/mock.go -package=mocks

type favoriteService interface {
	AddFavorite(ctx context.Context, f model.Favorite) (uuid.UUID, error)
	GetFavoritesByUser(ctx context.Context, userEmail string) ([]model.Favorite, error)
	RemoveFavorite(ctx context.Context, id uuid.UUID, userEmail string) error
}

// Handler handles HTTP requests for saved donations.
type Handler struct {
	service   favoriteService
	validator *validator.Validate
}

func NewHandler(s favoriteService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// AddRequest represents the JSON body of a favorite.
type AddRequest struct {
	DonationID string `json:"donation_id" validate:"required,uuid"`
}

// Add handles POST /favorites.
func (h *Handler) Add(c *ginext.Context) {
	var req AddRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("donation_id must be a uuid"))
		return
	}

	f := model.Favorite{
		DonationID: uuid.MustParse(req.DonationID),
		UserEmail:  c.GetString(middleware.CtxEmail),
	}

	id, err := h.service.AddFavorite(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, favorite.ErrAlreadyFavorite) {
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("already in favorites"))
			return
		}

		zlog.Logger.Error().Err(err).Str("donation_id", req.DonationID).Msg("failed to add favorite")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// ListMine handles GET /favorites.
func (h *Handler) ListMine(c *ginext.Context) {
	email := c.GetString(middleware.CtxEmail)

	favorites, err := h.service.GetFavoritesByUser(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, favorite.ErrNoFavoritesFound) {
			respond.OK(c.Writer, []model.Favorite{})
			return
		}

		zlog.Logger.Error().Err(err).Str("email", email).Msg("failed to list favorites")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, favorites)
}

// Remove handles DELETE /favorites/:id.
func (h *Handler) Remove(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	err = h.service.RemoveFavorite(c.Request.Context(), id, c.GetString(middleware.CtxEmail))
	if err != nil {
		if errors.Is(err, favorite.ErrFavoriteNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("favorite not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to remove favorite")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "favorite removed")
}
