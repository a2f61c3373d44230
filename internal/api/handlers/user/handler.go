package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/niloyahmadramjan/surplusshare-server/internal/api/middleware"
	"github.com/niloyahmadramjan/surplusshare-server/internal/api/respond"
	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
	"github.com/niloyahmadramjan/surplusshare-server/internal/repository/user"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/user/mock.go -package=mocks

type userService interface {
	UpsertUser(ctx context.Context, u model.User) error
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

// Handler handles HTTP requests for user profiles.
type Handler struct {
	service   userService
	validator *validator.Validate
}

func NewHandler(s userService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// UpsertRequest represents the JSON body sent on login.
type UpsertRequest struct {
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

// Upsert handles PUT /users: the client calls it after login so the
// profile tracks the identity provider. Email and name come from the
// verified token.
func (h *Handler) Upsert(c *ginext.Context) {
	var req UpsertRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("photo_url must be a url"))
		return
	}

	u := model.User{
		Email:    c.GetString(middleware.CtxEmail),
		Name:     c.GetString(middleware.CtxName),
		PhotoURL: req.PhotoURL,
	}

	if err := h.service.UpsertUser(c.Request.Context(), u); err != nil {
		zlog.Logger.Error().Err(err).Str("email", u.Email).Msg("failed to upsert user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "user saved")
}

// Get handles GET /users/:email. The caller sees their own profile;
// admins see anyone's.
func (h *Handler) Get(c *ginext.Context) {
	email := c.Param("email")
	if email == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing email"))
		return
	}

	if email != c.GetString(middleware.CtxEmail) && c.GetString(middleware.CtxRole) != model.RoleAdmin {
		respond.Fail(c.Writer, http.StatusForbidden, fmt.Errorf("forbidden"))
		return
	}

	u, err := h.service.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("user not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("email", email).Msg("failed to get user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, u)
}
