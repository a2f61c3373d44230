package rolerequest

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
	"github.com/niloyahmadramjan/surplusshare-server/internal/repository/rolerequest"
	svc "github.com/niloyahmadramjan/surplusshare-server/internal/service/rolerequest"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/rolerequest/mock.go -package=mocks

type roleRequestService interface {
	CreateRoleRequest(ctx context.Context, rr model.CharityRoleRequest) (uuid.UUID, error)
	GetRoleRequestByEmail(ctx context.Context, email string) (model.CharityRoleRequest, error)
	GetAllRoleRequests(ctx context.Context) ([]model.CharityRoleRequest, error)
	DecideRoleRequest(ctx context.Context, id uuid.UUID, decision model.RoleRequestStatus) error
}

// Handler handles HTTP requests for the charity upgrade workflow.
type Handler struct {
	service   roleRequestService
	validator *validator.Validate
}

func NewHandler(s roleRequestService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// CreateRequest represents the JSON body of a charity application.
type CreateRequest struct {
	Organization string `json:"organization" validate:"required"`
	Mission      string `json:"mission" validate:"required"`
}

// DecideRequest represents the JSON body of an admin decision.
type DecideRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// Create handles POST /role-requests.
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

	rr := model.CharityRoleRequest{
		UserName:     c.GetString(middleware.CtxName),
		UserEmail:    c.GetString(middleware.CtxEmail),
		Organization: req.Organization,
		Mission:      req.Mission,
	}

	id, err := h.service.CreateRoleRequest(c.Request.Context(), rr)
	if err != nil {
		if errors.Is(err, rolerequest.ErrDuplicateRoleRequest) {
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("role request already exists"))
			return
		}

		zlog.Logger.Error().Err(err).Str("email", rr.UserEmail).Msg("failed to create role request")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// GetMine handles GET /role-requests/me.
func (h *Handler) GetMine(c *ginext.Context) {
	email := c.GetString(middleware.CtxEmail)

	rr, err := h.service.GetRoleRequestByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, rolerequest.ErrRoleRequestNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("role request not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("email", email).Msg("failed to get role request")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, rr)
}

// ListAll handles GET /admin/role-requests.
func (h *Handler) ListAll(c *ginext.Context) {
	requests, err := h.service.GetAllRoleRequests(c.Request.Context())
	if err != nil {
		if errors.Is(err, rolerequest.ErrNoRoleRequestsFound) {
			respond.OK(c.Writer, []model.CharityRoleRequest{})
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to list role requests")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, requests)
}

// Decide handles PATCH /admin/role-requests/:id/status.
func (h *Handler) Decide(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
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
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("status must be approved or rejected"))
		return
	}

	err = h.service.DecideRoleRequest(c.Request.Context(), id, model.RoleRequestStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, rolerequest.ErrRoleRequestNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("role request not found"))
		case errors.Is(err, svc.ErrInvalidRoleDecision):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		default:
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to decide role request")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, "role request updated")
}
