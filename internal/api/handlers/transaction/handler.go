package transaction

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
	"github.com/niloyahmadramjan/surplusshare-server/internal/repository/transaction"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/transaction/mock.go -package=mocks

type transactionService interface {
	RecordTransaction(ctx context.Context, tr model.Transaction) (uuid.UUID, error)
	GetTransactionsByUser(ctx context.Context, userEmail string) ([]model.Transaction, error)
	GetAllTransactions(ctx context.Context) ([]model.Transaction, error)
}

// Handler handles HTTP requests for recorded payments.
type Handler struct {
	service   transactionService
	validator *validator.Validate
}

func NewHandler(s transactionService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// RecordRequest represents the JSON body of a gateway confirmation.
type RecordRequest struct {
	GatewayRef string `json:"gateway_ref" validate:"required"`
	Amount     int    `json:"amount" validate:"required,gt=0"`
	Currency   string `json:"currency" validate:"required,len=3"`
	Purpose    string `json:"purpose" validate:"required"`
}

// Record handles POST /transactions.
func (h *Handler) Record(c *ginext.Context) {
	var req RecordRequest
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

	tr := model.Transaction{
		GatewayRef: req.GatewayRef,
		UserEmail:  c.GetString(middleware.CtxEmail),
		Amount:     req.Amount,
		Currency:   req.Currency,
		Purpose:    req.Purpose,
	}

	id, err := h.service.RecordTransaction(c.Request.Context(), tr)
	if err != nil {
		if errors.Is(err, transaction.ErrDuplicateTransaction) {
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("transaction already recorded"))
			return
		}

		zlog.Logger.Error().Err(err).Str("gateway_ref", req.GatewayRef).Msg("failed to record transaction")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// ListMine handles GET /transactions for the authenticated user.
func (h *Handler) ListMine(c *ginext.Context) {
	email := c.GetString(middleware.CtxEmail)

	transactions, err := h.service.GetTransactionsByUser(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, transaction.ErrNoTransactionsFound) {
			respond.OK(c.Writer, []model.Transaction{})
			return
		}

		zlog.Logger.Error().Err(err).Str("email", email).Msg("failed to list transactions")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, transactions)
}

// ListAll handles GET /admin/transactions.
func (h *Handler) ListAll(c *ginext.Context) {
	transactions, err := h.service.GetAllTransactions(c.Request.Context())
	if err != nil {
		if errors.Is(err, transaction.ErrNoTransactionsFound) {
			respond.OK(c.Writer, []model.Transaction{})
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to list all transactions")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, transactions)
}
