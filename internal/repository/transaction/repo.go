package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
)

var (
	ErrNoTransactionsFound  = errors.New("no transactions found")
	ErrDuplicateTransaction = errors.New("transaction already recorded")
)

const uniqueViolation = "23505"

// Repository provides methods to interact with the transactions table.
//
// A transaction row is the locally recorded fact that the external payment
// gateway confirmed a payment; the gateway reference is unique, so a client
// retrying the confirmation call cannot record the payment twice.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateTransaction records a confirmed payment.
func (r *Repository) CreateTransaction(ctx context.Context, tr model.Transaction) (uuid.UUID, error) {
	query := `
		INSERT INTO transactions (
		    gateway_ref, user_email, amount, currency, purpose
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, tr.GatewayRef, tr.UserEmail, tr.Amount, tr.Currency, tr.Purpose,
	).Scan(&tr.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return uuid.Nil, ErrDuplicateTransaction
		}

		return uuid.Nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return tr.ID, nil
}

// GetTransactionsByUser retrieves a user's transactions, newest first.
func (r *Repository) GetTransactionsByUser(ctx context.Context, userEmail string) ([]model.Transaction, error) {
	query := `
		SELECT id, gateway_ref, user_email, amount, currency, purpose, created_at
		FROM transactions
		WHERE user_email = $1
		ORDER BY created_at DESC;
    `

	return r.queryTransactions(ctx, query, userEmail)
}

// GetAllTransactions retrieves every transaction, newest first. Admin listing.
func (r *Repository) GetAllTransactions(ctx context.Context) ([]model.Transaction, error) {
	query := `
		SELECT id, gateway_ref, user_email, amount, currency, purpose, created_at
		FROM transactions
		ORDER BY created_at DESC;
    `

	return r.queryTransactions(ctx, query)
}

func (r *Repository) queryTransactions(ctx context.Context, query string, args ...interface{}) ([]model.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		var tr model.Transaction
		if err := rows.Scan(
			&tr.ID, &tr.GatewayRef, &tr.UserEmail, &tr.Amount, &tr.Currency, &tr.Purpose, &tr.CreatedAt,
		); err != nil {
			return nil, err
		}

		transactions = append(transactions, tr)
	}

	if len(transactions) == 0 {
		return nil, ErrNoTransactionsFound
	}

	return transactions, nil
}
