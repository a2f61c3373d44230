package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
)

type transactionRepository interface {
	CreateTransaction(ctx context.Context, tr model.Transaction) (uuid.UUID, error)
	GetTransactionsByUser(ctx context.Context, userEmail string) ([]model.Transaction, error)
	GetAllTransactions(ctx context.Context) ([]model.Transaction, error)
}

// Service records payments confirmed by the external gateway. The gateway
// itself is out of process; the unique gateway reference makes recording
// idempotent against client retries.
type Service struct {
	repo transactionRepository
}

func NewService(repo transactionRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) RecordTransaction(ctx context.Context, tr model.Transaction) (uuid.UUID, error) {
	id, err := s.repo.CreateTransaction(ctx, tr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("record transaction: %w", err)
	}

	return id, nil
}

func (s *Service) GetTransactionsByUser(ctx context.Context, userEmail string) ([]model.Transaction, error) {
	transactions, err := s.repo.GetTransactionsByUser(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	return transactions, nil
}

func (s *Service) GetAllTransactions(ctx context.Context) ([]model.Transaction, error) {
	transactions, err := s.repo.GetAllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all transactions: %w", err)
	}

	return transactions, nil
}
