package accounts

import (
	"context"

	"github.com/google/uuid"

	"github.com/richxcame/fraudwatch/pkg/common"
	"github.com/richxcame/fraudwatch/pkg/models"
)

// Service handles account business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new account service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// ListAccounts returns a page of accounts ordered by most recently created
func (s *Service) ListAccounts(ctx context.Context, limit, offset int) ([]models.Account, int64, error) {
	accounts, total, err := s.repo.ListAccounts(ctx, limit, offset)
	if err != nil {
		return nil, 0, common.NewInternalServerError("failed to list accounts", err)
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, total, nil
}

// GetAccount returns one account by id
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	account, err := s.repo.GetAccountByID(ctx, id)
	if err != nil {
		return nil, common.NewInternalServerError("failed to fetch account", err)
	}
	if account == nil {
		return nil, common.NewNotFoundError("account not found", nil)
	}
	return account, nil
}
