package accounts

import (
	"context"

	"github.com/google/uuid"

	"github.com/richxcame/fraudwatch/pkg/models"
)

// RepositoryInterface defines the interface for account repository operations
type RepositoryInterface interface {
	ListAccounts(ctx context.Context, limit, offset int) ([]models.Account, int64, error)
	GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetAccountsForDevice(ctx context.Context, deviceID uuid.UUID) ([]models.Account, error)
}
