package analytics

import (
	"context"

	"github.com/richxcame/fraudwatch/pkg/models"
)

// RepositoryInterface defines the interface for analytics repository operations
type RepositoryInterface interface {
	SearchDevices(ctx context.Context, query string, limit int) ([]models.Device, error)
	SearchAccounts(ctx context.Context, query string, limit int) ([]models.Account, error)
	GetOSDistribution(ctx context.Context) ([]DistributionBucket, error)
	GetBrowserDistribution(ctx context.Context) ([]DistributionBucket, error)
	GetHighRiskDevices(ctx context.Context, minScore float64, limit int) ([]models.Device, error)
}
