package devices

import (
	"context"

	"github.com/google/uuid"

	"github.com/richxcame/fraudwatch/pkg/models"
)

// RepositoryInterface defines the interface for device repository operations
type RepositoryInterface interface {
	ListDevices(ctx context.Context, limit, offset int) ([]models.Device, int64, error)
	GetDeviceByID(ctx context.Context, id uuid.UUID) (*models.Device, error)
	GetDeviceByHash(ctx context.Context, hash string) (*models.Device, error)
	UpdateDeviceRisk(ctx context.Context, id uuid.UUID, riskScore float64, riskLevel models.RiskLevel) error
}
