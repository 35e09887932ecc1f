package risk

import (
	"context"

	"github.com/google/uuid"

	"github.com/richxcame/fraudwatch/pkg/models"
)

// DeviceRepository is the slice of the device store the risk service needs
type DeviceRepository interface {
	GetDeviceByID(ctx context.Context, id uuid.UUID) (*models.Device, error)
	UpdateDeviceRisk(ctx context.Context, id uuid.UUID, riskScore float64, riskLevel models.RiskLevel) error
}

// AccountRepository resolves the accounts linked to a device through crossings
type AccountRepository interface {
	GetAccountsForDevice(ctx context.Context, deviceID uuid.UUID) ([]models.Account, error)
}

// GraphInvalidator drops cached graph payloads after a score changes
type GraphInvalidator interface {
	InvalidateGraph(ctx context.Context)
}

// Broadcaster pushes live alerts to connected dashboard clients
type Broadcaster interface {
	BroadcastJSON(v interface{}) error
}
