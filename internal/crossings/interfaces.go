package crossings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/richxcame/fraudwatch/pkg/models"
)

// RepositoryInterface defines the interface for crossing repository operations
type RepositoryInterface interface {
	GetRecentCrossings(ctx context.Context, limit int) ([]models.Crossing, error)
	GetCrossingsForDevice(ctx context.Context, deviceID uuid.UUID) ([]models.Crossing, error)
}

// DeviceLookupRepository resolves device records for graph construction
type DeviceLookupRepository interface {
	GetDeviceByID(ctx context.Context, id uuid.UUID) (*models.Device, error)
}

// AccountLookupRepository resolves account records for graph construction
type AccountLookupRepository interface {
	GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
}

// Cache is the subset of the Redis client the graph service uses
type Cache interface {
	GetString(ctx context.Context, key string) (string, error)
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
