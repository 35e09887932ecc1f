package crossings

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/richxcame/fraudwatch/internal/graph"
	"github.com/richxcame/fraudwatch/pkg/common"
	"github.com/richxcame/fraudwatch/pkg/logger"
	"github.com/richxcame/fraudwatch/pkg/models"
)

// DefaultGraphLimit caps how many recent crossings feed the graph when the
// client does not ask for a specific window.
const DefaultGraphLimit = 100

// graphCacheKey is the cache slot for the default-window graph payload.
// Only the default window is cached; bespoke limits always hit the database.
const graphCacheKey = "fraudwatch:graph-data"

// Service builds the device-account relationship graph from stored crossings
type Service struct {
	repo        RepositoryInterface
	deviceRepo  DeviceLookupRepository
	accountRepo AccountLookupRepository
	builder     *graph.Builder
	cache       Cache
	cacheTTL    time.Duration
}

// NewService creates a new crossing service. cache may be nil, which
// disables graph payload caching.
func NewService(repo RepositoryInterface, deviceRepo DeviceLookupRepository, accountRepo AccountLookupRepository, cache Cache, cacheTTL time.Duration) *Service {
	return &Service{
		repo:        repo,
		deviceRepo:  deviceRepo,
		accountRepo: accountRepo,
		builder:     graph.NewBuilder(),
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// GetGraph returns the relationship graph over the most recent crossings.
// The default window is served from cache when possible.
func (s *Service) GetGraph(ctx context.Context, limit int) (*graph.Graph, error) {
	if limit <= 0 {
		limit = DefaultGraphLimit
	}

	cacheable := s.cache != nil && limit == DefaultGraphLimit
	if cacheable {
		if cached, err := s.cache.GetString(ctx, graphCacheKey); err == nil {
			var g graph.Graph
			if err := json.Unmarshal([]byte(cached), &g); err == nil {
				return &g, nil
			}
		}
	}

	crossings, err := s.repo.GetRecentCrossings(ctx, limit)
	if err != nil {
		return nil, common.NewInternalServerError("failed to fetch crossings", err)
	}

	g := s.builder.Build(crossings, s.deviceLookup(ctx), s.accountLookup(ctx))

	if cacheable {
		if payload, err := json.Marshal(g); err == nil {
			if err := s.cache.SetWithExpiration(ctx, graphCacheKey, payload, s.cacheTTL); err != nil {
				logger.WithContext(ctx).Warn("failed to cache graph payload", zap.Error(err))
			}
		}
	}

	return g, nil
}

// ListForDevice returns every crossing recorded for one device
func (s *Service) ListForDevice(ctx context.Context, deviceID uuid.UUID) ([]models.Crossing, error) {
	list, err := s.repo.GetCrossingsForDevice(ctx, deviceID)
	if err != nil {
		return nil, common.NewInternalServerError("failed to fetch crossings", err)
	}
	if list == nil {
		list = []models.Crossing{}
	}
	return list, nil
}

// InvalidateGraph drops the cached graph payload. Called after risk
// recalculations change node scores.
func (s *Service) InvalidateGraph(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, graphCacheKey); err != nil {
		logger.WithContext(ctx).Warn("failed to invalidate graph cache", zap.Error(err))
	}
}

// deviceLookup adapts the device repository to the builder's synchronous
// lookup contract. Lookup failures are treated as absent records.
func (s *Service) deviceLookup(ctx context.Context) graph.DeviceLookup {
	return func(id uuid.UUID) *models.Device {
		device, err := s.deviceRepo.GetDeviceByID(ctx, id)
		if err != nil {
			logger.WithContext(ctx).Warn("device lookup failed during graph build",
				zap.String("device_id", id.String()), zap.Error(err))
			return nil
		}
		return device
	}
}

func (s *Service) accountLookup(ctx context.Context) graph.AccountLookup {
	return func(id uuid.UUID) *models.Account {
		account, err := s.accountRepo.GetAccountByID(ctx, id)
		if err != nil {
			logger.WithContext(ctx).Warn("account lookup failed during graph build",
				zap.String("account_id", id.String()), zap.Error(err))
			return nil
		}
		return account
	}
}
