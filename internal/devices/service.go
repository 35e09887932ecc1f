package devices

import (
	"context"

	"github.com/google/uuid"

	"github.com/richxcame/fraudwatch/pkg/common"
	"github.com/richxcame/fraudwatch/pkg/models"
)

// Service handles device business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new device service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// ListDevices returns a page of devices ordered by most recently seen
func (s *Service) ListDevices(ctx context.Context, limit, offset int) ([]models.Device, int64, error) {
	devices, total, err := s.repo.ListDevices(ctx, limit, offset)
	if err != nil {
		return nil, 0, common.NewInternalServerError("failed to list devices", err)
	}
	if devices == nil {
		devices = []models.Device{}
	}
	return devices, total, nil
}

// GetDeviceByHash returns one device by its fingerprint hash
func (s *Service) GetDeviceByHash(ctx context.Context, hash string) (*models.Device, error) {
	device, err := s.repo.GetDeviceByHash(ctx, hash)
	if err != nil {
		return nil, common.NewInternalServerError("failed to fetch device", err)
	}
	if device == nil {
		return nil, common.NewNotFoundError("device not found", nil)
	}
	return device, nil
}

// GetDevice returns one device by id
func (s *Service) GetDevice(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	device, err := s.repo.GetDeviceByID(ctx, id)
	if err != nil {
		return nil, common.NewInternalServerError("failed to fetch device", err)
	}
	if device == nil {
		return nil, common.NewNotFoundError("device not found", nil)
	}
	return device, nil
}
