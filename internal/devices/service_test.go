package devices

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/richxcame/fraudwatch/pkg/common"
	"github.com/richxcame/fraudwatch/pkg/models"
)

// MockRepository is a mock implementation of RepositoryInterface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListDevices(ctx context.Context, limit, offset int) ([]models.Device, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Device), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetDeviceByID(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Device), args.Error(1)
}

func (m *MockRepository) GetDeviceByHash(ctx context.Context, hash string) (*models.Device, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Device), args.Error(1)
}

func (m *MockRepository) UpdateDeviceRisk(ctx context.Context, id uuid.UUID, riskScore float64, riskLevel models.RiskLevel) error {
	args := m.Called(ctx, id, riskScore, riskLevel)
	return args.Error(0)
}

func deviceFixture() models.Device {
	return models.Device{
		ID:               uuid.New(),
		DeviceHash:       "fp_a1b2c3d4",
		OS:               "Windows",
		Browser:          "Chrome",
		ScreenResolution: "1920x1080",
		Timezone:         "UTC",
		RiskScore:        42.5,
		RiskLevel:        models.RiskLevelMedium,
		AccountCount:     2,
		CreatedAt:        time.Now().Add(-24 * time.Hour),
		LastSeen:         time.Now(),
	}
}

func TestService_ListDevices(t *testing.T) {
	device := deviceFixture()

	repo := new(MockRepository)
	repo.On("ListDevices", mock.Anything, 20, 0).Return([]models.Device{device}, int64(1), nil)

	service := NewService(repo)

	devices, total, err := service.ListDevices(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, devices, 1)
	assert.Equal(t, device.DeviceHash, devices[0].DeviceHash)

	repo.AssertExpectations(t)
}

func TestService_ListDevices_NilBecomesEmpty(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListDevices", mock.Anything, 20, 0).Return(nil, int64(0), nil)

	service := NewService(repo)

	devices, total, err := service.ListDevices(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.NotNil(t, devices)
	assert.Empty(t, devices)
}

func TestService_ListDevices_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListDevices", mock.Anything, 20, 0).Return(nil, int64(0), errors.New("connection refused"))

	service := NewService(repo)

	devices, _, err := service.ListDevices(context.Background(), 20, 0)
	assert.Nil(t, devices)
	assert.Error(t, err)
}

func TestService_GetDevice(t *testing.T) {
	device := deviceFixture()

	repo := new(MockRepository)
	repo.On("GetDeviceByID", mock.Anything, device.ID).Return(&device, nil)

	service := NewService(repo)

	got, err := service.GetDevice(context.Background(), device.ID)
	require.NoError(t, err)
	assert.Equal(t, device.ID, got.ID)
}

func TestService_GetDevice_NotFound(t *testing.T) {
	id := uuid.New()

	repo := new(MockRepository)
	repo.On("GetDeviceByID", mock.Anything, id).Return(nil, nil)

	service := NewService(repo)

	got, err := service.GetDevice(context.Background(), id)
	assert.Nil(t, got)

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestService_GetDeviceByHash(t *testing.T) {
	device := deviceFixture()

	repo := new(MockRepository)
	repo.On("GetDeviceByHash", mock.Anything, device.DeviceHash).Return(&device, nil)

	service := NewService(repo)

	got, err := service.GetDeviceByHash(context.Background(), device.DeviceHash)
	require.NoError(t, err)
	assert.Equal(t, device.ID, got.ID)
}

func TestService_GetDeviceByHash_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetDeviceByHash", mock.Anything, "fp_missing").Return(nil, nil)

	service := NewService(repo)

	got, err := service.GetDeviceByHash(context.Background(), "fp_missing")
	assert.Nil(t, got)

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}
