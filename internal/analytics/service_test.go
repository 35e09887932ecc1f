package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/richxcame/fraudwatch/pkg/models"
)

// MockRepository is a mock implementation of RepositoryInterface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SearchDevices(ctx context.Context, query string, limit int) ([]models.Device, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Device), args.Error(1)
}

func (m *MockRepository) SearchAccounts(ctx context.Context, query string, limit int) ([]models.Account, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockRepository) GetOSDistribution(ctx context.Context) ([]DistributionBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DistributionBucket), args.Error(1)
}

func (m *MockRepository) GetBrowserDistribution(ctx context.Context) ([]DistributionBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DistributionBucket), args.Error(1)
}

func (m *MockRepository) GetHighRiskDevices(ctx context.Context, minScore float64, limit int) ([]models.Device, error) {
	args := m.Called(ctx, minScore, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Device), args.Error(1)
}

func TestService_Search(t *testing.T) {
	device := models.Device{ID: uuid.New(), DeviceHash: "fp_abcd1234", OS: "Linux", Browser: "Firefox"}
	account := models.Account{ID: uuid.New(), AccountHash: "acct_abcd9999", KYCLevel: models.KYCLevelVerified}

	repo := new(MockRepository)
	repo.On("SearchDevices", mock.Anything, "abcd", 5).Return([]models.Device{device}, nil)
	repo.On("SearchAccounts", mock.Anything, "abcd", 5).Return([]models.Account{account}, nil)

	service := NewService(repo)

	results, err := service.Search(context.Background(), "abcd")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "device", results[0].Type)
	assert.Equal(t, device.ID, results[0].ID)
	assert.Equal(t, "Linux Firefox", results[0].Label)

	assert.Equal(t, "account", results[1].Type)
	assert.Equal(t, "Account (verified)", results[1].Label)

	repo.AssertExpectations(t)
}

func TestService_Search_ShortQuery(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	for _, query := range []string{"", "abc", "  ab  "} {
		results, err := service.Search(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, results)
	}

	repo.AssertNotCalled(t, "SearchDevices", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Search_TrimsWhitespace(t *testing.T) {
	repo := new(MockRepository)
	repo.On("SearchDevices", mock.Anything, "abcd", 5).Return([]models.Device{}, nil)
	repo.On("SearchAccounts", mock.Anything, "abcd", 5).Return([]models.Account{}, nil)

	service := NewService(repo)

	results, err := service.Search(context.Background(), "  abcd  ")
	require.NoError(t, err)
	assert.Empty(t, results)

	repo.AssertExpectations(t)
}

func TestService_Search_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("SearchDevices", mock.Anything, "abcd", 5).Return(nil, errors.New("connection refused"))

	service := NewService(repo)

	results, err := service.Search(context.Background(), "abcd")
	assert.Error(t, err)
	assert.Nil(t, results)
}

func TestService_GetDistribution(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetOSDistribution", mock.Anything).Return([]DistributionBucket{
		{Label: "Windows", Value: 12},
		{Label: "Linux", Value: 3},
	}, nil)
	repo.On("GetBrowserDistribution", mock.Anything).Return([]DistributionBucket{
		{Label: "Chrome", Value: 10},
	}, nil)

	service := NewService(repo)

	dist, err := service.GetDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, dist.OS, 2)
	assert.Equal(t, "Windows", dist.OS[0].Label)
	assert.Equal(t, int64(12), dist.OS[0].Value)
	require.Len(t, dist.Browser, 1)
	assert.Equal(t, "Chrome", dist.Browser[0].Label)
}

func TestService_GetAlerts(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	device := models.Device{
		ID:        uuid.New(),
		OS:        "Windows",
		Browser:   "Edge",
		RiskScore: 85.5,
		CreatedAt: created,
	}

	repo := new(MockRepository)
	repo.On("GetHighRiskDevices", mock.Anything, 60.0, 10).Return([]models.Device{device}, nil)

	service := NewService(repo)

	alerts, err := service.GetAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Critical risk detected on Windows/Edge", alerts[0].Message)
	assert.Equal(t, device.ID, alerts[0].ID)
	assert.Equal(t, 85.5, alerts[0].Score)
	assert.Equal(t, created, alerts[0].Timestamp)
}

func TestService_GetAlerts_Empty(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetHighRiskDevices", mock.Anything, 60.0, 10).Return([]models.Device{}, nil)

	service := NewService(repo)

	alerts, err := service.GetAlerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
