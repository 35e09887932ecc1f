package analytics

import (
	"context"
	"fmt"
	"strings"

	"github.com/richxcame/fraudwatch/pkg/common"
)

const (
	minSearchLength   = 4
	searchResultLimit = 5
	alertScoreFloor   = 60.0
	alertLimit        = 10
)

// Service handles dashboard analytics queries
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new analytics service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// Search looks up devices and accounts by hash fragment. Queries shorter
// than four characters return an empty result set rather than an error.
func (s *Service) Search(ctx context.Context, query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if len(query) < minSearchLength {
		return []SearchResult{}, nil
	}

	devices, err := s.repo.SearchDevices(ctx, query, searchResultLimit)
	if err != nil {
		return nil, common.NewInternalServerError("failed to search devices", err)
	}

	accounts, err := s.repo.SearchAccounts(ctx, query, searchResultLimit)
	if err != nil {
		return nil, common.NewInternalServerError("failed to search accounts", err)
	}

	results := make([]SearchResult, 0, len(devices)+len(accounts))
	for _, d := range devices {
		results = append(results, SearchResult{
			Type:  "device",
			ID:    d.ID,
			Hash:  d.DeviceHash,
			Label: fmt.Sprintf("%s %s", d.OS, d.Browser),
		})
	}
	for _, a := range accounts {
		results = append(results, SearchResult{
			Type:  "account",
			ID:    a.ID,
			Hash:  a.AccountHash,
			Label: fmt.Sprintf("Account (%s)", a.KYCLevel),
		})
	}

	return results, nil
}

// GetDistribution returns OS and browser device counts for the charts
func (s *Service) GetDistribution(ctx context.Context) (*Distribution, error) {
	osDist, err := s.repo.GetOSDistribution(ctx)
	if err != nil {
		return nil, common.NewInternalServerError("failed to fetch os distribution", err)
	}

	browserDist, err := s.repo.GetBrowserDistribution(ctx)
	if err != nil {
		return nil, common.NewInternalServerError("failed to fetch browser distribution", err)
	}

	return &Distribution{OS: osDist, Browser: browserDist}, nil
}

// GetAlerts renders the newest high-risk devices as alert records
func (s *Service) GetAlerts(ctx context.Context) ([]DeviceAlert, error) {
	devices, err := s.repo.GetHighRiskDevices(ctx, alertScoreFloor, alertLimit)
	if err != nil {
		return nil, common.NewInternalServerError("failed to fetch alerts", err)
	}

	alerts := make([]DeviceAlert, 0, len(devices))
	for _, d := range devices {
		alerts = append(alerts, DeviceAlert{
			Timestamp: d.CreatedAt,
			Message:   fmt.Sprintf("Critical risk detected on %s/%s", d.OS, d.Browser),
			ID:        d.ID,
			Score:     d.RiskScore,
		})
	}

	return alerts, nil
}
