package risk

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/richxcame/fraudwatch/internal/fingerprint"
	"github.com/richxcame/fraudwatch/internal/scoring"
	"github.com/richxcame/fraudwatch/pkg/common"
	"github.com/richxcame/fraudwatch/pkg/logger"
	"github.com/richxcame/fraudwatch/pkg/middleware"
	"github.com/richxcame/fraudwatch/pkg/models"
)

// CalculationResult is the payload returned by a risk recalculation
type CalculationResult struct {
	DeviceID  uuid.UUID           `json:"device_id"`
	RiskScore float64             `json:"risk_score"`
	RiskLevel models.RiskLevel    `json:"risk_level"`
	Factors   scoring.RiskFactors `json:"factors"`
}

// Alert is the live notification broadcast when a device turns high risk
type Alert struct {
	Type       string    `json:"type"`
	DeviceID   uuid.UUID `json:"device_id"`
	DeviceHash string    `json:"device_hash"`
	RiskScore  float64   `json:"risk_score"`
	Timestamp  time.Time `json:"timestamp"`
}

// Service recalculates device risk scores and compares fingerprints
type Service struct {
	deviceRepo  DeviceRepository
	accountRepo AccountRepository
	engine      *scoring.Engine
	matcher     *fingerprint.Matcher
	invalidator GraphInvalidator
	broadcaster Broadcaster
}

// NewService creates a new risk service. invalidator and broadcaster may be
// nil when the corresponding side effects are not wanted.
func NewService(deviceRepo DeviceRepository, accountRepo AccountRepository, invalidator GraphInvalidator, broadcaster Broadcaster) *Service {
	return &Service{
		deviceRepo:  deviceRepo,
		accountRepo: accountRepo,
		engine:      scoring.NewEngine(),
		matcher:     fingerprint.NewMatcher(),
		invalidator: invalidator,
		broadcaster: broadcaster,
	}
}

// CalculateRisk rescores a device against its currently linked accounts,
// persists the result, and notifies downstream consumers.
func (s *Service) CalculateRisk(ctx context.Context, deviceID uuid.UUID) (*CalculationResult, error) {
	device, err := s.deviceRepo.GetDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, common.NewInternalServerError("failed to fetch device", err)
	}
	if device == nil {
		return nil, common.NewNotFoundError("device not found", nil)
	}

	accounts, err := s.accountRepo.GetAccountsForDevice(ctx, deviceID)
	if err != nil {
		return nil, common.NewInternalServerError("failed to fetch linked accounts", err)
	}

	result := s.engine.Score(device, accounts, nil, s.matcher)

	if err := s.deviceRepo.UpdateDeviceRisk(ctx, deviceID, result.RiskScore, result.RiskLevel); err != nil {
		return nil, common.NewInternalServerError("failed to persist risk score", err)
	}

	middleware.RecordRiskCalculation(string(result.RiskLevel))

	if s.invalidator != nil {
		s.invalidator.InvalidateGraph(ctx)
	}

	if s.broadcaster != nil && result.RiskLevel == models.RiskLevelHigh {
		alert := Alert{
			Type:       "high_risk_device",
			DeviceID:   deviceID,
			DeviceHash: device.DeviceHash,
			RiskScore:  result.RiskScore,
			Timestamp:  time.Now().UTC(),
		}
		if err := s.broadcaster.BroadcastJSON(alert); err != nil {
			logger.WithContext(ctx).Warn("failed to broadcast risk alert",
				zap.String("device_id", deviceID.String()), zap.Error(err))
		}
	}

	logger.WithContext(ctx).Info("risk recalculated",
		zap.String("device_id", deviceID.String()),
		zap.Float64("risk_score", result.RiskScore),
		zap.String("risk_level", string(result.RiskLevel)))

	return &CalculationResult{
		DeviceID:  deviceID,
		RiskScore: result.RiskScore,
		RiskLevel: result.RiskLevel,
		Factors:   result.Factors,
	}, nil
}

// CompareDevices returns fingerprint similarity for two stored devices
func (s *Service) CompareDevices(ctx context.Context, idA, idB uuid.UUID) (*fingerprint.ComparisonResult, error) {
	deviceA, err := s.deviceRepo.GetDeviceByID(ctx, idA)
	if err != nil {
		return nil, common.NewInternalServerError("failed to fetch device", err)
	}
	if deviceA == nil {
		return nil, common.NewNotFoundError("device not found", nil)
	}

	deviceB, err := s.deviceRepo.GetDeviceByID(ctx, idB)
	if err != nil {
		return nil, common.NewInternalServerError("failed to fetch device", err)
	}
	if deviceB == nil {
		return nil, common.NewNotFoundError("device not found", nil)
	}

	result := s.matcher.Compare(deviceA, deviceB)
	return &result, nil
}

// Rules exposes the engine's static rule table
func (s *Service) Rules() []scoring.Rule {
	return s.engine.Rules()
}
