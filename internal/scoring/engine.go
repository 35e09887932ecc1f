package scoring

import (
	"math"

	"github.com/richxcame/fraudwatch/pkg/models"
)

// Rule weights. The table is fixed; three of the rules (new account link,
// high velocity, suspicious OS) are declared for the dashboard but not yet
// consulted by Score.
const (
	weightVPN          = 25.0
	weightDatacenter   = 30.0
	weightMultiAccount = 20.0
	weightNewAccount   = 15.0
	weightHighVelocity = 10.0
	weightSuspiciousOS = 8.0
)

// Thresholds used by Score.
const (
	multiAccountThreshold    = 3
	suspiciousAccountScore   = 60.0
	suspiciousAccountPenalty = 15.0
	mediumRiskThreshold      = 40.0
	highRiskThreshold        = 70.0
)

// IPContext carries optional IP intelligence for a scoring run. No current
// rule consults it; it is accepted so geographic rules can be added without
// changing the Score signature.
type IPContext struct {
	Country string `json:"country,omitempty"`
	ASN     string `json:"asn,omitempty"`
}

// SimilarityMatcher is the optional device-matching capability Score accepts.
// The current rule set never calls it; a nil matcher is always valid.
type SimilarityMatcher interface {
	Similarity(a, b *models.Device) float64
	Related(a, b *models.Device) bool
}

// RiskFactors records the evidence that contributed to a score, sufficient
// to reconstruct why the score landed where it did.
type RiskFactors struct {
	VPN                bool `json:"vpn"`
	Datacenter         bool `json:"datacenter"`
	AccountCount       int  `json:"account_count"`
	SuspiciousAccounts int  `json:"suspicious_accounts"`
}

// RiskResult is the outcome of one scoring run. It is immutable once
// returned; persisting it back onto the device record is the caller's job.
type RiskResult struct {
	RiskScore float64          `json:"risk_score"`
	RiskLevel models.RiskLevel `json:"risk_level"`
	Factors   RiskFactors      `json:"factors"`
}

// Rule describes one entry of the static rule table
type Rule struct {
	Rule     string  `json:"rule"`
	Weight   float64 `json:"weight"`
	Category string  `json:"category"`
}

// Engine computes fraud risk scores for devices. Its only state is the
// immutable weight table, so a single instance is safe for concurrent use.
type Engine struct {
	weights map[string]float64
}

// NewEngine creates a scoring engine with the standard weight table
func NewEngine() *Engine {
	return &Engine{
		weights: map[string]float64{
			"vpn":           weightVPN,
			"datacenter":    weightDatacenter,
			"multi_account": weightMultiAccount,
			"new_account":   weightNewAccount,
			"high_velocity": weightHighVelocity,
			"suspicious_os": weightSuspiciousOS,
		},
	}
}

// Score computes the risk score for a device given its linked accounts.
// Rules apply additively with no early exit:
//
//   - VPN and datacenter flags each add their weight.
//   - More than three linked accounts adds 20 * (n/3), scaling linearly
//     with fan-out and uncapped.
//   - Any linked account with a risk score above 60 adds a flat 15,
//     regardless of how many accounts qualify.
//
// ipCtx and matcher are accepted for future rules and currently unused.
// Score never fails: a nil device scores zero, missing account data counts
// as not suspicious.
func (e *Engine) Score(device *models.Device, accounts []models.Account, ipCtx *IPContext, matcher SimilarityMatcher) RiskResult {
	_ = ipCtx
	_ = matcher

	score := 0.0
	factors := RiskFactors{}

	if device != nil {
		factors.VPN = device.IsVPN
		factors.Datacenter = device.IsDatacenter
	}

	if factors.VPN {
		score += e.weights["vpn"]
	}
	if factors.Datacenter {
		score += e.weights["datacenter"]
	}

	factors.AccountCount = len(accounts)
	if factors.AccountCount > multiAccountThreshold {
		score += e.weights["multi_account"] * (float64(factors.AccountCount) / multiAccountThreshold)
	}

	for _, acc := range accounts {
		if acc.RiskScore > suspiciousAccountScore {
			factors.SuspiciousAccounts++
		}
	}
	if factors.SuspiciousAccounts > 0 {
		score += suspiciousAccountPenalty
	}

	return RiskResult{
		RiskScore: math.Round(score*100) / 100,
		RiskLevel: levelForScore(score),
		Factors:   factors,
	}
}

// Rules returns the full rule table, including rules the score formula does
// not consult yet. The dashboard renders this list verbatim.
func (e *Engine) Rules() []Rule {
	return []Rule{
		{Rule: "VPN Detection", Weight: e.weights["vpn"], Category: "Network"},
		{Rule: "Datacenter IP", Weight: e.weights["datacenter"], Category: "Network"},
		{Rule: "Multi-account Device (>3)", Weight: e.weights["multi_account"], Category: "Behavior"},
		{Rule: "New Account link", Weight: e.weights["new_account"], Category: "Identity"},
		{Rule: "High velocity crossings", Weight: e.weights["high_velocity"], Category: "Behavior"},
		{Rule: "Suspicious OS/UA", Weight: e.weights["suspicious_os"], Category: "Device"},
	}
}

func levelForScore(score float64) models.RiskLevel {
	switch {
	case score >= highRiskThreshold:
		return models.RiskLevelHigh
	case score >= mediumRiskThreshold:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}
