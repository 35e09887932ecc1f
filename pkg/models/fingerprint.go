package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel is the three-tier classification derived from a numeric risk score
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// KYCLevel represents the verification status of an account
type KYCLevel string

const (
	KYCLevelVerified KYCLevel = "verified"
	KYCLevelPending  KYCLevel = "pending"
	KYCLevelRejected KYCLevel = "rejected"
)

// Device represents a hashed device fingerprint
type Device struct {
	ID               uuid.UUID `json:"device_id" db:"device_id"`
	DeviceHash       string    `json:"device_hash" db:"device_hash"`
	OS               string    `json:"os" db:"os"`
	Browser          string    `json:"browser" db:"browser"`
	ScreenResolution string    `json:"screen_resolution" db:"screen_resolution"`
	Timezone         string    `json:"timezone" db:"timezone"`
	Language         string    `json:"language" db:"language"`
	IsVPN            bool      `json:"is_vpn" db:"is_vpn"`
	IsDatacenter     bool      `json:"is_datacenter" db:"is_datacenter"`
	RiskScore        float64   `json:"risk_score" db:"risk_score"`
	RiskLevel        RiskLevel `json:"risk_level" db:"risk_level"`
	AccountCount     int       `json:"account_count" db:"account_count"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	LastSeen         time.Time `json:"last_seen" db:"last_seen"`
}

// Account represents a pseudonymized account linked to one or more devices
type Account struct {
	ID          uuid.UUID `json:"account_id" db:"account_id"`
	AccountHash string    `json:"account_hash" db:"account_hash"`
	EmailDomain string    `json:"email_domain" db:"email_domain"`
	KYCLevel    KYCLevel  `json:"kyc_level" db:"kyc_level"`
	RiskScore   float64   `json:"risk_score" db:"risk_score"`
	RiskLevel   RiskLevel `json:"risk_level" db:"risk_level"`
	DeviceCount int       `json:"device_count" db:"device_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Crossing represents an observed co-occurrence of a device and an account
type Crossing struct {
	ID        int64     `json:"id" db:"id"`
	DeviceID  uuid.UUID `json:"device_id" db:"device_id"`
	AccountID uuid.UUID `json:"account_id" db:"account_id"`
	RiskFlag  RiskLevel `json:"risk_flag" db:"risk_flag"`
	FirstSeen time.Time `json:"first_seen" db:"first_seen"`
}
