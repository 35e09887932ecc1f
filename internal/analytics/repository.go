package analytics

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/richxcame/fraudwatch/pkg/models"
)

// Repository handles analytics data operations
type Repository struct {
	db *pgxpool.Pool
}

// Ensure the concrete repository satisfies the service's requirements.
var _ RepositoryInterface = (*Repository)(nil)

// NewRepository creates a new analytics repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const deviceColumns = `
	device_id, device_hash, os, browser, screen_resolution, timezone,
	language, is_vpn, is_datacenter, risk_score, risk_level, account_count,
	created_at, last_seen
`

const accountColumns = `
	account_id, account_hash, email_domain, kyc_level, risk_score,
	risk_level, device_count, created_at
`

func collectDevices(rows pgx.Rows) ([]models.Device, error) {
	defer rows.Close()

	devices := make([]models.Device, 0)
	for rows.Next() {
		var d models.Device
		err := rows.Scan(
			&d.ID,
			&d.DeviceHash,
			&d.OS,
			&d.Browser,
			&d.ScreenResolution,
			&d.Timezone,
			&d.Language,
			&d.IsVPN,
			&d.IsDatacenter,
			&d.RiskScore,
			&d.RiskLevel,
			&d.AccountCount,
			&d.CreatedAt,
			&d.LastSeen,
		)
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

// SearchDevices finds devices whose fingerprint hash contains the query
func (r *Repository) SearchDevices(ctx context.Context, query string, limit int) ([]models.Device, error) {
	sql := `
		SELECT ` + deviceColumns + `
		FROM devices
		WHERE device_hash ILIKE '%' || $1 || '%'
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, sql, query, limit)
	if err != nil {
		return nil, err
	}
	return collectDevices(rows)
}

// SearchAccounts finds accounts whose hash contains the query
func (r *Repository) SearchAccounts(ctx context.Context, query string, limit int) ([]models.Account, error) {
	sql := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_hash ILIKE '%' || $1 || '%'
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, sql, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var a models.Account
		err := rows.Scan(
			&a.ID,
			&a.AccountHash,
			&a.EmailDomain,
			&a.KYCLevel,
			&a.RiskScore,
			&a.RiskLevel,
			&a.DeviceCount,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *Repository) distribution(ctx context.Context, column string) ([]DistributionBucket, error) {
	sql := `
		SELECT ` + column + `, COUNT(device_id)
		FROM devices
		GROUP BY ` + column + `
		ORDER BY COUNT(device_id) DESC
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := make([]DistributionBucket, 0)
	for rows.Next() {
		var b DistributionBucket
		if err := rows.Scan(&b.Label, &b.Value); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// GetOSDistribution returns device counts grouped by operating system
func (r *Repository) GetOSDistribution(ctx context.Context) ([]DistributionBucket, error) {
	return r.distribution(ctx, "os")
}

// GetBrowserDistribution returns device counts grouped by browser
func (r *Repository) GetBrowserDistribution(ctx context.Context) ([]DistributionBucket, error) {
	return r.distribution(ctx, "browser")
}

// GetHighRiskDevices retrieves the newest devices scoring above minScore
func (r *Repository) GetHighRiskDevices(ctx context.Context, minScore float64, limit int) ([]models.Device, error) {
	sql := `
		SELECT ` + deviceColumns + `
		FROM devices
		WHERE risk_score > $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, sql, minScore, limit)
	if err != nil {
		return nil, err
	}
	return collectDevices(rows)
}
