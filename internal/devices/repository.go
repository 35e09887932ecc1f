package devices

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/richxcame/fraudwatch/pkg/models"
)

// Repository handles device data operations
type Repository struct {
	db *pgxpool.Pool
}

// Ensure the concrete repository satisfies the service's requirements.
var _ RepositoryInterface = (*Repository)(nil)

// NewRepository creates a new device repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const deviceColumns = `
	device_id, device_hash, os, browser, screen_resolution, timezone,
	language, is_vpn, is_datacenter, risk_score, risk_level, account_count,
	created_at, last_seen
`

func scanDevice(row pgx.Row) (*models.Device, error) {
	var d models.Device
	err := row.Scan(
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
	return &d, nil
}

// ListDevices retrieves devices ordered by last_seen descending, with total count
func (r *Repository) ListDevices(ctx context.Context, limit, offset int) ([]models.Device, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM devices`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + deviceColumns + `
		FROM devices
		ORDER BY last_seen DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	devices := make([]models.Device, 0)
	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, 0, err
		}
		devices = append(devices, *device)
	}

	return devices, total, rows.Err()
}

// GetDeviceByID retrieves a device by its id
func (r *Repository) GetDeviceByID(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE device_id = $1`

	device, err := scanDevice(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return device, nil
}

// GetDeviceByHash retrieves a device by its fingerprint hash
func (r *Repository) GetDeviceByHash(ctx context.Context, hash string) (*models.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE device_hash = $1`

	device, err := scanDevice(r.db.QueryRow(ctx, query, hash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return device, nil
}

// UpdateDeviceRisk persists a freshly computed risk score and level
func (r *Repository) UpdateDeviceRisk(ctx context.Context, id uuid.UUID, riskScore float64, riskLevel models.RiskLevel) error {
	query := `
		UPDATE devices
		SET risk_score = $2,
		    risk_level = $3,
		    last_seen = NOW()
		WHERE device_id = $1
	`

	_, err := r.db.Exec(ctx, query, id, riskScore, riskLevel)
	return err
}
