package crossings

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/richxcame/fraudwatch/pkg/models"
)

// Repository handles crossing data operations
type Repository struct {
	db *pgxpool.Pool
}

// Ensure the concrete repository satisfies the service's requirements.
var _ RepositoryInterface = (*Repository)(nil)

// NewRepository creates a new crossing repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanCrossings(rows pgx.Rows) ([]models.Crossing, error) {
	defer rows.Close()

	crossings := make([]models.Crossing, 0)
	for rows.Next() {
		var c models.Crossing
		if err := rows.Scan(&c.ID, &c.DeviceID, &c.AccountID, &c.RiskFlag, &c.FirstSeen); err != nil {
			return nil, err
		}
		crossings = append(crossings, c)
	}

	return crossings, rows.Err()
}

// GetRecentCrossings retrieves the most recent crossings, newest first
func (r *Repository) GetRecentCrossings(ctx context.Context, limit int) ([]models.Crossing, error) {
	query := `
		SELECT id, device_id, account_id, risk_flag, first_seen
		FROM device_account_crossings
		ORDER BY first_seen DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	return scanCrossings(rows)
}

// GetCrossingsForDevice retrieves all crossings recorded for a device
func (r *Repository) GetCrossingsForDevice(ctx context.Context, deviceID uuid.UUID) ([]models.Crossing, error) {
	query := `
		SELECT id, device_id, account_id, risk_flag, first_seen
		FROM device_account_crossings
		WHERE device_id = $1
		ORDER BY first_seen DESC
	`

	rows, err := r.db.Query(ctx, query, deviceID)
	if err != nil {
		return nil, err
	}

	return scanCrossings(rows)
}
