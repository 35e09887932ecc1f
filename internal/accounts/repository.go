package accounts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/richxcame/fraudwatch/pkg/models"
)

// Repository handles account data operations
type Repository struct {
	db *pgxpool.Pool
}

// Ensure the concrete repository satisfies the service's requirements.
var _ RepositoryInterface = (*Repository)(nil)

// NewRepository creates a new account repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const accountColumns = `
	account_id, account_hash, email_domain, kyc_level, risk_score,
	risk_level, device_count, created_at
`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var a models.Account
	err := row.Scan(
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
	return &a, nil
}

// ListAccounts retrieves accounts ordered by creation date descending, with total count
func (r *Repository) ListAccounts(ctx context.Context, limit, offset int) ([]models.Account, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, *account)
	}

	return accounts, total, rows.Err()
}

// GetAccountByID retrieves an account by its id
func (r *Repository) GetAccountByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1`

	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}

// GetAccountsForDevice retrieves the accounts linked to a device through
// crossings. An account that no longer exists is omitted rather than
// surfaced as an error.
func (r *Repository) GetAccountsForDevice(ctx context.Context, deviceID uuid.UUID) ([]models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id IN (
			SELECT DISTINCT account_id
			FROM device_account_crossings
			WHERE device_id = $1
		)
	`

	rows, err := r.db.Query(ctx, query, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}

	return accounts, rows.Err()
}
