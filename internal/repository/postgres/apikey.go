package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carlink-backend/internal/domain"
	"carlink-backend/internal/repository"

	"github.com/lib/pq"
)

const apiKeyColumns = `id, name, key_hash, key_prefix, permissions, partner_id, expires_at, active, last_used_at, created_on`

type apiKeyRepository struct {
	db *sql.DB
}

func NewApiKeyRepository(db *sql.DB) repository.ApiKeyRepository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) Create(ctx context.Context, k *domain.ApiKey) error {
	now := time.Now()
	query := `INSERT INTO api_keys (name, key_hash, key_prefix, permissions, partner_id, expires_at, active, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		k.Name, k.KeyHash, k.KeyPrefix, pq.Array(permissionsToStrings(k.Permissions)),
		k.PartnerID, k.ExpiresAt, k.Active, now).Scan(&k.ID)
	if err != nil {
		return err
	}
	k.CreatedOn = now
	return nil
}

func (r *apiKeyRepository) GetByHash(ctx context.Context, keyHash string) (*domain.ApiKey, error) {
	k := &domain.ApiKey{}
	var perms pq.StringArray
	query := `SELECT ` + apiKeyColumns + ` FROM api_keys WHERE key_hash = $1`
	err := r.db.QueryRowContext(ctx, query, keyHash).Scan(
		&k.ID, &k.Name, &k.KeyHash, &k.KeyPrefix, &perms, &k.PartnerID,
		&k.ExpiresAt, &k.Active, &k.LastUsedAt, &k.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	k.Permissions = stringsToPermissions(perms)
	return k, nil
}

func (r *apiKeyRepository) List(ctx context.Context) ([]domain.ApiKey, error) {
	query := `SELECT ` + apiKeyColumns + ` FROM api_keys ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []domain.ApiKey
	for rows.Next() {
		var k domain.ApiKey
		var perms pq.StringArray
		if err := rows.Scan(
			&k.ID, &k.Name, &k.KeyHash, &k.KeyPrefix, &perms, &k.PartnerID,
			&k.ExpiresAt, &k.Active, &k.LastUsedAt, &k.CreatedOn); err != nil {
			return nil, err
		}
		k.Permissions = stringsToPermissions(perms)
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *apiKeyRepository) Deactivate(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE api_keys SET active = false WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return noRowsAsNotFound(res)
}

func (r *apiKeyRepository) TouchLastUsed(ctx context.Context, id int32, usedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE api_keys SET last_used_at = $1 WHERE id = $2`, usedAt, id)
	return err
}

func permissionsToStrings(perms []domain.ApiKeyPermission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}

func stringsToPermissions(values []string) []domain.ApiKeyPermission {
	out := make([]domain.ApiKeyPermission, len(values))
	for i, v := range values {
		out[i] = domain.ApiKeyPermission(v)
	}
	return out
}
