package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akinalp/perkmanager/database"
	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/pkg"
)

// sqliteMembershipRepo, MembershipRepository interface'inin SQLite implementasyonu.
type sqliteMembershipRepo struct {
	db database.TxQuerier
}

// NewSQLiteMembershipRepo, constructor.
func NewSQLiteMembershipRepo(db database.TxQuerier) MembershipRepository {
	return &sqliteMembershipRepo{db: db}
}

func (r *sqliteMembershipRepo) Create(ctx context.Context, membership *models.Membership) error {
	query := `
		INSERT INTO memberships (name)
		VALUES (?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, membership.Name).
		Scan(&membership.ID, &membership.CreatedAt)

	if err != nil {
		// idx_memberships_name COLLATE NOCASE — "visa" varken "VISA" da buraya düşer
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: membership name already exists", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create membership: %w", err)
	}

	return nil
}

func (r *sqliteMembershipRepo) GetByID(ctx context.Context, id int64) (*models.Membership, error) {
	query := `SELECT id, name, created_at FROM memberships WHERE id = ?`

	membership := &models.Membership{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&membership.ID, &membership.Name, &membership.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership by id: %w", err)
	}

	return membership, nil
}

func (r *sqliteMembershipRepo) GetByIDs(ctx context.Context, ids []int64) ([]models.Membership, error) {
	memberships := []models.Membership{}
	if len(ids) == 0 {
		return memberships, nil
	}

	// IN clause için placeholder listesi — id sayısı kadar "?".
	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]

	query := fmt.Sprintf(`
		SELECT id, name, created_at FROM memberships
		WHERE id IN (%s)
		ORDER BY name COLLATE NOCASE`, placeholders)

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Membership
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate memberships: %w", err)
	}

	return memberships, nil
}

func (r *sqliteMembershipRepo) GetAll(ctx context.Context) ([]models.Membership, error) {
	query := `SELECT id, name, created_at FROM memberships ORDER BY name COLLATE NOCASE`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all memberships: %w", err)
	}
	defer rows.Close()

	memberships := []models.Membership{}
	for rows.Next() {
		var m models.Membership
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate memberships: %w", err)
	}

	return memberships, nil
}

func (r *sqliteMembershipRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM memberships`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count memberships: %w", err)
	}
	return count, nil
}
