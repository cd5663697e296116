package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akinalp/perkmanager/database"
	"github.com/akinalp/perkmanager/models"
)

// sqliteUserMembershipRepo, UserMembershipRepository'nin SQLite implementasyonu.
//
// Diğer repo'lardan farklı olarak *sql.DB tutar (TxQuerier değil):
// ReplaceForUser kendi transaction'ını database.WithTx ile açar.
type sqliteUserMembershipRepo struct {
	db *sql.DB
}

// NewSQLiteUserMembershipRepo, constructor.
func NewSQLiteUserMembershipRepo(db *sql.DB) UserMembershipRepository {
	return &sqliteUserMembershipRepo{db: db}
}

func (r *sqliteUserMembershipRepo) ListForUser(ctx context.Context, userID int64) ([]models.Membership, error) {
	query := `
		SELECT m.id, m.name, m.created_at
		FROM user_memberships um
		JOIN memberships m ON m.id = um.membership_id
		WHERE um.user_id = ?
		ORDER BY m.name COLLATE NOCASE`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user memberships: %w", err)
	}
	defer rows.Close()

	memberships := []models.Membership{}
	for rows.Next() {
		var m models.Membership
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user membership: %w", err)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user memberships: %w", err)
	}

	return memberships, nil
}

func (r *sqliteUserMembershipRepo) ReplaceForUser(ctx context.Context, userID int64, membershipIDs []int64) error {
	// Sil + yeniden yaz, tek transaction — yarıda kalırsa eski set korunur.
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM user_memberships WHERE user_id = ?`, userID,
		); err != nil {
			return fmt.Errorf("failed to clear user memberships: %w", err)
		}

		for _, membershipID := range membershipIDs {
			// INSERT OR IGNORE — aynı id listede iki kez geçerse PK çifti korur.
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO user_memberships (user_id, membership_id) VALUES (?, ?)`,
				userID, membershipID,
			); err != nil {
				return fmt.Errorf("failed to insert user membership %d: %w", membershipID, err)
			}
		}

		return nil
	})
}
