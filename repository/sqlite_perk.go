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

// sqlitePerkRepo, PerkRepository interface'inin SQLite implementasyonu.
//
// Tüm okuma sorguları memberships ile JOIN yapar — perk response'u
// membership'i her zaman inline {id, name} olarak taşır.
type sqlitePerkRepo struct {
	db database.TxQuerier
}

// NewSQLitePerkRepo, constructor.
func NewSQLitePerkRepo(db database.TxQuerier) PerkRepository {
	return &sqlitePerkRepo{db: db}
}

// perkSelect, tüm perk okuma sorgularının ortak SELECT gövdesi.
// Sayaçlar COALESCE ile okunur — NULL her zaman 0 sayılır.
const perkSelect = `
	SELECT p.id, p.title, p.description, p.product,
	       p.membership_id, m.name,
	       COALESCE(p.upvotes, 0), COALESCE(p.downvotes, 0),
	       p.expiry_date, p.location, p.created_at
	FROM perks p
	JOIN memberships m ON m.id = p.membership_id`

func (r *sqlitePerkRepo) Create(ctx context.Context, perk *models.Perk) error {
	query := `
		INSERT INTO perks (title, description, product, membership_id,
		                   upvotes, downvotes, votes, expiry_date, location)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, created_at`

	var expiry any
	if perk.ExpiryDate != nil {
		expiry = *perk.ExpiryDate
	}

	err := r.db.QueryRowContext(ctx, query,
		perk.Title,
		perk.Description,
		perk.Product,
		perk.Membership.ID,
		perk.Upvotes,
		perk.Downvotes,
		perk.Upvotes-perk.Downvotes,
		expiry,
		perk.Location,
	).Scan(&perk.ID, &perk.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create perk: %w", err)
	}

	perk.Score = perk.Upvotes - perk.Downvotes
	return nil
}

func (r *sqlitePerkRepo) GetByID(ctx context.Context, id int64) (*models.Perk, error) {
	row := r.db.QueryRowContext(ctx, perkSelect+` WHERE p.id = ?`, id)

	perk, err := scanPerkRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get perk by id: %w", err)
	}

	return perk, nil
}

func (r *sqlitePerkRepo) List(ctx context.Context, opts PerkListOptions) ([]models.Perk, error) {
	query := perkSelect
	var args []any

	if opts.Search != "" {
		// Case-insensitive substring araması — title VEYA product eşleşir.
		// LIKE özel karakterleri escape edilir, aksi halde "%50 discount"
		// araması wildcard'a dönüşür.
		pattern := "%" + escapeLike(strings.ToLower(opts.Search)) + "%"
		query += `
	WHERE (lower(p.title) LIKE ? ESCAPE '\' OR lower(p.product) LIKE ? ESCAPE '\')`
		args = append(args, pattern, pattern)
	}

	if opts.Sort != nil {
		direction := "ASC"
		if opts.Sort.Desc {
			direction = "DESC"
		}
		// opts.Sort.Column, PerkSort* sabitlerinden gelir — kullanıcı girdisi değildir.
		query += fmt.Sprintf("\n\tORDER BY %s %s", opts.Sort.Column, direction)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list perks: %w", err)
	}
	defer rows.Close()

	perks := []models.Perk{}
	for rows.Next() {
		perk, err := scanPerkRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan perk: %w", err)
		}
		perks = append(perks, *perk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate perks: %w", err)
	}

	return perks, nil
}

func (r *sqlitePerkRepo) IncrementVote(ctx context.Context, id int64, kind models.VoteKind) error {
	// Tek atomik UPDATE — read-modify-write yarışı olmaz, eşzamanlı oyların
	// ikisi de sayılır. votes aynası aynı statement içinde yeniden yazılır.
	var query string
	switch kind {
	case models.VoteUp:
		query = `
			UPDATE perks
			SET upvotes = COALESCE(upvotes, 0) + 1,
			    votes   = COALESCE(upvotes, 0) + 1 - COALESCE(downvotes, 0)
			WHERE id = ?`
	case models.VoteDown:
		query = `
			UPDATE perks
			SET downvotes = COALESCE(downvotes, 0) + 1,
			    votes     = COALESCE(upvotes, 0) - COALESCE(downvotes, 0) - 1
			WHERE id = ?`
	default:
		return fmt.Errorf("%w: unknown vote kind %q", pkg.ErrBadRequest, kind)
	}

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment vote: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlitePerkRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM perks`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count perks: %w", err)
	}
	return count, nil
}

// rowScanner, *sql.Row ve *sql.Rows'un ortak Scan imzası.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerkRow(row *sql.Row) (*models.Perk, error)    { return scanPerk(row) }
func scanPerkRows(rows *sql.Rows) (*models.Perk, error) { return scanPerk(rows) }

// scanPerk, ortak SELECT gövdesinin tek satırını Perk'e çevirir.
// Score burada hesaplanır — DB'deki votes kolonu asla geri okunmaz.
func scanPerk(s rowScanner) (*models.Perk, error) {
	perk := &models.Perk{}
	var expiry sql.NullString
	var location sql.NullString

	err := s.Scan(
		&perk.ID, &perk.Title, &perk.Description, &perk.Product,
		&perk.Membership.ID, &perk.Membership.Name,
		&perk.Upvotes, &perk.Downvotes,
		&expiry, &location, &perk.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if expiry.Valid && expiry.String != "" {
		d, err := models.ParseDate(expiry.String)
		if err != nil {
			return nil, fmt.Errorf("invalid expiry_date in store: %w", err)
		}
		perk.ExpiryDate = &d
	}
	if location.Valid {
		perk.Location = &location.String
	}

	perk.Score = perk.Upvotes - perk.Downvotes
	return perk, nil
}

// escapeLike, LIKE pattern'ındaki özel karakterleri escape eder.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
