package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chart0729-create/hany1/internal/model"
)

// ListingRepository stores listings in a Postgres table.
type ListingRepository struct {
	DB *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{DB: db}
}

var _ ListingStore = (*ListingRepository)(nil)

// EnsureSchema creates the listings table if it does not exist yet.
func (r *ListingRepository) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS listings (
			id            bigint PRIMARY KEY,
			title         text    NOT NULL,
			price         text    NOT NULL DEFAULT '',
			location      text    NOT NULL DEFAULT '',
			map_url       text    NOT NULL DEFAULT '',
			description   text    NOT NULL DEFAULT '',
			tags          text[]  NOT NULL DEFAULT '{}',
			images        text[]  NOT NULL DEFAULT '{}',
			completed     boolean NOT NULL DEFAULT false,
			photo_file_id text    NOT NULL DEFAULT '',
			created_at    text    NOT NULL DEFAULT '',
			updated_at    text    NOT NULL DEFAULT ''
		)
	`
	if _, err := r.DB.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ListingRepository.EnsureSchema: %w", err)
	}
	return nil
}

func (r *ListingRepository) List(ctx context.Context) ([]model.Listing, error) {
	var list []model.Listing
	err := r.DB.SelectContext(ctx, &list, `
		SELECT * FROM listings
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.List: %w", err)
	}
	return list, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int) (*model.Listing, error) {
	var l model.Listing
	err := r.DB.GetContext(ctx, &l, `SELECT * FROM listings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.GetByID: %w", err)
	}
	return &l, nil
}

// Create assigns max(id)+1 and inserts in a single statement, so two
// concurrent creates cannot hand out the same id.
func (r *ListingRepository) Create(ctx context.Context, l *model.Listing) error {
	const insertQuery = `
		INSERT INTO listings
			(id, title, price, location, map_url, description, tags, images, completed, photo_file_id, created_at, updated_at)
		SELECT
			COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		FROM listings
		RETURNING id
	`
	l.Normalize()
	err := r.DB.QueryRowxContext(ctx, insertQuery,
		l.Title, l.Price, l.Location, l.MapURL, l.Desc,
		l.Tags, l.Images, l.Completed, l.PhotoFileID,
		l.CreatedAt, l.UpdatedAt,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("ListingRepository.Create: %w", err)
	}
	return nil
}

func (r *ListingRepository) Update(ctx context.Context, l *model.Listing) error {
	l.Normalize()
	res, err := r.DB.NamedExecContext(ctx, `
		UPDATE listings SET
			title         = :title,
			price         = :price,
			location      = :location,
			map_url       = :map_url,
			description   = :description,
			tags          = :tags,
			images        = :images,
			completed     = :completed,
			photo_file_id = :photo_file_id,
			updated_at    = :updated_at
		WHERE id = :id
	`, l)
	if err != nil {
		return fmt.Errorf("ListingRepository.Update: %w", err)
	}
	return notFoundIfZero(res)
}

func (r *ListingRepository) Delete(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ListingRepository.Delete: %w", err)
	}
	return notFoundIfZero(res)
}

func (r *ListingRepository) ToggleContract(ctx context.Context, id int, updatedAt string) (*model.Listing, error) {
	var l model.Listing
	err := r.DB.QueryRowxContext(ctx, `
		UPDATE listings
		SET completed = NOT completed, updated_at = $2
		WHERE id = $1
		RETURNING *
	`, id, updatedAt).StructScan(&l)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.ToggleContract: %w", err)
	}
	return &l, nil
}

// ReplaceAll swaps the whole table for the given listings inside one
// transaction.
func (r *ListingRepository) ReplaceAll(ctx context.Context, listings []model.Listing) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ListingRepository.ReplaceAll begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM listings`); err != nil {
		return fmt.Errorf("ListingRepository.ReplaceAll clear: %w", err)
	}

	const insertQuery = `
		INSERT INTO listings
			(id, title, price, location, map_url, description, tags, images, completed, photo_file_id, created_at, updated_at)
		VALUES
			(:id, :title, :price, :location, :map_url, :description, :tags, :images, :completed, :photo_file_id, :created_at, :updated_at)
	`
	for i := range listings {
		listings[i].Normalize()
		if _, err = tx.NamedExecContext(ctx, insertQuery, &listings[i]); err != nil {
			return fmt.Errorf("ListingRepository.ReplaceAll insert id=%d: %w", listings[i].ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ListingRepository.ReplaceAll commit: %w", err)
	}
	return nil
}

func (r *ListingRepository) SetPhotoFileID(ctx context.Context, id int, fileID string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE listings SET photo_file_id = $1 WHERE id = $2`, fileID, id)
	if err != nil {
		return fmt.Errorf("ListingRepository.SetPhotoFileID: %w", err)
	}
	return notFoundIfZero(res)
}

func notFoundIfZero(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
