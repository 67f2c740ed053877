package services

import (
	"context"

	"github.com/dkovac/pagecraft-api/internal/database"
	"github.com/dkovac/pagecraft-api/internal/models"
	"github.com/google/uuid"
)

type VersionService struct {
	db *database.DB
}

func NewVersionService(db *database.DB) *VersionService {
	return &VersionService{db: db}
}

const versionColumns = `id, page_id, name, content, created_by, is_active, created_at`

// Create snapshots the page's live content as a named version. The snapshot
// is taken inside the INSERT itself, so later edits to the page can never
// reach back into it.
func (s *VersionService) Create(ctx context.Context, pageID uuid.UUID, name string, createdBy uuid.UUID) (*models.PageVersion, error) {
	var creator *uuid.UUID
	if createdBy != uuid.Nil {
		creator = &createdBy
	}

	version, err := scanVersion(s.db.Pool.QueryRow(ctx, `
		INSERT INTO page_versions (page_id, name, content, created_by)
		SELECT id, $2, content, $3 FROM pages WHERE id = $1
		RETURNING `+versionColumns+`
	`, pageID, name, creator))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return version, nil
}

func (s *VersionService) List(ctx context.Context, pageID uuid.UUID) ([]models.PageVersion, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+versionColumns+` FROM page_versions
		WHERE page_id = $1
		ORDER BY created_at DESC
	`, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []models.PageVersion
	for rows.Next() {
		version, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, *version)
	}
	return versions, rows.Err()
}

func (s *VersionService) GetByID(ctx context.Context, versionID uuid.UUID) (*models.PageVersion, error) {
	version, err := scanVersion(s.db.Pool.QueryRow(ctx, `
		SELECT `+versionColumns+` FROM page_versions WHERE id = $1
	`, versionID))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return version, nil
}

// Activate flips the active flag to the target version and restores its
// snapshot as the page's live content, all inside one transaction. A failure
// anywhere rolls the whole operation back; two racing activations serialize
// on the page row and the partial unique active index.
func (s *VersionService) Activate(ctx context.Context, pageID, versionID uuid.UUID) (*models.PageVersion, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		UPDATE page_versions SET is_active = FALSE WHERE page_id = $1 AND is_active
	`, pageID); err != nil {
		return nil, err
	}

	version, err := scanVersion(tx.QueryRow(ctx, `
		UPDATE page_versions SET is_active = TRUE
		WHERE id = $1 AND page_id = $2
		RETURNING `+versionColumns+`
	`, versionID, pageID))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrConcurrencyConflict
		}
		return nil, err
	}

	result, err := tx.Exec(ctx, `
		UPDATE pages SET content = (SELECT content FROM page_versions WHERE id = $2), updated_at = NOW()
		WHERE id = $1
	`, pageID, versionID)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return version, nil
}

// Delete removes a version. The active version is protected while siblings
// remain; when it is the page's last version the delete falls back to
// leaving the page with no active version.
func (s *VersionService) Delete(ctx context.Context, versionID uuid.UUID) error {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var pageID uuid.UUID
	var isActive bool
	err = tx.QueryRow(ctx, `
		SELECT page_id, is_active FROM page_versions WHERE id = $1
	`, versionID).Scan(&pageID, &isActive)
	if err != nil {
		if isNoRows(err) {
			return ErrNotFound
		}
		return err
	}

	if isActive {
		var siblings int
		err = tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM page_versions WHERE page_id = $1 AND id <> $2
		`, pageID, versionID).Scan(&siblings)
		if err != nil {
			return err
		}
		if siblings > 0 {
			return ErrCannotDeleteActiveVersion
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM page_versions WHERE id = $1`, versionID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanVersion(row interface{ Scan(dest ...any) error }) (*models.PageVersion, error) {
	var v models.PageVersion
	var content []byte
	err := row.Scan(&v.ID, &v.PageID, &v.Name, &content, &v.CreatedBy, &v.IsActive, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	if v.Content, err = decodeContent(content); err != nil {
		return nil, err
	}
	return &v, nil
}
