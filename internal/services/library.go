package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dkovac/pagecraft-api/internal/database"
	"github.com/dkovac/pagecraft-api/internal/models"
	"github.com/dkovac/pagecraft-api/internal/schema"
	"github.com/google/uuid"
)

// LibraryService manages reusable component fragments. System entries ship
// with the builder and are immutable from the API.
type LibraryService struct {
	db       *database.DB
	registry *schema.Registry
}

func NewLibraryService(db *database.DB, registry *schema.Registry) *LibraryService {
	return &LibraryService{db: db, registry: registry}
}

type LibraryFilter struct {
	Category        string
	IncludeArchived bool
}

type CreateLibraryComponentInput struct {
	Name      string
	Category  string
	Component models.Component
}

const libraryColumns = `id, name, category, component, is_system, is_archived, created_at, updated_at`

func (s *LibraryService) List(ctx context.Context, filter LibraryFilter) ([]models.LibraryComponent, error) {
	query := `SELECT ` + libraryColumns + ` FROM library_components WHERE ($1 = '' OR category = $1)`
	if !filter.IncludeArchived {
		query += ` AND is_archived = FALSE`
	}
	query += ` ORDER BY name ASC`

	rows, err := s.db.Pool.Query(ctx, query, filter.Category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var components []models.LibraryComponent
	for rows.Next() {
		component, err := scanLibraryComponent(rows)
		if err != nil {
			return nil, err
		}
		components = append(components, *component)
	}
	return components, rows.Err()
}

func (s *LibraryService) GetByID(ctx context.Context, id uuid.UUID) (*models.LibraryComponent, error) {
	component, err := scanLibraryComponent(s.db.Pool.QueryRow(ctx, `
		SELECT `+libraryColumns+` FROM library_components WHERE id = $1
	`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return component, nil
}

func (s *LibraryService) Create(ctx context.Context, input CreateLibraryComponentInput) (*models.LibraryComponent, error) {
	result, err := s.registry.Validate(input.Component)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStructure, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: missing required fields %v", ErrInvalidStructure, result.MissingFields)
	}

	fragment, err := json.Marshal(input.Component)
	if err != nil {
		return nil, err
	}

	component, err := scanLibraryComponent(s.db.Pool.QueryRow(ctx, `
		INSERT INTO library_components (name, category, component)
		VALUES ($1, $2, $3)
		RETURNING `+libraryColumns+`
	`, input.Name, input.Category, fragment))
	if err != nil {
		return nil, err
	}
	return component, nil
}

// Archive toggles the archived flag; system entries refuse.
func (s *LibraryService) Archive(ctx context.Context, id uuid.UUID, archived bool) error {
	return s.guardedWrite(ctx, id, `
		UPDATE library_components SET is_archived = $2, updated_at = NOW()
		WHERE id = $1 AND is_system = FALSE
	`, archived)
}

// Delete hard-deletes a fragment; system entries refuse.
func (s *LibraryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.guardedWrite(ctx, id, `
		DELETE FROM library_components WHERE id = $1 AND is_system = FALSE
	`)
}

func (s *LibraryService) guardedWrite(ctx context.Context, id uuid.UUID, query string, args ...any) error {
	result, err := s.db.Pool.Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return err
	}
	if result.RowsAffected() > 0 {
		return nil
	}

	// Distinguish a missing row from a protected system entry.
	var isSystem bool
	err = s.db.Pool.QueryRow(ctx, `
		SELECT is_system FROM library_components WHERE id = $1
	`, id).Scan(&isSystem)
	if err != nil {
		if isNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	if isSystem {
		return ErrSystemComponent
	}
	return ErrNotFound
}

func scanLibraryComponent(row interface{ Scan(dest ...any) error }) (*models.LibraryComponent, error) {
	var c models.LibraryComponent
	var fragment []byte
	err := row.Scan(&c.ID, &c.Name, &c.Category, &fragment, &c.IsSystem, &c.IsArchived, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(fragment, &c.Component); err != nil {
		return nil, err
	}
	return &c, nil
}
