package services

import (
	"context"
	"fmt"

	"github.com/dkovac/pagecraft-api/internal/database"
	"github.com/dkovac/pagecraft-api/internal/models"
	"github.com/dkovac/pagecraft-api/internal/schema"
	"github.com/google/uuid"
)

type TemplateService struct {
	db       *database.DB
	registry *schema.Registry
}

func NewTemplateService(db *database.DB, registry *schema.Registry) *TemplateService {
	return &TemplateService{db: db, registry: registry}
}

type TemplateFilter struct {
	Category        string
	IncludeArchived bool
	GroupByCategory bool
}

type CreateTemplateInput struct {
	Name        string
	Slug        string
	Description string
	Thumbnail   string
	Category    string
	Structure   []models.Section
}

type UpdateTemplateInput struct {
	Name        *string
	Description *string
	Thumbnail   *string
	Category    *string
	Structure   []models.Section
}

const templateColumns = `id, name, slug, description, thumbnail, category, structure, is_archived, created_at, updated_at`

func (s *TemplateService) List(ctx context.Context, filter TemplateFilter) ([]models.PageTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM page_templates WHERE ($1 = '' OR category = $1)`
	if !filter.IncludeArchived {
		query += ` AND is_archived = FALSE`
	}
	if filter.GroupByCategory {
		query += ` ORDER BY category ASC, name ASC`
	} else {
		query += ` ORDER BY name ASC`
	}

	rows, err := s.db.Pool.Query(ctx, query, filter.Category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []models.PageTemplate
	for rows.Next() {
		var t models.PageTemplate
		var structure []byte
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Description, &t.Thumbnail,
			&t.Category, &structure, &t.IsArchived, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		if t.Structure, err = decodeContent(structure); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (s *TemplateService) GetByID(ctx context.Context, id uuid.UUID) (*models.PageTemplate, error) {
	return s.scanOne(s.db.Pool.QueryRow(ctx, `
		SELECT `+templateColumns+` FROM page_templates WHERE id = $1
	`, id))
}

func (s *TemplateService) Create(ctx context.Context, input CreateTemplateInput) (*models.PageTemplate, error) {
	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Name)
	}
	if slug == "" {
		return nil, ErrInvalidSlug
	}

	if err := schema.ValidateStructure(input.Structure, s.registry); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStructure, err)
	}

	structure, err := encodeContent(input.Structure)
	if err != nil {
		return nil, err
	}

	template, err := s.scanOne(s.db.Pool.QueryRow(ctx, `
		INSERT INTO page_templates (name, slug, description, thumbnail, category, structure)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+templateColumns+`
	`, input.Name, slug, input.Description, input.Thumbnail, input.Category, structure))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return template, nil
}

func (s *TemplateService) Update(ctx context.Context, id uuid.UUID, input UpdateTemplateInput) (*models.PageTemplate, error) {
	var structure any
	if input.Structure != nil {
		if err := schema.ValidateStructure(input.Structure, s.registry); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidStructure, err)
		}
		encoded, err := encodeContent(input.Structure)
		if err != nil {
			return nil, err
		}
		structure = encoded
	}

	template, err := s.scanOne(s.db.Pool.QueryRow(ctx, `
		UPDATE page_templates SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			thumbnail = COALESCE($4, thumbnail),
			category = COALESCE($5, category),
			structure = COALESCE($6, structure),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+templateColumns+`
	`, id, input.Name, input.Description, input.Thumbnail, input.Category, structure))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return template, nil
}

// Instantiate deep-copies the template's structure with fresh node ids. The
// result seeds a new page; the template keeps no reference to it.
func (s *TemplateService) Instantiate(ctx context.Context, id uuid.UUID) ([]models.Section, error) {
	template, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return schema.CloneStructure(template.Structure), nil
}

// Archive toggles the soft-delete flag. Idempotent; pages already built from
// the template are unaffected.
func (s *TemplateService) Archive(ctx context.Context, id uuid.UUID, archived bool) error {
	result, err := s.db.Pool.Exec(ctx, `
		UPDATE page_templates SET is_archived = $2, updated_at = NOW() WHERE id = $1
	`, id, archived)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete is unconditional: pages hold copies of the structure, never
// references, so no existing page can dangle.
func (s *TemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.Pool.Exec(ctx, `DELETE FROM page_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TemplateService) scanOne(row interface{ Scan(dest ...any) error }) (*models.PageTemplate, error) {
	var t models.PageTemplate
	var structure []byte
	err := row.Scan(&t.ID, &t.Name, &t.Slug, &t.Description, &t.Thumbnail,
		&t.Category, &structure, &t.IsArchived, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if t.Structure, err = decodeContent(structure); err != nil {
		return nil, err
	}
	return &t, nil
}
