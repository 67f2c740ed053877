package services

import (
	"context"
	"fmt"

	"github.com/dkovac/pagecraft-api/internal/database"
	"github.com/dkovac/pagecraft-api/internal/models"
	"github.com/dkovac/pagecraft-api/internal/schema"
	"github.com/google/uuid"
)

type PageService struct {
	db       *database.DB
	registry *schema.Registry
}

func NewPageService(db *database.DB, registry *schema.Registry) *PageService {
	return &PageService{db: db, registry: registry}
}

type PageFilter struct {
	Status   models.PageStatus
	Language string
}

type CreatePageInput struct {
	Title       string
	Slug        string
	Description string
	Language    string
	Content     []models.Section
	TemplateID  *uuid.UUID
}

type UpdatePageMetaInput struct {
	Title           *string
	Description     *string
	MetaTitle       *string
	MetaDescription *string
	OGImage         *string
}

const pageColumns = `id, title, slug, description, content, meta_title, meta_description,
	og_image, status, template_id, language, author_id, created_at, updated_at, published_at`

func (s *PageService) List(ctx context.Context, filter PageFilter) ([]models.Page, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+pageColumns+`
		FROM pages
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR language = $2)
		ORDER BY updated_at DESC
	`, string(filter.Status), filter.Language)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *page)
	}
	return pages, rows.Err()
}

func (s *PageService) GetByID(ctx context.Context, id uuid.UUID) (*models.Page, error) {
	page, err := scanPage(s.db.Pool.QueryRow(ctx, `
		SELECT `+pageColumns+` FROM pages WHERE id = $1
	`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return page, nil
}

func (s *PageService) GetBySlug(ctx context.Context, slug, language string) (*models.Page, error) {
	page, err := scanPage(s.db.Pool.QueryRow(ctx, `
		SELECT `+pageColumns+` FROM pages WHERE slug = $1 AND language = $2
	`, slug, language))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return page, nil
}

// Create inserts a new page. When TemplateID is set the caller has already
// instantiated the template; Content arrives as the copied tree. Slug
// collisions within a language are rejected, never auto-renamed.
func (s *PageService) Create(ctx context.Context, input CreatePageInput, authorID uuid.UUID) (*models.Page, error) {
	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Title)
	}
	if slug == "" {
		return nil, ErrInvalidSlug
	}

	language := input.Language
	if language == "" {
		language = "en"
	}

	if err := schema.ValidateStructure(input.Content, s.registry); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStructure, err)
	}

	content, err := encodeContent(input.Content)
	if err != nil {
		return nil, err
	}

	var author *uuid.UUID
	if authorID != uuid.Nil {
		author = &authorID
	}

	page, err := scanPage(s.db.Pool.QueryRow(ctx, `
		INSERT INTO pages (title, slug, description, content, template_id, language, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+pageColumns+`
	`, input.Title, slug, input.Description, content, input.TemplateID, language, author))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return page, nil
}

// UpdateContent replaces the page's section tree wholesale. The structure is
// validated before anything is written; a malformed tree is never partially
// persisted.
func (s *PageService) UpdateContent(ctx context.Context, id uuid.UUID, content []models.Section) (*models.Page, error) {
	if err := schema.ValidateStructure(content, s.registry); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStructure, err)
	}

	encoded, err := encodeContent(content)
	if err != nil {
		return nil, err
	}

	page, err := scanPage(s.db.Pool.QueryRow(ctx, `
		UPDATE pages SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+pageColumns+`
	`, id, encoded))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return page, nil
}

func (s *PageService) UpdateMeta(ctx context.Context, id uuid.UUID, input UpdatePageMetaInput) (*models.Page, error) {
	page, err := scanPage(s.db.Pool.QueryRow(ctx, `
		UPDATE pages SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			meta_title = COALESCE($4, meta_title),
			meta_description = COALESCE($5, meta_description),
			og_image = COALESCE($6, og_image),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+pageColumns+`
	`, id, input.Title, input.Description, input.MetaTitle, input.MetaDescription, input.OGImage))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return page, nil
}

// SetStatus transitions the page's lifecycle state. The first transition
// into published stamps published_at; nothing ever clears it again, so
// "was ever published" survives round-trips back to draft.
func (s *PageService) SetStatus(ctx context.Context, id uuid.UUID, status models.PageStatus) (*models.Page, error) {
	if !models.ValidPageStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	page, err := scanPage(s.db.Pool.QueryRow(ctx, `
		UPDATE pages SET
			status = $2,
			published_at = CASE WHEN $2 = 'published' THEN COALESCE(published_at, NOW()) ELSE published_at END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+pageColumns+`
	`, id, string(status)))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return page, nil
}

// ReorderSection moves a section to a new index, preserving every other
// section's relative order.
func (s *PageService) ReorderSection(ctx context.Context, id uuid.UUID, sectionID string, toIndex int) (*models.Page, error) {
	page, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	moved, err := schema.MoveSection(page.Content, sectionID, toIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStructure, err)
	}
	return s.UpdateContent(ctx, id, moved)
}

// ReorderComponent moves a component within its section.
func (s *PageService) ReorderComponent(ctx context.Context, id uuid.UUID, sectionID, componentID string, toIndex int) (*models.Page, error) {
	page, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	moved, err := schema.MoveComponent(page.Content, sectionID, componentID, toIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStructure, err)
	}
	return s.UpdateContent(ctx, id, moved)
}

// Delete removes the page; its versions go with it via the cascade.
func (s *PageService) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.Pool.Exec(ctx, `DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPage(row interface{ Scan(dest ...any) error }) (*models.Page, error) {
	var p models.Page
	var content []byte
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &content,
		&p.MetaTitle, &p.MetaDescription, &p.OGImage, &p.Status, &p.TemplateID,
		&p.Language, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt, &p.PublishedAt)
	if err != nil {
		return nil, err
	}
	if p.Content, err = decodeContent(content); err != nil {
		return nil, err
	}
	return &p, nil
}
