package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS pages (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		title VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		content JSONB NOT NULL DEFAULT '[]',
		meta_title VARCHAR(255) NOT NULL DEFAULT '',
		meta_description TEXT NOT NULL DEFAULT '',
		og_image VARCHAR(500) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'draft',
		template_id UUID,
		language VARCHAR(10) NOT NULL DEFAULT 'en',
		author_id UUID,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		published_at TIMESTAMP WITH TIME ZONE,
		UNIQUE(slug, language)
	)`,

	// template_id and author_id are weak references on purpose: templates
	// are copied into pages at creation time and user records live in the
	// identity service, so neither gets a foreign key.

	`CREATE TABLE IF NOT EXISTS page_templates (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		thumbnail VARCHAR(500) NOT NULL DEFAULT '',
		category VARCHAR(100) NOT NULL DEFAULT '',
		structure JSONB NOT NULL DEFAULT '[]',
		is_archived BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS library_components (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		category VARCHAR(100) NOT NULL DEFAULT '',
		component JSONB NOT NULL,
		is_system BOOLEAN NOT NULL DEFAULT FALSE,
		is_archived BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS page_versions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		page_id UUID NOT NULL REFERENCES pages(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		content JSONB NOT NULL,
		created_by UUID,
		is_active BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	// At most one active version per page, enforced at the storage layer.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_page_versions_one_active
		ON page_versions(page_id) WHERE is_active`,

	`CREATE INDEX IF NOT EXISTS idx_pages_slug_language ON pages(slug, language)`,
	`CREATE INDEX IF NOT EXISTS idx_pages_status ON pages(status)`,
	`CREATE INDEX IF NOT EXISTS idx_page_versions_page_id ON page_versions(page_id)`,
	`CREATE INDEX IF NOT EXISTS idx_page_templates_category ON page_templates(category)`,
	`CREATE INDEX IF NOT EXISTS idx_library_components_category ON library_components(category)`,

	// Built-in library entries shipped with the builder UI.
	`INSERT INTO library_components (name, category, component, is_system)
	SELECT 'Heading', 'text', '{"id": "lib-heading", "type": "text", "content": {"text": "Heading", "size": "xl", "alignment": "left"}}', TRUE
	WHERE NOT EXISTS (SELECT 1 FROM library_components WHERE name = 'Heading' AND is_system)`,

	`INSERT INTO library_components (name, category, component, is_system)
	SELECT 'Call to action', 'buttons', '{"id": "lib-cta", "type": "button", "content": {"label": "Contact us", "url": "/contact", "variant": "primary"}}', TRUE
	WHERE NOT EXISTS (SELECT 1 FROM library_components WHERE name = 'Call to action' AND is_system)`,

	`INSERT INTO library_components (name, category, component, is_system)
	SELECT 'Location map', 'embeds', '{"id": "lib-map", "type": "map", "content": {"address": "", "zoom": 14}}', TRUE
	WHERE NOT EXISTS (SELECT 1 FROM library_components WHERE name = 'Location map' AND is_system)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
