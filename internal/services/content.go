package services

import (
	"encoding/json"

	"github.com/dkovac/pagecraft-api/internal/models"
)

// encodeContent marshals a section tree for a JSONB column. A nil tree is
// stored as an empty array — page content is never null.
func encodeContent(content []models.Section) (json.RawMessage, error) {
	if content == nil {
		content = []models.Section{}
	}
	return json.Marshal(content)
}

// decodeContent unmarshals a JSONB section tree, normalizing null to an
// empty slice.
func decodeContent(raw []byte) ([]models.Section, error) {
	if len(raw) == 0 {
		return []models.Section{}, nil
	}
	var content []models.Section
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, err
	}
	if content == nil {
		content = []models.Section{}
	}
	return content, nil
}
