package schema

import (
	"testing"

	"github.com/dkovac/pagecraft-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStructure() []models.Section {
	return []models.Section{
		{
			ID:    "s1",
			Title: "Intro",
			Components: []models.Component{
				{ID: "c1", Type: "text", ParentSectionID: "s1", Content: map[string]any{
					"text": "Welcome", "size": "lg", "alignment": "center",
				}},
				{ID: "c2", Type: "image", ParentSectionID: "s1", Content: map[string]any{
					"src": "/img/depot.jpg", "alt": "Depot",
				}},
			},
		},
		{
			ID:    "s2",
			Title: "Find us",
			Components: []models.Component{
				{ID: "c3", Type: "map", ParentSectionID: "s2", Content: map[string]any{
					"address": "12 Harbour Rd", "zoom": float64(15),
				}},
			},
		},
	}
}

func TestValidateStructure_WellFormed(t *testing.T) {
	reg := NewRegistry()

	assert.NoError(t, ValidateStructure(sampleStructure(), reg))
}

func TestValidateStructure_EmptyIsValid(t *testing.T) {
	reg := NewRegistry()

	assert.NoError(t, ValidateStructure([]models.Section{}, reg))
}

func TestValidateStructure_MissingSectionID(t *testing.T) {
	reg := NewRegistry()
	content := sampleStructure()
	content[1].ID = ""

	err := ValidateStructure(content, reg)

	var serr *StructureError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "sections/1", serr.Path)
}

func TestValidateStructure_NilComponents(t *testing.T) {
	reg := NewRegistry()
	content := sampleStructure()
	content[0].Components = nil

	err := ValidateStructure(content, reg)

	var serr *StructureError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "sections/0", serr.Path)
}

func TestValidateStructure_DuplicateID(t *testing.T) {
	reg := NewRegistry()
	content := sampleStructure()
	content[1].Components[0].ID = "c1"

	err := ValidateStructure(content, reg)

	var serr *StructureError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "sections/1/components/0", serr.Path)
}

func TestValidateStructure_UnknownType(t *testing.T) {
	reg := NewRegistry()
	content := sampleStructure()
	content[0].Components[1].Type = "nonexistent-widget"

	err := ValidateStructure(content, reg)

	var serr *StructureError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "sections/0/components/1", serr.Path)
	assert.Contains(t, serr.Message, "nonexistent-widget")
}

func TestValidateStructure_MissingRequiredField(t *testing.T) {
	reg := NewRegistry()
	content := sampleStructure()
	delete(content[1].Components[0].Content, "zoom")

	err := ValidateStructure(content, reg)

	var serr *StructureError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "sections/1/components/0", serr.Path)
	assert.Contains(t, serr.Message, "zoom")
}

func TestCloneStructure_FreshIDs(t *testing.T) {
	original := sampleStructure()

	clone := CloneStructure(original)

	require.Len(t, clone, len(original))
	originalIDs := map[string]bool{}
	for _, s := range original {
		originalIDs[s.ID] = true
		for _, c := range s.Components {
			originalIDs[c.ID] = true
		}
	}
	for si, s := range clone {
		assert.False(t, originalIDs[s.ID], "section id reused")
		for _, c := range s.Components {
			assert.False(t, originalIDs[c.ID], "component id reused")
			assert.Equal(t, s.ID, c.ParentSectionID)
		}
		assert.Equal(t, original[si].Title, s.Title)
	}
}

func TestCloneStructure_Isolation(t *testing.T) {
	original := sampleStructure()

	clone := CloneStructure(original)
	clone[0].Components[0].Content["text"] = "mutated"
	clone[0].Title = "mutated"

	assert.Equal(t, "Welcome", original[0].Components[0].Content["text"])
	assert.Equal(t, "Intro", original[0].Title)
}

func TestCloneStructure_Nil(t *testing.T) {
	clone := CloneStructure(nil)

	assert.NotNil(t, clone)
	assert.Empty(t, clone)
}

func TestMoveSection(t *testing.T) {
	content := sampleStructure()

	moved, err := MoveSection(content, "s2", 0)

	require.NoError(t, err)
	assert.Equal(t, "s2", moved[0].ID)
	assert.Equal(t, "s1", moved[1].ID)
	assert.Len(t, moved, 2)
	// original untouched
	assert.Equal(t, "s1", content[0].ID)
}

func TestMoveSection_ClampsIndex(t *testing.T) {
	content := sampleStructure()

	moved, err := MoveSection(content, "s1", 99)

	require.NoError(t, err)
	assert.Equal(t, "s2", moved[0].ID)
	assert.Equal(t, "s1", moved[1].ID)
}

func TestMoveSection_NotFound(t *testing.T) {
	_, err := MoveSection(sampleStructure(), "missing", 0)

	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestMoveComponent(t *testing.T) {
	content := sampleStructure()

	moved, err := MoveComponent(content, "s1", "c2", 0)

	require.NoError(t, err)
	assert.Equal(t, "c2", moved[0].Components[0].ID)
	assert.Equal(t, "c1", moved[0].Components[1].ID)
	assert.Len(t, moved[0].Components, 2)
	// original untouched
	assert.Equal(t, "c1", content[0].Components[0].ID)
}

func TestMoveComponent_SectionNotFound(t *testing.T) {
	_, err := MoveComponent(sampleStructure(), "missing", "c1", 0)

	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestMoveComponent_ComponentNotFound(t *testing.T) {
	_, err := MoveComponent(sampleStructure(), "s1", "missing", 0)

	assert.ErrorIs(t, err, ErrNodeNotFound)
}
