package schema

import (
	"errors"
	"fmt"

	"github.com/dkovac/pagecraft-api/internal/models"
	"github.com/google/uuid"
)

var ErrNodeNotFound = errors.New("structure node not found")

// StructureError reports a malformed node in a section tree. Path points at
// the offending node ("sections/2/components/0") so editors can highlight it.
type StructureError struct {
	Path    string
	Message string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid structure at %s: %s", e.Path, e.Message)
}

// ValidateStructure checks a full section tree: every section and component
// carries an id, components arrays are present, ids are unique across the
// tree, and every component satisfies its registry entry's required fields.
// The first violation is returned as a *StructureError.
func ValidateStructure(content []models.Section, registry *Registry) error {
	seen := make(map[string]string)

	for si, section := range content {
		sectionPath := fmt.Sprintf("sections/%d", si)

		if section.ID == "" {
			return &StructureError{Path: sectionPath, Message: "section id is required"}
		}
		if prev, dup := seen[section.ID]; dup {
			return &StructureError{Path: sectionPath, Message: fmt.Sprintf("id %q already used at %s", section.ID, prev)}
		}
		seen[section.ID] = sectionPath

		if section.Components == nil {
			return &StructureError{Path: sectionPath, Message: "components array is required"}
		}

		for ci, component := range section.Components {
			componentPath := fmt.Sprintf("%s/components/%d", sectionPath, ci)

			if component.ID == "" {
				return &StructureError{Path: componentPath, Message: "component id is required"}
			}
			if prev, dup := seen[component.ID]; dup {
				return &StructureError{Path: componentPath, Message: fmt.Sprintf("id %q already used at %s", component.ID, prev)}
			}
			seen[component.ID] = componentPath

			result, err := registry.Validate(component)
			if err != nil {
				return &StructureError{Path: componentPath, Message: fmt.Sprintf("unknown component type %q", component.Type)}
			}
			if !result.Valid {
				return &StructureError{Path: componentPath, Message: fmt.Sprintf("missing required fields: %v", result.MissingFields)}
			}
		}
	}

	return nil
}

// CloneStructure deep-copies a section tree, assigning a fresh id to every
// section and component. Parent back-references follow the new section ids.
// Template instantiation uses this so pages never share node ids with the
// template that seeded them.
func CloneStructure(content []models.Section) []models.Section {
	if content == nil {
		return []models.Section{}
	}

	clone := make([]models.Section, len(content))
	for si, section := range content {
		newSection := section
		newSection.ID = uuid.New().String()
		newSection.Components = make([]models.Component, len(section.Components))

		for ci, component := range section.Components {
			newComponent := component
			newComponent.ID = uuid.New().String()
			newComponent.ParentSectionID = newSection.ID
			newComponent.Content = make(map[string]any, len(component.Content))
			for k, v := range component.Content {
				newComponent.Content[k] = v
			}
			newSection.Components[ci] = newComponent
		}
		clone[si] = newSection
	}
	return clone
}

// MoveSection returns a copy of the tree with the section moved to toIndex.
// The move is a splice: every other section keeps its relative order and no
// id is duplicated or dropped. toIndex is clamped to the valid range.
func MoveSection(content []models.Section, sectionID string, toIndex int) ([]models.Section, error) {
	from := -1
	for i, s := range content {
		if s.ID == sectionID {
			from = i
			break
		}
	}
	if from == -1 {
		return nil, fmt.Errorf("%w: section %q", ErrNodeNotFound, sectionID)
	}

	out := make([]models.Section, 0, len(content))
	out = append(out, content[:from]...)
	out = append(out, content[from+1:]...)

	toIndex = clamp(toIndex, 0, len(out))
	out = append(out[:toIndex], append([]models.Section{content[from]}, out[toIndex:]...)...)
	return out, nil
}

// MoveComponent returns a copy of the tree with the component moved to
// toIndex within the given section. Same splice semantics as MoveSection.
func MoveComponent(content []models.Section, sectionID, componentID string, toIndex int) ([]models.Section, error) {
	out := make([]models.Section, len(content))
	copy(out, content)

	for si, section := range out {
		if section.ID != sectionID {
			continue
		}

		from := -1
		for i, c := range section.Components {
			if c.ID == componentID {
				from = i
				break
			}
		}
		if from == -1 {
			return nil, fmt.Errorf("%w: component %q in section %q", ErrNodeNotFound, componentID, sectionID)
		}

		components := make([]models.Component, 0, len(section.Components))
		components = append(components, section.Components[:from]...)
		components = append(components, section.Components[from+1:]...)

		toIndex = clamp(toIndex, 0, len(components))
		components = append(components[:toIndex], append([]models.Component{section.Components[from]}, components[toIndex:]...)...)

		out[si].Components = components
		return out, nil
	}

	return nil, fmt.Errorf("%w: section %q", ErrNodeNotFound, sectionID)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
