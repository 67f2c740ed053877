package schema

import (
	"errors"
	"fmt"

	"github.com/dkovac/pagecraft-api/internal/models"
)

var ErrUnknownComponentType = errors.New("unknown component type")

type FieldKind string

const (
	FieldString  FieldKind = "string"
	FieldNumber  FieldKind = "number"
	FieldBoolean FieldKind = "boolean"
	FieldEnum    FieldKind = "enum"
	FieldObject  FieldKind = "object"
)

// FieldSpec describes one content field of a component type.
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Required bool
	Default  any
	Enum     []string
}

// ComponentSpec is the registry entry for one component type.
type ComponentSpec struct {
	Type   string
	Fields []FieldSpec
}

// Field returns the spec for a named field, if declared.
func (s ComponentSpec) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// RequiredFields returns the names of all required fields.
func (s ComponentSpec) RequiredFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Result is the outcome of validating a single component's content.
type Result struct {
	Valid         bool
	MissingFields []string
}

// Registry maps component type names to their content-field schemas.
// A registry is built once at startup and read concurrently afterwards;
// Register must not be called after the registry is shared.
type Registry struct {
	specs map[string]ComponentSpec
}

// NewRegistry returns a registry seeded with the built-in component types.
func NewRegistry() *Registry {
	r := &Registry{specs: make(map[string]ComponentSpec)}
	for _, spec := range builtinSpecs {
		r.specs[spec.Type] = spec
	}
	return r
}

// Register adds or replaces a component type spec.
func (r *Registry) Register(spec ComponentSpec) {
	r.specs[spec.Type] = spec
}

// Spec looks up the schema for a component type.
func (r *Registry) Spec(componentType string) (ComponentSpec, error) {
	spec, ok := r.specs[componentType]
	if !ok {
		return ComponentSpec{}, fmt.Errorf("%w: %q", ErrUnknownComponentType, componentType)
	}
	return spec, nil
}

// Types returns all registered type names.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	return names
}

// Validate checks that a component's content carries every required field of
// its type. Extra keys are tolerated. Unknown types return
// ErrUnknownComponentType; the caller decides whether that is fatal.
func (r *Registry) Validate(c models.Component) (Result, error) {
	spec, err := r.Spec(c.Type)
	if err != nil {
		return Result{}, err
	}

	var missing []string
	for _, f := range spec.Fields {
		if !f.Required {
			continue
		}
		if v, ok := c.Content[f.Name]; !ok || v == nil {
			missing = append(missing, f.Name)
		}
	}

	return Result{Valid: len(missing) == 0, MissingFields: missing}, nil
}

// ApplyDefaults returns a copy of the component with declared defaults filled
// in for absent optional fields. The input component is not mutated.
func (r *Registry) ApplyDefaults(c models.Component) (models.Component, error) {
	spec, err := r.Spec(c.Type)
	if err != nil {
		return models.Component{}, err
	}

	content := make(map[string]any, len(c.Content)+len(spec.Fields))
	for k, v := range c.Content {
		content[k] = v
	}
	for _, f := range spec.Fields {
		if _, ok := content[f.Name]; !ok && f.Default != nil {
			content[f.Name] = f.Default
		}
	}

	out := c
	out.Content = content
	return out, nil
}

var builtinSpecs = []ComponentSpec{
	{
		Type: "text",
		Fields: []FieldSpec{
			{Name: "text", Kind: FieldString, Required: true},
			{Name: "size", Kind: FieldEnum, Required: true, Default: "md", Enum: []string{"sm", "md", "lg", "xl"}},
			{Name: "alignment", Kind: FieldEnum, Required: true, Default: "left", Enum: []string{"left", "center", "right", "justify"}},
			{Name: "color", Kind: FieldString, Default: ""},
		},
	},
	{
		Type: "image",
		Fields: []FieldSpec{
			{Name: "src", Kind: FieldString, Required: true},
			{Name: "alt", Kind: FieldString, Required: true, Default: ""},
			{Name: "caption", Kind: FieldString, Default: ""},
			{Name: "rounded", Kind: FieldBoolean, Default: false},
		},
	},
	{
		Type: "button",
		Fields: []FieldSpec{
			{Name: "label", Kind: FieldString, Required: true},
			{Name: "url", Kind: FieldString, Required: true},
			{Name: "variant", Kind: FieldEnum, Default: "primary", Enum: []string{"primary", "secondary", "outline"}},
			{Name: "new_tab", Kind: FieldBoolean, Default: false},
		},
	},
	{
		Type: "map",
		Fields: []FieldSpec{
			{Name: "address", Kind: FieldString, Required: true},
			{Name: "zoom", Kind: FieldNumber, Required: true, Default: float64(14)},
		},
	},
	{
		Type: "list",
		Fields: []FieldSpec{
			{Name: "items", Kind: FieldObject, Required: true},
			{Name: "style", Kind: FieldEnum, Default: "bullet", Enum: []string{"bullet", "numbered", "checklist"}},
		},
	},
	{
		Type: "video",
		Fields: []FieldSpec{
			{Name: "url", Kind: FieldString, Required: true},
			{Name: "autoplay", Kind: FieldBoolean, Default: false},
			{Name: "loop", Kind: FieldBoolean, Default: false},
		},
	},
	{
		Type: "html",
		Fields: []FieldSpec{
			{Name: "markup", Kind: FieldString, Required: true},
		},
	},
	{
		Type: "spacer",
		Fields: []FieldSpec{
			{Name: "height", Kind: FieldNumber, Default: float64(32)},
		},
	},
	{
		Type: "divider",
		Fields: []FieldSpec{
			{Name: "style", Kind: FieldEnum, Default: "solid", Enum: []string{"solid", "dashed", "dotted"}},
		},
	},
}
