// Package registry maps each section type to its metadata: default content,
// fresh item factory, display name, editor control kind, and the column group
// it belongs to in multi-column templates. Both the editor and the template
// renderer dispatch through these tables instead of scattering per-type
// branches.
package registry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-architect/internal/types"
)

// ControlKind identifies which editor control set edits a section type.
type ControlKind string

// The two control sets: a scalar text area, or a repeatable-item editor.
const (
	ControlTextArea ControlKind = "textarea"
	ControlItemList ControlKind = "items"
)

// Definition is the per-type metadata record.
type Definition struct {
	Type        types.SectionType
	DisplayName string
	Control     ControlKind
}

// definitions is keyed by section type; display order comes from
// types.SectionTypes.
var definitions = map[types.SectionType]Definition{
	types.SectionSummary:        {Type: types.SectionSummary, DisplayName: "Professional Summary", Control: ControlTextArea},
	types.SectionExperience:     {Type: types.SectionExperience, DisplayName: "Work Experience", Control: ControlItemList},
	types.SectionEducation:      {Type: types.SectionEducation, DisplayName: "Education", Control: ControlItemList},
	types.SectionSkills:         {Type: types.SectionSkills, DisplayName: "Skills", Control: ControlTextArea},
	types.SectionProjects:       {Type: types.SectionProjects, DisplayName: "Projects", Control: ControlItemList},
	types.SectionCertifications: {Type: types.SectionCertifications, DisplayName: "Certifications", Control: ControlItemList},
	types.SectionLanguages:      {Type: types.SectionLanguages, DisplayName: "Languages", Control: ControlTextArea},
}

// Lookup returns the definition for a section type.
func Lookup(t types.SectionType) (Definition, bool) {
	def, ok := definitions[t]
	return def, ok
}

// DisplayName returns the human-readable label for a section type. Unknown
// types fall back to the raw type string.
func DisplayName(t types.SectionType) string {
	if def, ok := definitions[t]; ok {
		return def.DisplayName
	}
	return string(t)
}

// DefaultContent returns the default/empty content value for a section type:
// empty text for scalar types, an empty typed list otherwise.
func DefaultContent(t types.SectionType) types.SectionContent {
	return types.EmptyContent(t)
}

// NewSection constructs a section of the given type with a fresh id,
// registry-default content, and a title derived from the type's display name.
// Unrecognized types still yield a usable section with empty list content.
func NewSection(t types.SectionType) types.Section {
	return types.Section{
		ID:      NewID(string(t)),
		Type:    t,
		Title:   DisplayName(t),
		Visible: true,
		Content: DefaultContent(t),
	}
}

// NewID generates an id unique within any container at construction time.
// The prefix keeps ids readable in exported JSON.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}

// ColumnGroup identifies which region of a multi-column template a section
// is routed to.
type ColumnGroup string

// Multi-column templates route each section to the main flow or the sidebar.
const (
	ColumnMain    ColumnGroup = "main"
	ColumnSidebar ColumnGroup = "sidebar"
)

// columnPartitions is per-template: single-column layouts have no entry and
// render every section in document order.
var columnPartitions = map[types.Layout]map[types.SectionType]ColumnGroup{
	types.LayoutTwoColumn: {
		types.SectionSummary:        ColumnMain,
		types.SectionExperience:     ColumnMain,
		types.SectionProjects:       ColumnMain,
		types.SectionEducation:      ColumnSidebar,
		types.SectionSkills:         ColumnSidebar,
		types.SectionLanguages:      ColumnSidebar,
		types.SectionCertifications: ColumnSidebar,
	},
	types.LayoutCreative: {
		types.SectionSummary:        ColumnMain,
		types.SectionExperience:     ColumnMain,
		types.SectionProjects:       ColumnMain,
		types.SectionEducation:      ColumnSidebar,
		types.SectionSkills:         ColumnSidebar,
		types.SectionLanguages:      ColumnSidebar,
		types.SectionCertifications: ColumnSidebar,
	},
}

// Column returns the column group for a section type under the given layout.
// Layouts without a partition, and unknown types, route to the main flow.
func Column(layout types.Layout, t types.SectionType) ColumnGroup {
	partition, ok := columnPartitions[layout]
	if !ok {
		return ColumnMain
	}
	if group, ok := partition[t]; ok {
		return group
	}
	return ColumnMain
}
