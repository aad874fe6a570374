// Package editor applies structural edits to a resume document. Every
// operation is a pure function: it clones the input, applies one user-visible
// edit, and returns the new value with document invariants intact. Malformed
// ids and out-of-range indices are no-ops rather than errors, since they can
// arise benignly from rapid UI events (remove-then-drop races).
package editor

import (
	"github.com/jonathan/resume-architect/internal/registry"
	"github.com/jonathan/resume-architect/internal/types"
)

// UpdatePersonalField sets one personal-info field by JSON name.
func UpdatePersonalField(doc types.ResumeData, field, value string) types.ResumeData {
	out := doc.Clone()
	out.PersonalInfo.SetField(field, value)
	return out
}

// UpdateSectionTitle sets the display label of a section. Missing ids are a
// no-op.
func UpdateSectionTitle(doc types.ResumeData, sectionID, title string) types.ResumeData {
	out := doc.Clone()
	if i := out.SectionIndex(sectionID); i >= 0 {
		out.Sections[i].Title = title
	}
	return out
}

// UpdateSectionContent replaces a section's content wholesale. The content
// must already be the variant matching the section's type; decoding through
// types.DecodeContent at the API boundary guarantees that.
func UpdateSectionContent(doc types.ResumeData, sectionID string, content types.SectionContent) types.ResumeData {
	out := doc.Clone()
	if i := out.SectionIndex(sectionID); i >= 0 && content != nil {
		out.Sections[i].Content = content.Clone()
	}
	return out
}

// SetSectionVisible toggles whether a section appears in rendered output.
func SetSectionVisible(doc types.ResumeData, sectionID string, visible bool) types.ResumeData {
	out := doc.Clone()
	if i := out.SectionIndex(sectionID); i >= 0 {
		out.Sections[i].Visible = visible
	}
	return out
}

// AddSection appends a new section of the given type with a fresh id,
// registry-default content, and a title derived from the type's display name.
func AddSection(doc types.ResumeData, sectionType types.SectionType) types.ResumeData {
	out := doc.Clone()
	out.Sections = append(out.Sections, registry.NewSection(sectionType))
	return out
}

// RemoveSection removes the section with the given id. Missing ids are a
// no-op.
func RemoveSection(doc types.ResumeData, sectionID string) types.ResumeData {
	out := doc.Clone()
	if i := out.SectionIndex(sectionID); i >= 0 {
		out.Sections = append(out.Sections[:i], out.Sections[i+1:]...)
	}
	return out
}

// ReorderSections moves the section with movedID to the position of targetID,
// shifting the rest. This realizes drag-and-drop: drag start captures
// movedID, drop supplies targetID. No-op if either id is missing or they are
// equal; the currently-dragged identity is transient UI state and never part
// of the document.
func ReorderSections(doc types.ResumeData, movedID, targetID string) types.ResumeData {
	if movedID == targetID {
		return doc.Clone()
	}

	out := doc.Clone()
	from := out.SectionIndex(movedID)
	to := out.SectionIndex(targetID)
	if from < 0 || to < 0 {
		return out
	}

	moved := out.Sections[from]
	out.Sections = append(out.Sections[:from], out.Sections[from+1:]...)
	out.Sections = append(out.Sections[:to], append([]types.Section{moved}, out.Sections[to:]...)...)
	return out
}

// AddListItem appends a registry-default item with a fresh id to a section
// whose content is a list. Sections with scalar content are a no-op.
func AddListItem(doc types.ResumeData, sectionID string) types.ResumeData {
	out := doc.Clone()
	i := out.SectionIndex(sectionID)
	if i < 0 {
		return out
	}
	if list, ok := out.Sections[i].Content.(types.ItemList); ok {
		out.Sections[i].Content = list.AppendNew(registry.NewID(string(out.Sections[i].Type)))
	}
	return out
}

// UpdateListItem sets one field of the item at index in a list section.
// Missing ids, scalar sections, out-of-range indices, and unknown fields are
// no-ops.
func UpdateListItem(doc types.ResumeData, sectionID string, index int, field, value string) types.ResumeData {
	out := doc.Clone()
	i := out.SectionIndex(sectionID)
	if i < 0 {
		return out
	}
	if list, ok := out.Sections[i].Content.(types.ItemList); ok {
		out.Sections[i].Content = list.UpdateField(index, field, value)
	}
	return out
}

// RemoveListItem removes the item at index from a list section. Out-of-range
// indices are a no-op; remaining items keep their order.
func RemoveListItem(doc types.ResumeData, sectionID string, index int) types.ResumeData {
	out := doc.Clone()
	i := out.SectionIndex(sectionID)
	if i < 0 {
		return out
	}
	if list, ok := out.Sections[i].Content.(types.ItemList); ok {
		out.Sections[i].Content = list.RemoveAt(index)
	}
	return out
}

// ThemePatch is a partial theme update; nil fields are left unchanged.
type ThemePatch struct {
	Color *string `json:"color"`
	Font  *string `json:"font"`
}

// SetTheme shallow-merges the patch into the document theme.
func SetTheme(doc types.ResumeData, patch ThemePatch) types.ResumeData {
	out := doc.Clone()
	if patch.Color != nil {
		out.Theme.Color = *patch.Color
	}
	if patch.Font != nil {
		out.Theme.Font = *patch.Font
	}
	return out
}

// SetLayout replaces the template layout wholesale. The value is stored as
// given; rendering falls back to the default template for unknown layouts.
func SetLayout(doc types.ResumeData, layout types.Layout) types.ResumeData {
	out := doc.Clone()
	out.Layout = layout
	return out
}

// ReplaceDocument swaps the document wholesale, used by JSON import and the
// parse/enhance flows. The caller is responsible for validating the new
// document at its own boundary.
func ReplaceDocument(_ types.ResumeData, next types.ResumeData) types.ResumeData {
	return next.Clone()
}
