// Package types provides type definitions for the resume document model shared
// throughout the resume-architect system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo represents the contact block at the top of a resume.
// All fields are free text; no format validation is applied.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// SetField sets one personal-info field by its JSON name.
// Unknown fields are ignored.
func (p *PersonalInfo) SetField(field, value string) {
	switch field {
	case "name":
		p.Name = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "address":
		p.Address = value
	case "linkedin":
		p.LinkedIn = value
	case "github":
		p.GitHub = value
	case "photoUrl":
		p.PhotoURL = value
	}
}

// Theme selects a color palette and font by key. Keys are resolved against
// fixed lookup tables; an unresolvable key falls back to the first entry.
type Theme struct {
	Color string `json:"color"`
	Font  string `json:"font"`
}

// Layout identifies one of the fixed template strategies.
type Layout string

// The six supported template layouts.
const (
	LayoutModern     Layout = "modern"
	LayoutCreative   Layout = "creative"
	LayoutCorporate  Layout = "corporate"
	LayoutTwoColumn  Layout = "two-column"
	LayoutMinimalist Layout = "minimalist"
	LayoutArtistic   Layout = "artistic"
)

// Layouts returns all template layouts in display order.
func Layouts() []Layout {
	return []Layout{
		LayoutModern,
		LayoutCreative,
		LayoutCorporate,
		LayoutTwoColumn,
		LayoutMinimalist,
		LayoutArtistic,
	}
}

// IsValid reports whether the layout is one of the fixed template identifiers.
func (l Layout) IsValid() bool {
	switch l {
	case LayoutModern, LayoutCreative, LayoutCorporate, LayoutTwoColumn, LayoutMinimalist, LayoutArtistic:
		return true
	default:
		return false
	}
}

// ResumeData is the complete document: personal info plus an ordered sequence
// of sections, styled by a theme and projected through a layout. Slice order
// is the authoritative render and edit order.
type ResumeData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Sections     []Section    `json:"sections"`
	Theme        Theme        `json:"theme"`
	Layout       Layout       `json:"layout"`
}

// Clone returns a deep copy of the document. Mutation operations clone first
// so the caller's value is never modified in place.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.Sections = make([]Section, len(d.Sections))
	for i, s := range d.Sections {
		out.Sections[i] = s.Clone()
	}
	return out
}

// SectionIndex returns the index of the section with the given id, or -1.
func (d ResumeData) SectionIndex(id string) int {
	for i, s := range d.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Section is a named, typed, independently visible and reorderable block of
// resume content. Title is a user-editable display label independent of Type.
type Section struct {
	ID      string         `json:"id"`
	Type    SectionType    `json:"type"`
	Title   string         `json:"title"`
	Visible bool           `json:"visible"`
	Content SectionContent `json:"content"`
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := s
	if s.Content != nil {
		out.Content = s.Content.Clone()
	}
	return out
}
