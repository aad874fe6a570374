package types

import (
	"encoding/json"
	"fmt"
)

// SectionType discriminates the shape of a section's content payload.
type SectionType string

// The supported section types. Scalar types carry TextContent; the rest carry
// a typed item list.
const (
	SectionSummary        SectionType = "summary"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionSkills         SectionType = "skills"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
	SectionLanguages      SectionType = "languages"
)

// SectionTypes returns all section types in display order.
func SectionTypes() []SectionType {
	return []SectionType{
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionProjects,
		SectionCertifications,
		SectionLanguages,
	}
}

// IsScalar reports whether the type carries plain text rather than an item list.
func (t SectionType) IsScalar() bool {
	switch t {
	case SectionSummary, SectionSkills, SectionLanguages:
		return true
	default:
		return false
	}
}

// SectionContent is the tagged-union payload of a section. The runtime variant
// is fixed by the section's type and enforced when content is decoded or
// replaced, never by callers remembering to pass the right shape.
type SectionContent interface {
	Clone() SectionContent
	sectionContent()
}

// ItemList is implemented by the list-shaped content variants. All methods are
// copy-on-write: the receiver is never modified.
type ItemList interface {
	SectionContent
	Len() int
	// AppendNew appends an empty item carrying the given id.
	AppendNew(id string) ItemList
	// UpdateField sets one field (by JSON name) on the item at index.
	// Out-of-range indices and unknown fields are no-ops.
	UpdateField(index int, field, value string) ItemList
	// RemoveAt removes the item at index; out of range is a no-op.
	RemoveAt(index int) ItemList
}

// TextContent is the payload of summary, skills, and languages sections.
// Skills and languages may embed comma-separated lists for display splitting.
type TextContent string

func (TextContent) sectionContent() {}

// Clone returns the text content unchanged; strings are immutable.
func (t TextContent) Clone() SectionContent { return t }

// Experience is one entry of an experience section. Description may embed
// newline-separated bullet lines, each optionally prefixed with "- ".
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is one entry of an education section.
type Education struct {
	ID             string `json:"id"`
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
}

// Project is one entry of a projects section.
type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
}

// Certification is one entry of a certifications section.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// ExperienceList is the payload of an experience section.
type ExperienceList []Experience

func (ExperienceList) sectionContent() {}

// Clone returns a deep copy of the list.
func (l ExperienceList) Clone() SectionContent {
	out := make(ExperienceList, len(l))
	copy(out, l)
	return out
}

// Len returns the number of items.
func (l ExperienceList) Len() int { return len(l) }

// AppendNew appends an empty experience entry with the given id.
func (l ExperienceList) AppendNew(id string) ItemList {
	return append(l.Clone().(ExperienceList), Experience{ID: id})
}

// UpdateField sets one field on the item at index by JSON name.
func (l ExperienceList) UpdateField(index int, field, value string) ItemList {
	if index < 0 || index >= len(l) {
		return l
	}
	out := l.Clone().(ExperienceList)
	item := &out[index]
	switch field {
	case "title":
		item.Title = value
	case "company":
		item.Company = value
	case "location":
		item.Location = value
	case "startDate":
		item.StartDate = value
	case "endDate":
		item.EndDate = value
	case "description":
		item.Description = value
	}
	return out
}

// RemoveAt removes the item at index.
func (l ExperienceList) RemoveAt(index int) ItemList {
	if index < 0 || index >= len(l) {
		return l
	}
	out := l.Clone().(ExperienceList)
	return append(out[:index], out[index+1:]...)
}

// EducationList is the payload of an education section.
type EducationList []Education

func (EducationList) sectionContent() {}

// Clone returns a deep copy of the list.
func (l EducationList) Clone() SectionContent {
	out := make(EducationList, len(l))
	copy(out, l)
	return out
}

// Len returns the number of items.
func (l EducationList) Len() int { return len(l) }

// AppendNew appends an empty education entry with the given id.
func (l EducationList) AppendNew(id string) ItemList {
	return append(l.Clone().(EducationList), Education{ID: id})
}

// UpdateField sets one field on the item at index by JSON name.
func (l EducationList) UpdateField(index int, field, value string) ItemList {
	if index < 0 || index >= len(l) {
		return l
	}
	out := l.Clone().(EducationList)
	item := &out[index]
	switch field {
	case "institution":
		item.Institution = value
	case "degree":
		item.Degree = value
	case "graduationDate":
		item.GraduationDate = value
	case "gpa":
		item.GPA = value
	}
	return out
}

// RemoveAt removes the item at index.
func (l EducationList) RemoveAt(index int) ItemList {
	if index < 0 || index >= len(l) {
		return l
	}
	out := l.Clone().(EducationList)
	return append(out[:index], out[index+1:]...)
}

// ProjectList is the payload of a projects section.
type ProjectList []Project

func (ProjectList) sectionContent() {}

// Clone returns a deep copy of the list.
func (l ProjectList) Clone() SectionContent {
	out := make(ProjectList, len(l))
	copy(out, l)
	return out
}

// Len returns the number of items.
func (l ProjectList) Len() int { return len(l) }

// AppendNew appends an empty project entry with the given id.
func (l ProjectList) AppendNew(id string) ItemList {
	return append(l.Clone().(ProjectList), Project{ID: id})
}

// UpdateField sets one field on the item at index by JSON name.
func (l ProjectList) UpdateField(index int, field, value string) ItemList {
	if index < 0 || index >= len(l) {
		return l
	}
	out := l.Clone().(ProjectList)
	item := &out[index]
	switch field {
	case "name":
		item.Name = value
	case "description":
		item.Description = value
	case "technologies":
		item.Technologies = value
	case "link":
		item.Link = value
	}
	return out
}

// RemoveAt removes the item at index.
func (l ProjectList) RemoveAt(index int) ItemList {
	if index < 0 || index >= len(l) {
		return l
	}
	out := l.Clone().(ProjectList)
	return append(out[:index], out[index+1:]...)
}

// CertificationList is the payload of a certifications section.
type CertificationList []Certification

func (CertificationList) sectionContent() {}

// Clone returns a deep copy of the list.
func (l CertificationList) Clone() SectionContent {
	out := make(CertificationList, len(l))
	copy(out, l)
	return out
}

// Len returns the number of items.
func (l CertificationList) Len() int { return len(l) }

// AppendNew appends an empty certification entry with the given id.
func (l CertificationList) AppendNew(id string) ItemList {
	return append(l.Clone().(CertificationList), Certification{ID: id})
}

// UpdateField sets one field on the item at index by JSON name.
func (l CertificationList) UpdateField(index int, field, value string) ItemList {
	if index < 0 || index >= len(l) {
		return l
	}
	out := l.Clone().(CertificationList)
	item := &out[index]
	switch field {
	case "name":
		item.Name = value
	case "issuer":
		item.Issuer = value
	case "date":
		item.Date = value
	}
	return out
}

// RemoveAt removes the item at index.
func (l CertificationList) RemoveAt(index int) ItemList {
	if index < 0 || index >= len(l) {
		return l
	}
	out := l.Clone().(CertificationList)
	return append(out[:index], out[index+1:]...)
}

// EmptyContent returns the default content value for a section type: empty
// text for scalar types, an empty typed list otherwise. Unrecognized types
// default to an empty experience-shaped list.
func EmptyContent(t SectionType) SectionContent {
	switch t {
	case SectionSummary, SectionSkills, SectionLanguages:
		return TextContent("")
	case SectionExperience:
		return ExperienceList{}
	case SectionEducation:
		return EducationList{}
	case SectionProjects:
		return ProjectList{}
	case SectionCertifications:
		return CertificationList{}
	default:
		return ExperienceList{}
	}
}

// DecodeContent decodes a raw JSON content payload through the section type,
// so the stored variant always matches the type. A missing or null payload
// yields the type's empty content.
func DecodeContent(t SectionType, raw json.RawMessage) (SectionContent, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return EmptyContent(t), nil
	}

	switch t {
	case SectionSummary, SectionSkills, SectionLanguages:
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("section type %q requires string content: %w", t, err)
		}
		return TextContent(text), nil
	case SectionExperience:
		var list ExperienceList
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("section type %q requires an experience list: %w", t, err)
		}
		return list, nil
	case SectionEducation:
		var list EducationList
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("section type %q requires an education list: %w", t, err)
		}
		return list, nil
	case SectionProjects:
		var list ProjectList
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("section type %q requires a project list: %w", t, err)
		}
		return list, nil
	case SectionCertifications:
		var list CertificationList
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("section type %q requires a certification list: %w", t, err)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unknown section type %q", t)
	}
}

// sectionJSON is the wire form of Section; Content is deferred so it can be
// decoded through Type.
type sectionJSON struct {
	ID      string          `json:"id"`
	Type    SectionType     `json:"type"`
	Title   string          `json:"title"`
	Visible bool            `json:"visible"`
	Content json.RawMessage `json:"content"`
}

// UnmarshalJSON decodes the section, routing the content payload through the
// declared type so shape always matches.
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw sectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	content, err := DecodeContent(raw.Type, raw.Content)
	if err != nil {
		return fmt.Errorf("section %q: %w", raw.ID, err)
	}

	s.ID = raw.ID
	s.Type = raw.Type
	s.Title = raw.Title
	s.Visible = raw.Visible
	s.Content = content
	return nil
}

// MarshalJSON encodes the section with its content inlined as the plain
// string or item array the wire format expects.
func (s Section) MarshalJSON() ([]byte, error) {
	content := s.Content
	if content == nil {
		content = EmptyContent(s.Type)
	}
	return json.Marshal(struct {
		ID      string         `json:"id"`
		Type    SectionType    `json:"type"`
		Title   string         `json:"title"`
		Visible bool           `json:"visible"`
		Content SectionContent `json:"content"`
	}{s.ID, s.Type, s.Title, s.Visible, content})
}
