package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/resume-architect/internal/registry"
	"github.com/jonathan/resume-architect/internal/themes"
	"github.com/jonathan/resume-architect/internal/types"
)

// SectionKind selects how a template formats a section's content.
type SectionKind string

// The three rendering strategies a section can use.
const (
	KindParagraph SectionKind = "paragraph" // summary
	KindChips     SectionKind = "chips"     // skills, languages
	KindItems     SectionKind = "items"     // experience, education, projects, certifications
)

// PageView is the data passed to a layout template. It is built fresh for
// every render; templates never see the document itself.
type PageView struct {
	Personal types.PersonalInfo
	Font     template.CSS
	Color    ThemeColors
	Layout   types.Layout

	// All holds every visible section in document order. Main and Sidebar
	// hold the same sections partitioned per the layout's column groups.
	All     []SectionView
	Main    []SectionView
	Sidebar []SectionView
}

// ThemeColors is the resolved palette entry with values typed for safe use
// inside style attributes.
type ThemeColors struct {
	HeaderBg   template.CSS
	HeaderText template.CSS
	Title      template.CSS
	BadgeBg    template.CSS
	BadgeText  template.CSS
	Link       template.CSS
}

// SectionView is one visible section prepared for a template.
type SectionView struct {
	ID        string
	Title     string
	Kind      SectionKind
	Paragraph string
	Chips     []string
	Items     []ItemView
}

// ItemView is one entry of a list section flattened into the title line /
// meta line / body shape all templates share.
type ItemView struct {
	Heading string
	Sub     string
	Meta    string
	Body    string
	Link    string
	Bullets []string
}

// SplitBullets splits an experience description into bullet lines: one per
// newline, blank lines dropped, a leading "- " marker stripped.
func SplitBullets(description string) []string {
	var bullets []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, strings.TrimPrefix(line, "- "))
	}
	return bullets
}

// SplitChips splits comma-separated text (skills, languages) into trimmed,
// non-empty chips.
func SplitChips(text string) []string {
	var chips []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		chips = append(chips, part)
	}
	return chips
}

// buildPageView resolves the theme, filters hidden sections, and partitions
// the rest per the layout's column groups.
func buildPageView(doc types.ResumeData, layout types.Layout) PageView {
	color := themes.ResolveColor(doc.Theme.Color)
	font := themes.ResolveFont(doc.Theme.Font)

	view := PageView{
		Personal: doc.PersonalInfo,
		Font:     template.CSS(font.CSS),
		Color: ThemeColors{
			HeaderBg:   template.CSS(color.HeaderBg),
			HeaderText: template.CSS(color.HeaderText),
			Title:      template.CSS(color.Title),
			BadgeBg:    template.CSS(color.BadgeBg),
			BadgeText:  template.CSS(color.BadgeText),
			Link:       template.CSS(color.Link),
		},
		Layout: layout,
	}

	for _, section := range doc.Sections {
		if !section.Visible {
			continue
		}
		sv := buildSectionView(section)
		view.All = append(view.All, sv)
		if registry.Column(layout, section.Type) == registry.ColumnSidebar {
			view.Sidebar = append(view.Sidebar, sv)
		} else {
			view.Main = append(view.Main, sv)
		}
	}

	return view
}

// buildSectionView dispatches on the section type to the per-type formatter.
func buildSectionView(section types.Section) SectionView {
	sv := SectionView{
		ID:    section.ID,
		Title: section.Title,
	}

	switch content := section.Content.(type) {
	case types.TextContent:
		if section.Type == types.SectionSummary {
			sv.Kind = KindParagraph
			sv.Paragraph = string(content)
		} else {
			sv.Kind = KindChips
			sv.Chips = SplitChips(string(content))
		}
	case types.ExperienceList:
		sv.Kind = KindItems
		for _, exp := range content {
			sv.Items = append(sv.Items, ItemView{
				Heading: exp.Title,
				Sub:     joinNonEmpty(" | ", exp.Company, exp.Location),
				Meta:    joinNonEmpty(" - ", exp.StartDate, exp.EndDate),
				Bullets: SplitBullets(exp.Description),
			})
		}
	case types.EducationList:
		sv.Kind = KindItems
		for _, edu := range content {
			meta := edu.GraduationDate
			if edu.GPA != "" {
				meta = joinNonEmpty(" | ", meta, "GPA: "+edu.GPA)
			}
			sv.Items = append(sv.Items, ItemView{
				Heading: edu.Degree,
				Sub:     edu.Institution,
				Meta:    meta,
			})
		}
	case types.ProjectList:
		sv.Kind = KindItems
		for _, proj := range content {
			sv.Items = append(sv.Items, ItemView{
				Heading: proj.Name,
				Sub:     proj.Technologies,
				Body:    proj.Description,
				Link:    proj.Link,
			})
		}
	case types.CertificationList:
		sv.Kind = KindItems
		for _, cert := range content {
			sv.Items = append(sv.Items, ItemView{
				Heading: cert.Name,
				Sub:     cert.Issuer,
				Meta:    cert.Date,
			})
		}
	}

	return sv
}

// joinNonEmpty joins the non-empty parts with the separator.
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
