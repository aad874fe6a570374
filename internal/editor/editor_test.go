package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-architect/internal/types"
)

// threeSections builds a minimal document with sections A, B, C.
func threeSections() types.ResumeData {
	return types.ResumeData{
		Sections: []types.Section{
			{ID: "a", Type: types.SectionSummary, Title: "A", Visible: true, Content: types.TextContent("")},
			{ID: "b", Type: types.SectionSkills, Title: "B", Visible: true, Content: types.TextContent("")},
			{ID: "c", Type: types.SectionExperience, Title: "C", Visible: true, Content: types.ExperienceList{}},
		},
		Theme:  types.Theme{Color: "default", Font: "lexend"},
		Layout: types.LayoutModern,
	}
}

func sectionIDs(doc types.ResumeData) []string {
	ids := make([]string, len(doc.Sections))
	for i, s := range doc.Sections {
		ids[i] = s.ID
	}
	return ids
}

func TestUpdatePersonalField(t *testing.T) {
	doc := types.DefaultResume()
	out := UpdatePersonalField(doc, "email", "new@example.com")

	assert.Equal(t, "new@example.com", out.PersonalInfo.Email)
	assert.Equal(t, "jane.doe@example.com", doc.PersonalInfo.Email)
}

func TestUpdateSectionTitle(t *testing.T) {
	doc := threeSections()

	out := UpdateSectionTitle(doc, "b", "Core Skills")
	assert.Equal(t, "Core Skills", out.Sections[1].Title)

	// Missing id is a no-op.
	out = UpdateSectionTitle(doc, "missing", "X")
	assert.Equal(t, doc, out)
}

func TestUpdateSectionContent(t *testing.T) {
	doc := threeSections()

	out := UpdateSectionContent(doc, "a", types.TextContent("rewritten"))
	assert.Equal(t, types.TextContent("rewritten"), out.Sections[0].Content)
	assert.Equal(t, types.TextContent(""), doc.Sections[0].Content)
}

func TestReorderSections(t *testing.T) {
	tests := []struct {
		name    string
		movedID string
		target  string
		want    []string
	}{
		{"move last before first", "c", "a", []string{"c", "a", "b"}},
		{"move first to last", "a", "c", []string{"b", "c", "a"}},
		{"move middle to front", "b", "a", []string{"b", "a", "c"}},
		{"same id is a no-op", "b", "b", []string{"a", "b", "c"}},
		{"missing moved id is a no-op", "x", "b", []string{"a", "b", "c"}},
		{"missing target id is a no-op", "b", "x", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ReorderSections(threeSections(), tt.movedID, tt.target)
			assert.Equal(t, tt.want, sectionIDs(out))
		})
	}
}

func TestAddSection(t *testing.T) {
	doc := types.DefaultResume()
	require.Len(t, doc.Sections, 5)

	out := AddSection(doc, types.SectionCertifications)
	require.Len(t, out.Sections, 6)

	added := out.Sections[5]
	assert.Equal(t, types.SectionCertifications, added.Type)
	assert.Equal(t, "Certifications", added.Title)
	assert.True(t, added.Visible)
	assert.Equal(t, types.CertificationList{}, added.Content)
	assert.NotEmpty(t, added.ID)
	assert.Len(t, doc.Sections, 5)
}

func TestAddSection_UnrecognizedTypeDefaultsToEmptyList(t *testing.T) {
	out := AddSection(threeSections(), types.SectionType("volunteering"))
	added := out.Sections[len(out.Sections)-1]
	assert.Equal(t, types.ExperienceList{}, added.Content)
	assert.True(t, added.Visible)
}

func TestAddThenRemoveSection_RestoresOriginalOrder(t *testing.T) {
	doc := types.DefaultResume()
	grown := AddSection(doc, types.SectionCertifications)
	addedID := grown.Sections[5].ID

	shrunk := RemoveSection(grown, addedID)
	assert.Equal(t, sectionIDs(doc), sectionIDs(shrunk))
}

func TestRemoveSection_MissingIDNoOp(t *testing.T) {
	doc := threeSections()
	assert.Equal(t, doc, RemoveSection(doc, "missing"))
}

func TestAddListItem(t *testing.T) {
	doc := types.DefaultResume()
	// The seed experience section has two items.
	out := AddListItem(doc, "experience")

	list := out.Sections[1].Content.(types.ExperienceList)
	require.Len(t, list, 3)
	assert.NotEmpty(t, list[2].ID)
	assert.NotEqual(t, list[0].ID, list[2].ID)
	assert.NotEqual(t, list[1].ID, list[2].ID)
	assert.Empty(t, list[2].Title)

	// Scalar sections and missing ids are no-ops.
	assert.Equal(t, doc.Sections[0], AddListItem(doc, "summary").Sections[0])
	assert.Equal(t, doc, AddListItem(doc, "missing"))
}

func TestUpdateListItem(t *testing.T) {
	doc := types.DefaultResume()

	out := UpdateListItem(doc, "experience", 1, "company", "New Corp")
	assert.Equal(t, "New Corp", out.Sections[1].Content.(types.ExperienceList)[1].Company)
	assert.Equal(t, "Web Innovators", doc.Sections[1].Content.(types.ExperienceList)[1].Company)

	// Out-of-range index is a no-op.
	assert.Equal(t, doc, UpdateListItem(doc, "experience", 9, "company", "X"))
}

func TestRemoveListItem(t *testing.T) {
	doc := types.DefaultResume()

	out := RemoveListItem(doc, "experience", 0)
	list := out.Sections[1].Content.(types.ExperienceList)
	require.Len(t, list, 1)
	// The remaining item is unchanged and now at index 0.
	assert.Equal(t, doc.Sections[1].Content.(types.ExperienceList)[1], list[0])

	assert.Equal(t, doc, RemoveListItem(doc, "experience", 5))
	assert.Equal(t, doc, RemoveListItem(doc, "experience", -1))
}

func TestSetTheme_PartialMerge(t *testing.T) {
	doc := threeSections()

	color := "teal"
	out := SetTheme(doc, ThemePatch{Color: &color})
	assert.Equal(t, "teal", out.Theme.Color)
	assert.Equal(t, "lexend", out.Theme.Font)

	font := "inter"
	out = SetTheme(out, ThemePatch{Font: &font})
	assert.Equal(t, "teal", out.Theme.Color)
	assert.Equal(t, "inter", out.Theme.Font)

	// An empty patch changes nothing.
	assert.Equal(t, doc.Theme, SetTheme(doc, ThemePatch{}).Theme)
}

func TestSetLayout(t *testing.T) {
	out := SetLayout(threeSections(), types.LayoutArtistic)
	assert.Equal(t, types.LayoutArtistic, out.Layout)
}

func TestSetSectionVisible(t *testing.T) {
	doc := threeSections()
	out := SetSectionVisible(doc, "b", false)
	assert.False(t, out.Sections[1].Visible)
	assert.True(t, doc.Sections[1].Visible)
}

func TestReplaceDocument(t *testing.T) {
	doc := threeSections()
	next := types.DefaultResume()

	out := ReplaceDocument(doc, next)
	assert.Equal(t, next, out)

	// The replacement is a copy, not an alias.
	out.Sections[0].Title = "Changed"
	assert.Equal(t, "Professional Summary", next.Sections[0].Title)
}
