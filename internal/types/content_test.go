package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection_JSONRoundTrip_Scalar(t *testing.T) {
	section := Section{
		ID:      "summary",
		Type:    SectionSummary,
		Title:   "Professional Summary",
		Visible: true,
		Content: TextContent("A short summary."),
	}

	data, err := json.Marshal(section)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"content":"A short summary."`)

	var decoded Section
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, section, decoded)
}

func TestSection_JSONRoundTrip_List(t *testing.T) {
	section := Section{
		ID:      "experience",
		Type:    SectionExperience,
		Title:   "Work Experience",
		Visible: true,
		Content: ExperienceList{
			{
				ID:          "exp1",
				Title:       "Engineer",
				Company:     "Acme",
				Location:    "Remote",
				StartDate:   "Jan 2021",
				EndDate:     "Present",
				Description: "- Built things",
			},
		},
	}

	data, err := json.Marshal(section)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"startDate":"Jan 2021"`)

	var decoded Section
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, section, decoded)
}

func TestSection_UnmarshalRejectsShapeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "list content on scalar type",
			input: `{"id":"s1","type":"summary","title":"Summary","visible":true,"content":[{"id":"x"}]}`,
		},
		{
			name:  "string content on list type",
			input: `{"id":"s2","type":"experience","title":"Experience","visible":true,"content":"not a list"}`,
		},
		{
			name:  "unknown section type",
			input: `{"id":"s3","type":"hobbies","title":"Hobbies","visible":true,"content":"chess"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Section
			assert.Error(t, json.Unmarshal([]byte(tt.input), &s))
		})
	}
}

func TestSection_UnmarshalNullContentDefaults(t *testing.T) {
	var scalar Section
	require.NoError(t, json.Unmarshal([]byte(`{"id":"s1","type":"skills","title":"Skills","visible":true,"content":null}`), &scalar))
	assert.Equal(t, TextContent(""), scalar.Content)

	var list Section
	require.NoError(t, json.Unmarshal([]byte(`{"id":"s2","type":"education","title":"Education","visible":true}`), &list))
	assert.Equal(t, EducationList{}, list.Content)
}

func TestResumeData_JSONRoundTrip(t *testing.T) {
	doc := DefaultResume()

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded ResumeData
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, doc, decoded)

	// Section order is part of the wire contract.
	require.Len(t, decoded.Sections, 5)
	assert.Equal(t, "summary", decoded.Sections[0].ID)
	assert.Equal(t, "projects", decoded.Sections[4].ID)
}

func TestResumeData_CloneIsDeep(t *testing.T) {
	doc := DefaultResume()
	clone := doc.Clone()

	clone.PersonalInfo.Name = "Someone Else"
	clone.Sections[0].Title = "Changed"
	exp := clone.Sections[1].Content.(ExperienceList)
	exp[0].Company = "Changed Corp"

	assert.Equal(t, "Jane Doe", doc.PersonalInfo.Name)
	assert.Equal(t, "Professional Summary", doc.Sections[0].Title)
	assert.Equal(t, "Tech Solutions Inc.", doc.Sections[1].Content.(ExperienceList)[0].Company)
}

func TestItemList_UpdateField(t *testing.T) {
	list := ExperienceList{{ID: "exp1", Title: "Old"}}

	updated := list.UpdateField(0, "title", "New").(ExperienceList)
	assert.Equal(t, "New", updated[0].Title)
	assert.Equal(t, "Old", list[0].Title)

	// Out-of-range and unknown fields are no-ops.
	assert.Equal(t, ItemList(list), list.UpdateField(5, "title", "X"))
	same := list.UpdateField(0, "nonexistent", "X").(ExperienceList)
	assert.Equal(t, list[0], same[0])
}

func TestItemList_RemoveAt(t *testing.T) {
	list := EducationList{{ID: "edu1"}, {ID: "edu2"}}

	removed := list.RemoveAt(0).(EducationList)
	require.Len(t, removed, 1)
	assert.Equal(t, "edu2", removed[0].ID)
	assert.Len(t, list, 2)

	assert.Equal(t, ItemList(list), list.RemoveAt(-1))
	assert.Equal(t, ItemList(list), list.RemoveAt(2))
}

func TestItemList_AppendNew(t *testing.T) {
	list := CertificationList{}
	grown := list.AppendNew("cert_1").(CertificationList)
	require.Len(t, grown, 1)
	assert.Equal(t, "cert_1", grown[0].ID)
	assert.Empty(t, grown[0].Name)
	assert.Len(t, list, 0)
}

func TestEmptyContent(t *testing.T) {
	assert.Equal(t, TextContent(""), EmptyContent(SectionSummary))
	assert.Equal(t, TextContent(""), EmptyContent(SectionLanguages))
	assert.Equal(t, ExperienceList{}, EmptyContent(SectionExperience))
	assert.Equal(t, ProjectList{}, EmptyContent(SectionProjects))
	assert.Equal(t, ExperienceList{}, EmptyContent(SectionType("unknown")))
}

func TestPersonalInfo_SetField(t *testing.T) {
	var p PersonalInfo
	p.SetField("name", "Jane")
	p.SetField("linkedin", "linkedin.com/in/jane")
	p.SetField("unknown", "ignored")

	assert.Equal(t, "Jane", p.Name)
	assert.Equal(t, "linkedin.com/in/jane", p.LinkedIn)
}
