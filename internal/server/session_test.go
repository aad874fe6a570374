package server

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-architect/internal/editor"
	"github.com/jonathan/resume-architect/internal/store"
	"github.com/jonathan/resume-architect/internal/types"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	session, err := NewSession(st)
	require.NoError(t, err)
	return session
}

func TestSessionSeedsWhenEmpty(t *testing.T) {
	session := newTestSession(t)
	doc := session.Document()
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.Name)
}

func TestSessionDocumentIsACopy(t *testing.T) {
	session := newTestSession(t)

	doc := session.Document()
	doc.PersonalInfo.Name = "Mutated"
	doc.Sections[0].Title = "Mutated"

	fresh := session.Document()
	assert.Equal(t, "Jane Doe", fresh.PersonalInfo.Name)
	assert.Equal(t, "Professional Summary", fresh.Sections[0].Title)
}

func TestSessionUpdatePersists(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	session, err := NewSession(st)
	require.NoError(t, err)

	session.Update(func(d types.ResumeData) types.ResumeData {
		return editor.UpdatePersonalField(d, "name", "Persisted")
	})

	reloaded, err := store.LoadDocument(st)
	require.NoError(t, err)
	assert.Equal(t, "Persisted", reloaded.PersonalInfo.Name)
}

func TestSessionConcurrentUpdates(t *testing.T) {
	session := newTestSession(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			session.Update(func(d types.ResumeData) types.ResumeData {
				return editor.AddSection(d, types.SectionCertifications)
			})
		}()
	}
	wg.Wait()

	assert.Len(t, session.Document().Sections, 25)
}
