package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFont(t *testing.T) {
	assert.Equal(t, "'Inter', sans-serif", ResolveFont("inter").CSS)
	assert.Equal(t, "Techy", ResolveFont("space-grotesk").Label)

	// Unresolvable keys fall back to the first entry.
	assert.Equal(t, "lexend", ResolveFont("not-a-font").Value)
	assert.Equal(t, "lexend", ResolveFont("").Value)
}

func TestResolveColor(t *testing.T) {
	assert.Equal(t, "#0d47a1", ResolveColor("ocean").HeaderBg)
	assert.Equal(t, "#004d40", ResolveColor("teal").Title)

	// Names match case-insensitively; the stored key is lowercase.
	assert.Equal(t, "Forest", ResolveColor("Forest").Name)

	// Unresolvable keys fall back to the first entry. The seed document
	// stores 'blue', which is deliberately not a palette name.
	assert.Equal(t, "Default", ResolveColor("blue").Name)
	assert.Equal(t, "Default", ResolveColor("not-a-real-color").Name)
}

func TestTables(t *testing.T) {
	require.Len(t, Fonts(), 4)
	require.Len(t, Colors(), 8)

	// Returned slices are copies; mutating them must not corrupt the tables.
	fonts := Fonts()
	fonts[0].Value = "corrupted"
	assert.Equal(t, "lexend", Fonts()[0].Value)
}
