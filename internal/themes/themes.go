// Package themes holds the fixed color palette and font tables that style the
// templates, and resolves theme keys against them.
package themes

import "strings"

// FontOption is one entry of the fixed font table. Value is the key stored in
// the document theme; CSS is the font-family stack emitted into rendered HTML.
type FontOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	CSS   string `json:"css"`
}

// ColorOption is one entry of the fixed palette table. Name (lowercased) is
// the key stored in the document theme.
type ColorOption struct {
	Name       string `json:"name"`
	HeaderBg   string `json:"headerBg"`
	HeaderText string `json:"headerText"`
	Title      string `json:"title"`
	BadgeBg    string `json:"badgeBg"`
	BadgeText  string `json:"badgeText"`
	Link       string `json:"link"`
}

var fontOptions = []FontOption{
	{Label: "Modern", Value: "lexend", CSS: "'Lexend', sans-serif"},
	{Label: "Classic", Value: "poppins", CSS: "'Poppins', sans-serif"},
	{Label: "Inter", Value: "inter", CSS: "'Inter', sans-serif"},
	{Label: "Techy", Value: "space-grotesk", CSS: "'Space Grotesk', sans-serif"},
}

var colorOptions = []ColorOption{
	{Name: "Default", HeaderBg: "#2c3e50", HeaderText: "#ffffff", Title: "#2c3e50", BadgeBg: "#ecf0f1", BadgeText: "#2c3e50", Link: "#3498db"},
	{Name: "Forest", HeaderBg: "#2d5a3d", HeaderText: "#ffffff", Title: "#2d5a3d", BadgeBg: "#e8f5e9", BadgeText: "#2d5a3d", Link: "#4caf50"},
	{Name: "Ocean", HeaderBg: "#0d47a1", HeaderText: "#ffffff", Title: "#0d47a1", BadgeBg: "#e3f2fd", BadgeText: "#0d47a1", Link: "#1976d2"},
	{Name: "Crimson", HeaderBg: "#9a0007", HeaderText: "#ffffff", Title: "#9a0007", BadgeBg: "#ffebee", BadgeText: "#9a0007", Link: "#c62828"},
	{Name: "Orchid", HeaderBg: "#4a148c", HeaderText: "#ffffff", Title: "#4a148c", BadgeBg: "#f3e5f5", BadgeText: "#4a148c", Link: "#6a1b9a"},
	{Name: "Amber", HeaderBg: "#ff6f00", HeaderText: "#ffffff", Title: "#ff6f00", BadgeBg: "#fff8e1", BadgeText: "#ff6f00", Link: "#ff8f00"},
	{Name: "Slate", HeaderBg: "#455a64", HeaderText: "#ffffff", Title: "#455a64", BadgeBg: "#eceff1", BadgeText: "#455a64", Link: "#546e7a"},
	{Name: "Teal", HeaderBg: "#004d40", HeaderText: "#ffffff", Title: "#004d40", BadgeBg: "#e0f2f1", BadgeText: "#004d40", Link: "#00695c"},
}

// Fonts returns the full font table in display order.
func Fonts() []FontOption {
	out := make([]FontOption, len(fontOptions))
	copy(out, fontOptions)
	return out
}

// Colors returns the full palette table in display order.
func Colors() []ColorOption {
	out := make([]ColorOption, len(colorOptions))
	copy(out, colorOptions)
	return out
}

// ResolveFont returns the font for a theme key. An unresolvable key falls
// back to the first table entry, never an error.
func ResolveFont(key string) FontOption {
	for _, f := range fontOptions {
		if f.Value == key {
			return f
		}
	}
	return fontOptions[0]
}

// ResolveColor returns the palette entry whose lowercased name matches the
// theme key, falling back to the first entry.
func ResolveColor(key string) ColorOption {
	for _, c := range colorOptions {
		if strings.EqualFold(c.Name, key) {
			return c
		}
	}
	return colorOptions[0]
}
