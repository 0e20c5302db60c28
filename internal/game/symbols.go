package game

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Symbol is one emotion of a catalog.
type Symbol struct {
	Name   string `json:"name" toml:"name"`
	Glyph  string `json:"glyph" toml:"glyph"`
	Color  string `json:"color" toml:"color"`                       // Background, as "#rrggbb"
	Border string `json:"border,omitempty" toml:"border,omitempty"` // Empty means derived from Color
}

// borderDarkening is how far the derived border is blended towards black.
const borderDarkening = 0.3

// BorderColor returns the explicit border color, or one derived by darkening the background.
func (s Symbol) BorderColor() string {
	if s.Border != "" {
		return s.Border
	}
	c, err := colorful.Hex(s.Color)
	if err != nil {
		return "#000000"
	}
	return c.BlendLab(colorful.Color{}, borderDarkening).Clamped().Hex()
}

// WinnerTint blends a symbol background with gold, used to highlight revealed winner cards.
func WinnerTint(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	gold, _ := colorful.Hex("#facc15")
	return c.BlendLab(gold, 0.5).Clamped().Hex()
}

// Emotions is the catalog shared by the built-in variants.
//
// The printed card set named two different faces "Surprised"; the hand-over-mouth
// face is "Giggling" here since names must be unique.
var Emotions = []Symbol{
	// Positive / happy.
	{Name: "Happy", Glyph: "😃", Color: "#fef08a"},
	{Name: "Very Happy", Glyph: "😄", Color: "#fde047"},
	{Name: "Excited", Glyph: "😁", Color: "#fed7aa"},
	{Name: "Amazed", Glyph: "🤩", Color: "#fde68a"},
	{Name: "Loving", Glyph: "🥰", Color: "#fbcfe8"},
	{Name: "Proud", Glyph: "😎", Color: "#c7d2fe"},
	{Name: "Innocent", Glyph: "😇", Color: "#bfdbfe"},
	{Name: "Friendly", Glyph: "🤗", Color: "#bbf7d0"},
	{Name: "Celebrating", Glyph: "🥳", Color: "#e9d5ff"},
	{Name: "Laughing", Glyph: "😆", Color: "#facc15"},
	{Name: "Admiring", Glyph: "😍", Color: "#f9a8d4"},
	{Name: "Enjoying", Glyph: "😋", Color: "#fdba74"},
	{Name: "Hungry", Glyph: "🤤", Color: "#fecaca"},

	// Neutral / other feelings.
	{Name: "Sleepy", Glyph: "😴", Color: "#e5e7eb"},
	{Name: "Feeling Hot", Glyph: "🥵", Color: "#fca5a5"},
	{Name: "Feeling Cold", Glyph: "🥶", Color: "#a5f3fc"},
	{Name: "Nervous", Glyph: "😬", Color: "#fef08a"},
	{Name: "Shocked", Glyph: "😱", Color: "#d8b4fe"},
	{Name: "Curious", Glyph: "🧐", Color: "#99f6e4"},
	{Name: "Sad", Glyph: "😢", Color: "#93c5fd"},
	{Name: "Crying", Glyph: "😭", Color: "#60a5fa"},
	{Name: "Angry", Glyph: "😡", Color: "#f87171"},
	{Name: "Surprised", Glyph: "😲", Color: "#fb923c"},
	{Name: "Scared", Glyph: "😨", Color: "#ddd6fe"},
	{Name: "Worried", Glyph: "🥺", Color: "#fecdd3"},
	{Name: "Sick", Glyph: "🤢", Color: "#86efac"},
	{Name: "Embarrassed", Glyph: "🫣", Color: "#f472b6"},

	// Extras.
	{Name: "Thinking", Glyph: "🤔", Color: "#bae6fd"},
	{Name: "Relaxed", Glyph: "😌", Color: "#a7f3d0"},
	{Name: "Giggling", Glyph: "🤭", Color: "#d9f99d"},
}
