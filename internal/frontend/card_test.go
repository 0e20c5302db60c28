package frontend

import (
	"testing"

	"github.com/Mikkode/bingo/internal/game"
)

func TestCellBackground(t *testing.T) {
	happy := game.Symbol{Name: "Happy", Glyph: "😃", Color: "#fef08a"}

	if bg := cellBackground(happy, false); bg != "" {
		t.Errorf("Hidden winners must not be tinted, got %q", bg)
	}
	bg := cellBackground(happy, true)
	if bg != game.WinnerTint(happy.Color) {
		t.Errorf("Expected the winner tint of %s, got %q", happy.Color, bg)
	}
	if bg == happy.Color {
		t.Errorf("Winner tint left %s unchanged", happy.Color)
	}
	if bg := cellBackground(game.Symbol{}, true); bg != "" {
		t.Errorf("A cell without a symbol must not be tinted, got %q", bg)
	}
}
