package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/Mikkode/bingo/internal/game"
)

// RenderOptions controls how a batch is printed.
type RenderOptions struct {
	Reveal  bool // Mark the winner cards
	Hearts  bool // Replace highlighted pattern cells by a heart
	Columns int  // Cards per line; 0 fits the terminal width
}

const (
	// Terminal columns used by a card: 5 glyphs of width 2 and 4 separators.
	cardWidth = game.GridSize*2 + game.GridSize - 1
	cardGap   = 4
)

// terminalColumns returns how many cards fit side by side on the terminal.
func terminalColumns() int {
	width := 80
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}
	return max(1, (width+cardGap)/(cardWidth+cardGap))
}

// RenderBatch prints the cards of the batch in rows of opts.Columns cards, followed by
// the winning card numbers.
func RenderBatch(w io.Writer, b *game.Batch, v *game.Variant, opts RenderOptions) {
	columns := opts.Columns
	if columns <= 0 {
		columns = terminalColumns()
	}

	title := color.New(color.FgMagenta, color.Bold)
	fmt.Fprintf(w, "%s %s\n", title.Sprint("🕵️ Emoji Detective Bingo:"), v.Title)
	fmt.Fprintf(w, "Batch %s, %d cards, %d winners\n\n", b.ID, len(b.Cards), b.Winners)

	for start := 0; start < len(b.Cards); start += columns {
		end := min(start+columns, len(b.Cards))
		renderRow(w, b.Cards[start:end], v, opts)
		fmt.Fprintln(w)
	}
	renderWinners(w, b)
}

func renderRow(w io.Writer, cards []game.Card, v *game.Variant, opts RenderOptions) {
	gap := strings.Repeat(" ", cardGap)
	winner := color.New(color.FgYellow, color.Bold)
	number := color.New(color.FgCyan)

	// Titles are padded on their plain text, before coloring.
	headers := make([]string, len(cards))
	for i, card := range cards {
		label := fmt.Sprintf("#%02d", card.ID)
		if opts.Reveal && card.IsWinner {
			label += " 🏆"
			headers[i] = winner.Sprint(label) + pad(label)
		} else {
			headers[i] = number.Sprint(label) + pad(label)
		}
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(headers, gap), " "))

	for r := range game.GridSize {
		line := make([]string, len(cards))
		for i, card := range cards {
			line[i] = cardLine(card, r, v, opts)
		}
		fmt.Fprintln(w, strings.Join(line, gap))
	}
}

func cardLine(card game.Card, r int, v *game.Variant, opts RenderOptions) string {
	glyphs := make([]string, game.GridSize)
	for c, name := range card.Grid[r] {
		switch sym, ok := v.Symbol(name); {
		case opts.Hearts && v.HighlightCell(r, c, name):
			glyphs[c] = "❤️"
		case ok:
			glyphs[c] = sym.Glyph
		default:
			glyphs[c] = "  "
		}
	}
	return strings.Join(glyphs, " ")
}

// pad returns the spaces completing label to the card width. Emojis count as 2 columns.
func pad(label string) string {
	width := 0
	for _, r := range label {
		if r > 0x2000 {
			width += 2
		} else {
			width++
		}
	}
	return strings.Repeat(" ", max(0, cardWidth-width))
}

func renderWinners(w io.Writer, b *game.Batch) {
	ids := b.WinnerIDs()
	numbers := make([]string, len(ids))
	for i, id := range ids {
		numbers[i] = fmt.Sprintf("#%d", id)
	}
	heading := color.New(color.FgYellow, color.Bold).Sprint("🏆 Winning cards:")
	if len(ids) == 0 {
		fmt.Fprintf(w, "%s none\n", heading)
		return
	}
	fmt.Fprintf(w, "%s %s\n", heading, strings.Join(numbers, " "))
	fmt.Fprintf(w, "%d winning card(s) out of %d total cards\n", len(ids), len(b.Cards))
}

// renderPattern draws the pattern of a variant, one line per row.
func renderPattern(w io.Writer, v *game.Variant) {
	for r := range game.GridSize {
		cells := make([]string, game.GridSize)
		for c := range game.GridSize {
			cells[c] = "·"
			if v.InPattern(r, c) {
				cells[c] = color.RedString("♥")
			}
		}
		fmt.Fprintf(w, "    %s\n", strings.Join(cells, " "))
	}
}
