package frontend

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/Mikkode/bingo/internal/game"
)

// BingoCard renders one printable card.
type BingoCard struct {
	app.Compo
	Card        game.Card
	Variant     *game.Variant
	ShowWinners bool
	ShowHearts  bool
}

func (c *BingoCard) Render() app.UI {
	winnerVisible := c.ShowWinners && c.Card.IsWinner

	cardClass := "bingo-card"
	if winnerVisible {
		cardClass += " winner"
	}

	var badge app.UI = app.Text("")
	if winnerVisible {
		badge = app.Div().Class("winner-badge").Text("🎉 WINNER! 🎉")
	}

	return app.Article().Class(cardClass).Body(
		app.Header().Body(
			app.Div().Class("card-title").Text("🕵️ Emoji Detective Bingo 🕵️"),
			badge,
		),
		app.Div().Class("card-grid").Body(c.cells(winnerVisible)...),
		app.Div().Class("card-number").Text(c.Card.ID),
	)
}

func (c *BingoCard) cells(winnerVisible bool) []app.UI {
	cells := make([]app.UI, 0, game.CellCount)
	for r, row := range c.Card.Grid {
		for col, name := range row {
			sym, _ := c.Variant.Symbol(name)
			glyph := sym.Glyph
			if c.ShowHearts && c.Variant.HighlightCell(r, col, name) {
				glyph = "❤️"
			}
			cell := app.Div().
				Class("card-cell").
				Title(name).
				Aria("label", fmt.Sprintf("row %d column %d: %s", r+1, col+1, name))
			if bg := cellBackground(sym, winnerVisible); bg != "" {
				cell = cell.Style("background-color", bg)
			}
			cells = append(cells, cell.Text(glyph))
		}
	}
	return cells
}

// cellBackground is the tint of a cell of a revealed winner card, empty otherwise.
func cellBackground(sym game.Symbol, winnerVisible bool) string {
	if !winnerVisible || sym.Color == "" {
		return ""
	}
	return game.WinnerTint(sym.Color)
}

// symbolChip renders an emotion of the legend in its own colors.
func symbolChip(sym game.Symbol) app.UI {
	return app.Div().
		Class("symbol-chip").
		Style("background-color", sym.Color).
		Style("border-color", sym.BorderColor()).
		Body(
			app.Div().Class("symbol-glyph").Text(sym.Glyph),
			app.Div().Class("symbol-name").Text(sym.Name),
		)
}

// legend lists the winning emotions of the variant.
func legend(v *game.Variant) app.UI {
	chips := make([]app.UI, 0, len(v.Winning))
	for _, sym := range v.WinningSymbols() {
		chips = append(chips, symbolChip(sym))
	}

	heading := fmt.Sprintf("🌈 %d Full Card Emotions 🌈", len(v.Winning))
	hint := "A card made only of these emotions is a winner"
	if v.HasPattern() {
		heading = fmt.Sprintf("❤️ %d Heart Pattern Emotions ❤️", len(v.Winning))
		hint = "These emotions form a ❤️ heart pattern when marked on winning cards"
	}

	return app.Div().Class("legend").Body(
		app.H3().Text(heading),
		app.Div().Class("legend-grid").Body(chips...),
		app.P().Class("legend-hint").Text(hint),
	)
}

// winnerNumbers lists the ids of the winner cards of the batch.
func winnerNumbers(b *game.Batch) app.UI {
	ids := b.WinnerIDs()
	numbers := make([]app.UI, 0, len(ids))
	for _, id := range ids {
		numbers = append(numbers, app.Span().Class("winner-number").Text(fmt.Sprintf("#%d", id)))
	}
	return app.Div().Class("winner-numbers").Body(
		app.H3().Text("🏆 Winning Cards Numbers 🏆"),
		app.Div().Class("winner-numbers-list").Body(numbers...),
		app.P().Text(fmt.Sprintf("%d winning card(s) out of %d total cards", len(ids), len(b.Cards))),
	)
}

// cardGrid renders every card of the batch.
func cardGrid(b *game.Batch, v *game.Variant, showWinners, showHearts bool) app.UI {
	cards := make([]app.UI, 0, len(b.Cards))
	for _, card := range b.Cards {
		cards = append(cards, &BingoCard{
			Card:        card,
			Variant:     v,
			ShowWinners: showWinners,
			ShowHearts:  showHearts,
		})
	}
	return app.Div().Class("cards").Body(cards...)
}
