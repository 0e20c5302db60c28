package frontend

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/Mikkode/bingo/internal/game"
)

// Home is the generator screen.
type Home struct {
	app.Compo
}

func (h *Home) OnMount(ctx app.Context) {
	klog.V(1).Infof("Home: OnMount called")
	State.Listeners["home"] = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
}

func (h *Home) OnDismount() {
	delete(State.Listeners, "home")
}

func (h *Home) OnAppUpdate(ctx app.Context) {
	if State.Batch != nil {
		klog.Infof("Home component: App update available, not reloading not to lose the cards...")
		return
	}
	klog.Infof("Home component: App update available, reloading...")
	ctx.Reload()
}

func (h *Home) onWinnersChange(ctx app.Context, e app.Event) {
	State.SetWinnerCount(ctx.JSSrc().Get("value").String())
}

func (h *Home) onVariantChange(ctx app.Context, e app.Event) {
	if err := State.SelectVariant(ctx.JSSrc().Get("value").String()); err != nil {
		klog.Errorf("Home: %v", err)
	}
}

func (h *Home) onGenerate(ctx app.Context, e app.Event) {
	e.PreventDefault()
	State.Generate()
}

func (h *Home) onToggleWinners(ctx app.Context, e app.Event) {
	State.ToggleWinners()
}

func (h *Home) onToggleHearts(ctx app.Context, e app.Event) {
	State.ToggleHearts()
}

func (h *Home) onPrint(ctx app.Context, e app.Event) {
	State.Print()
}

func (h *Home) onDismissError(ctx app.Context, e app.Event) {
	State.DismissError()
}

func (h *Home) Render() app.UI {
	v := State.Variant
	batch := State.Batch

	body := []app.UI{
		&TopBar{},
		app.Header().Class("hero no-print").Body(
			app.H1().Text("🕵️ Emoji Detective Bingo 🕵️"),
			app.P().Text("✨ Create magical cards for children! ✨"),
		),
		h.renderControls(v, batch),
		h.renderError(),
	}
	if !batch.Empty() {
		body = append(body,
			app.Article().Class("no-print").Body(winnerNumbers(batch)),
			// Only shown when printing.
			app.Div().Class("print-first-page").Body(
				legend(v),
				winnerNumbers(batch),
			),
			app.Section().Body(
				app.H2().Class("no-print").Text(fmt.Sprintf("🎨 Magic Cards Generated (%d) 🎨", len(batch.Cards))),
				cardGrid(batch, v, State.ShowWinners, State.ShowHearts),
			),
		)
	}
	return app.Main().Class("container").Body(body...)
}

func (h *Home) renderControls(v *game.Variant, batch *game.Batch) app.UI {
	options := make([]app.UI, 0, 2)
	for _, variant := range game.Variants() {
		options = append(options, app.Option().
			Value(variant.Name).
			Selected(variant.Name == v.Name).
			Text(variant.Title))
	}

	generateLabel := fmt.Sprintf("🎲 Generate %d cards", game.BatchSize)
	if State.IsGenerating {
		generateLabel = "⏳ Generating..."
	}

	winnersLabel := "🏆 Show Winners"
	if State.ShowWinners {
		winnersLabel = "🙈 Hide Winners"
	}
	heartsLabel := "❤️ Show Heart"
	if State.ShowHearts {
		heartsLabel = "❤️ Hide Heart"
	}

	var toggles app.UI = app.Text("")
	if !batch.Empty() {
		buttons := []app.UI{
			app.Button().Class("secondary").Text(winnersLabel).OnClick(h.onToggleWinners),
		}
		if v.HasPattern() {
			buttons = append(buttons, app.Button().Class("contrast").Text(heartsLabel).OnClick(h.onToggleHearts))
		}
		buttons = append(buttons, app.Button().Class("outline").Text("🖨️ Print cards").OnClick(h.onPrint))
		toggles = app.Div().Class("actions").Body(buttons...)
	}

	return app.Article().Class("controls no-print").Body(
		legend(v),
		app.Div().Class("grid").Body(
			app.Label().For("variant").Body(
				app.Text("🎯 Game"),
				app.Select().ID("variant").OnChange(h.onVariantChange).Body(options...),
			),
			app.Label().For("winners").Body(
				app.Text("🏆 Number of winners:"),
				app.Input().
					Type("number").
					ID("winners").
					Min(1).
					Max(game.BatchSize).
					Value(State.WinnerCount).
					OnChange(h.onWinnersChange),
			),
		),
		app.Div().Class("actions").Body(
			app.Button().
				Text(generateLabel).
				Disabled(State.IsGenerating).
				OnClick(h.onGenerate),
			toggles,
		),
	)
}

func (h *Home) renderError() app.UI {
	if State.Error == "" {
		return app.Text("")
	}
	return app.Article().Class("error-box no-print").Body(
		app.H3().Text("⚠️ Generation Error ⚠️"),
		app.P().Text(State.Error),
		app.Button().Class("outline").Text("✖️ Dismiss Error").OnClick(h.onDismissError),
	)
}
