package frontend

import (
	"fmt"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/Mikkode/bingo/internal/game"
)

// Board is the read-only projector view of a shared generator screen.
type Board struct {
	app.Compo
	BoardID string
	Error   string
}

func (b *Board) OnAppUpdate(ctx app.Context) {
	klog.Infof("Board component: App update available, reloading...")
	ctx.Reload()
}

func (b *Board) OnMount(ctx app.Context) {
	klog.Infof("Board component: OnMount called")
	State.Listeners["board"] = func() {
		klog.V(1).Infof("Board component: Notify received")
		ctx.Dispatch(func(ctx app.Context) {
			b.Error = State.Error
		})
	}
}

func (b *Board) OnDismount() {
	klog.Infof("Board component: OnDismount called")
	delete(State.Listeners, "board")
	State.StopWatching()
}

func (b *Board) OnNav(ctx app.Context) {
	if app.IsServer {
		return
	}
	path := app.Window().URL().Path
	b.BoardID = boardIDFromPath(path)
	klog.Infof("Board component: Navigated to %s, board %q", path, b.BoardID)

	if b.BoardID == "" {
		b.Error = "No Board ID provided"
		klog.Errorf("Board component: Error: %s", b.Error)
		return
	}
	if err := State.Watch(BoardURL(), b.BoardID); err != nil {
		b.Error = fmt.Sprintf("Failed to connect to board: %v", err)
		klog.Errorf("Board component: Error connecting: %v", err)
	}
}

// boardIDFromPath extracts the id of /board/<id>.
func boardIDFromPath(path string) string {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) >= 2 && parts[0] == "board" {
		return parts[1]
	}
	return ""
}

func (b *Board) Render() app.UI {
	if b.Error != "" {
		return app.Main().Class("container").Body(
			&TopBar{ReadOnly: true},
			app.Article().Body(
				app.H2().Text("Board unavailable"),
				app.P().Style("color", "red").Text(b.Error),
				app.A().Href("/").Text("Return to Home"),
			),
		)
	}

	snapshot := State.Watched
	var content app.UI
	switch {
	case snapshot == nil:
		content = app.Div().Aria("busy", "true").Text("Connecting to board...")
	case snapshot.Batch.Empty():
		content = app.Article().Body(
			app.P().Text(fmt.Sprintf("Waiting for cards on board %s...", b.BoardID)),
		)
	default:
		variant, err := game.LookupVariant(snapshot.Batch.Variant)
		if err != nil {
			content = app.Article().Body(app.P().Style("color", "red").Text(err.Error()))
			break
		}
		var winners app.UI = app.Text("")
		if snapshot.ShowWinners {
			winners = app.Article().Body(winnerNumbers(snapshot.Batch))
		}
		content = app.Div().Body(
			app.Article().Body(legend(variant)),
			winners,
			cardGrid(snapshot.Batch, variant, snapshot.ShowWinners, snapshot.ShowHearts),
		)
	}

	return app.Main().Class("container board").Body(
		&TopBar{ReadOnly: true},
		content,
	)
}
