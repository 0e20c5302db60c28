package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

type TopBar struct {
	app.Compo
	// ReadOnly hides the sharing controls, for the board view.
	ReadOnly bool
}

func (t *TopBar) onShare(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if err := State.StartSharing(BoardURL()); err != nil {
		klog.Errorf("TopBar: failed to share: %v", err)
		State.Error = "Failed to share the board: " + err.Error()
		State.Notify()
	}
}

func (t *TopBar) onStopSharing(ctx app.Context, e app.Event) {
	e.PreventDefault()
	State.StopSharing()
}

func (t *TopBar) onCopyURL(ctx app.Context, e app.Event) {
	e.PreventDefault()
	u := app.Window().URL()
	u.Path = "/board/" + State.BoardID
	u.RawQuery = ""
	app.Window().Get("navigator").Get("clipboard").Call("writeText", u.String())
	app.Window().Call("alert", "Board URL copied to clipboard!")
}

func (t *TopBar) onBannerClick(ctx app.Context, e app.Event) {
	ctx.Navigate("/")
}

func (t *TopBar) Render() app.UI {
	var actions []app.UI
	switch {
	case t.ReadOnly:
	case State.BoardID == "":
		actions = append(actions, app.Li().Body(
			app.A().Href("#").OnClick(t.onShare).Text("📺 Share board"),
		))
	default:
		actions = append(actions,
			app.Li().Body(
				app.A().Href("#").OnClick(t.onCopyURL).Text("📋 Board "+State.BoardID),
			),
			app.Li().Body(
				app.A().Href("#").OnClick(t.onStopSharing).Text("Stop sharing"),
			),
		)
	}

	return app.Nav().Class("no-print").Body(
		app.Ul().Body(
			app.Li().Body(
				app.Strong().
					Style("cursor", "pointer").
					OnClick(t.onBannerClick).
					Text("🕵️ Bingo"),
			),
		),
		app.Ul().Body(actions...),
	)
}
