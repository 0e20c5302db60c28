package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/Mikkode/bingo/internal/frontend"
	"github.com/Mikkode/bingo/internal/game"
)

// Options configures Run beyond the listen address.
type Options struct {
	// DefaultWinners is used by /api/batch when no winners parameter is given.
	DefaultWinners int

	// Variants are served in addition to the built-in ones.
	Variants []*game.Variant
}

// Run starts the server with default options and blocks until the context is canceled.
func Run(ctx context.Context, addr string, started chan *ServerState) error {
	return RunWithOptions(ctx, addr, Options{DefaultWinners: game.DefaultWinners}, started)
}

// RunWithOptions starts the server and blocks until the context is canceled.
// If started is not nil, it receives the server state once the address is bound.
func RunWithOptions(ctx context.Context, addr string, opts Options, started chan *ServerState) error {
	// Initialize global frontend state for server-side prerendering without panic
	frontend.InitState()

	serverState, err := NewServerState(opts)
	if err != nil {
		return err
	}

	// Register go-app routes so the server knows how to prerender them
	app.Route("/", func() app.Composer { return &frontend.Home{} })
	app.RouteWithRegexp("^/board/.*", func() app.Composer { return &frontend.Board{} })

	// The web assets and the compiled webassembly
	// are served natively by the go-app framework
	h := &app.Handler{
		Name:        "Emoji Detective Bingo",
		ShortName:   "Bingo",
		Description: "Printable emoji bingo cards with rigged winners",
		Version:     game.Version,
		Styles: []string{
			// Load pico.css
			"https://cdn.jsdelivr.net/npm/@picocss/pico@2/css/pico.min.css",
			// Custom and print styles
			"/web/css/main.css",
		},
	}

	if addr == "" {
		addr = "localhost:0"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", addr, err)
	}
	serverState.Address = listener.Addr().String()

	srv := &http.Server{
		Handler: NewRouter(serverState, h),
	}

	go func() {
		klog.Infof("Server started on %s", serverState.Address)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Errorf("Server error: %v", err)
		}
	}()
	if started != nil {
		started <- serverState
	}

	<-ctx.Done()

	// Graceful shutdown with 5 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	klog.Info("Shutting down server...")
	return srv.Shutdown(shutdownCtx)
}

// NewRouter returns the echo router of the server. ui serves every path not otherwise
// routed; it may be nil, in which case those paths are not found.
func NewRouter(s *ServerState, ui http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware())

	e.GET("/healthz", s.Healthz)
	e.GET("/api/variants", s.ListVariants)
	e.GET("/api/batch", s.GenerateBatch)

	// Register WebSocket endpoint
	e.GET("/ws", echo.WrapHandler(http.HandlerFunc(s.HandleWS)))

	// We want to serve /web for static files
	e.Static("/web", "web")
	if ui != nil {
		e.Any("/*", echo.WrapHandler(ui))
	}
	return e
}
