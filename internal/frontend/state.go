package frontend

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/Mikkode/bingo/internal/game"
)

// ClientState is the state of the generator screen: the current batch and the display toggles.
// It is owned by the UI; generation returns a new batch that replaces the old one wholesale.
type ClientState struct {
	Variant      *game.Variant
	WinnerCount  int
	Batch        *game.Batch
	IsGenerating bool
	ShowWinners  bool
	ShowHearts   bool
	Error        string

	// Board sharing: the generator screen publishes, projector screens watch.
	BoardID string
	Watched *game.BoardSnapshot
	Conn    *websocket.Conn

	rng game.RNG

	// Listeners for state updates
	Listeners map[string]func()
}

var State *ClientState

// NewClientState returns the initial state of the screen. A nil rng means game.NewRNG().
func NewClientState(rng game.RNG) *ClientState {
	variant, err := game.LookupVariant(game.DefaultVariant)
	if err != nil {
		// The default variant is built in.
		panic(err)
	}
	if rng == nil {
		rng = game.NewRNG()
	}
	return &ClientState{
		Variant:     variant,
		WinnerCount: game.DefaultWinners,
		rng:         rng,
		Listeners:   make(map[string]func()),
	}
}

func InitState() {
	if State == nil {
		klog.V(1).Infof("InitState: creating new state (was nil)")
		State = NewClientState(nil)
	} else {
		klog.V(1).Infof("InitState: state already exists")
	}
}

func (s *ClientState) Notify() {
	klog.V(1).Infof("ClientState: Notifying %d listeners", len(s.Listeners))
	for _, l := range s.Listeners {
		if l != nil {
			l()
		}
	}
}

// SetWinnerCount parses the winner count input, clamped to 1..50. Unparsable input is ignored.
func (s *ClientState) SetWinnerCount(raw string) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		klog.V(1).Infof("SetWinnerCount: ignoring %q: %v", raw, err)
		return
	}
	s.WinnerCount = game.ClampWinners(n)
}

// SelectVariant switches the game variant and drops the current batch.
func (s *ClientState) SelectVariant(name string) error {
	v, err := game.LookupVariant(name)
	if err != nil {
		return err
	}
	if s.Variant != nil && s.Variant.Name == v.Name {
		return nil
	}
	klog.Infof("SelectVariant: %s", v.Name)
	s.Variant = v
	s.Batch = nil
	s.Error = ""
	s.ShowWinners = false
	s.ShowHearts = false
	s.publish()
	s.Notify()
	return nil
}

// Generate replaces the batch with a freshly generated one. It does nothing while a
// generation is already running.
//
// On failure the batch is cleared and the error message is kept for display.
func (s *ClientState) Generate() {
	if s.IsGenerating {
		klog.Warning("Generate: generation already running, ignoring request")
		return
	}
	s.IsGenerating = true
	s.Error = ""
	defer func() {
		s.IsGenerating = false
		s.Notify()
	}()

	g, err := game.NewGenerator(s.Variant, s.rng)
	if err != nil {
		s.fail(err)
		return
	}
	batch, err := g.GenerateBatch(s.WinnerCount)
	if err != nil {
		s.fail(err)
		return
	}
	klog.Infof("Generate: batch %s with %d winners: %v", batch.ID, batch.Winners, batch.WinnerIDs())
	s.Batch = &batch
	s.ShowWinners = false
	s.publish()
}

func (s *ClientState) fail(err error) {
	klog.Errorf("Generate: %v", err)
	s.Batch = nil
	s.Error = err.Error()
	s.publish()
}

func (s *ClientState) ToggleWinners() {
	s.ShowWinners = !s.ShowWinners
	s.publish()
	s.Notify()
}

// ToggleHearts flips the heart highlight; variants without a pattern have nothing to highlight.
func (s *ClientState) ToggleHearts() {
	if !s.Variant.HasPattern() {
		return
	}
	s.ShowHearts = !s.ShowHearts
	s.publish()
	s.Notify()
}

func (s *ClientState) DismissError() {
	s.Error = ""
	s.Notify()
}

// Print opens the browser print dialog.
func (s *ClientState) Print() {
	if app.IsServer {
		return
	}
	app.Window().Call("print")
}

// Snapshot is what the board of this screen currently shows.
func (s *ClientState) Snapshot() game.BoardSnapshot {
	return game.BoardSnapshot{
		BoardID:     s.BoardID,
		Batch:       s.Batch,
		ShowWinners: s.ShowWinners,
		ShowHearts:  s.ShowHearts,
		UpdatedAt:   time.Now(),
	}
}

// BoardURL returns the ws URL of the server the page was loaded from.
func BoardURL() string {
	u := app.Window().URL()
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return fmt.Sprintf("%s://%s/ws", scheme, u.Host)
}

// StartSharing opens a new board on the server and publishes the screen to it.
func (s *ClientState) StartSharing(wsURL string) error {
	boardID := strings.SplitN(uuid.NewString(), "-", 2)[0]
	if err := s.connect(wsURL); err != nil {
		return err
	}
	s.BoardID = boardID
	klog.Infof("StartSharing: sharing on board %s", boardID)
	go s.readLoop(s.Conn)
	s.publish()
	s.Notify()
	return nil
}

// StopSharing closes the board connection.
func (s *ClientState) StopSharing() {
	if s.Conn != nil {
		s.Conn.Close(websocket.StatusNormalClosure, "stop sharing")
		s.Conn = nil
	}
	s.BoardID = ""
	s.Notify()
}

// StopWatching closes the connection opened by Watch. A sharing connection is left alone.
func (s *ClientState) StopWatching() {
	if s.BoardID != "" {
		return
	}
	if s.Conn != nil {
		s.Conn.Close(websocket.StatusNormalClosure, "stop watching")
		s.Conn = nil
	}
	s.Watched = nil
}

// Watch follows the board boardID: each state the server sends replaces Watched.
func (s *ClientState) Watch(wsURL, boardID string) error {
	if err := s.connect(wsURL); err != nil {
		return err
	}
	msg, err := game.NewWsMessage(game.MsgTypeWatch, game.WatchMessage{BoardID: boardID})
	if err != nil {
		return fmt.Errorf("failed to create watch message: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*2)
	defer cancel()
	if err := wsjson.Write(ctx, s.Conn, msg); err != nil {
		klog.Errorf("Watch: failed to send watch: %v", err)
		return fmt.Errorf("failed to send watch: %w", err)
	}
	klog.Infof("Watch: following board %s", boardID)
	go s.readLoop(s.Conn)
	return nil
}

func (s *ClientState) connect(wsURL string) error {
	if s.Conn != nil {
		klog.Infof("connect: Closing existing connection")
		s.Conn.CloseNow()
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	klog.Infof("connect: Connecting to %s", wsURL)
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		klog.Errorf("connect: Dial failed: %v", err)
		return fmt.Errorf("dial failed: %w", err)
	}
	s.Conn = conn
	return nil
}

// publish pushes the current snapshot to the shared board, if sharing.
func (s *ClientState) publish() {
	if s.Conn == nil || s.BoardID == "" {
		return
	}
	msg, err := game.NewWsMessage(game.MsgTypePublish, game.PublishMessage{Snapshot: s.Snapshot()})
	if err != nil {
		klog.Errorf("publish: Failed to create publish message: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*2)
	defer cancel()
	if err := wsjson.Write(ctx, s.Conn, msg); err != nil {
		klog.Errorf("publish: Failed to send snapshot of board %s: %v", s.BoardID, err)
	}
}

func (s *ClientState) readLoop(conn *websocket.Conn) {
	ctx := context.Background()
	klog.Infof("readLoop: started")
	for {
		var msg game.WsMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			klog.Errorf("readLoop: WS read error: %v", err)
			return
		}
		s.handleMessage(msg)
	}
}

func (s *ClientState) handleMessage(msg game.WsMessage) {
	p, err := msg.Parse()
	if err != nil {
		klog.Errorf("handleMessage: Failed to parse %s message: %v", msg.Type, err)
		return
	}
	switch m := p.(type) {
	case *game.StateMessage:
		klog.V(1).Infof("handleMessage: board %s updated", m.Board.BoardID)
		board := m.Board
		s.Watched = &board
		s.Error = ""
		s.Notify()
	case *game.ErrorMessage:
		s.Error = m.Message
		s.Watched = nil
		s.Notify()
	default:
		klog.Warningf("handleMessage: unexpected message type %s", msg.Type)
	}
}
