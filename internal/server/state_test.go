package server

import (
	"context"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/Mikkode/bingo/internal/game"
)

func readBoard(t *testing.T, ctx context.Context, conn *websocket.Conn) game.BoardSnapshot {
	t.Helper()
	var msg game.WsMessage
	if err := wsjson.Read(ctx, conn, &msg); err != nil {
		t.Fatalf("Failed to read message: %v", err)
	}
	p, err := msg.Parse()
	if err != nil {
		t.Fatalf("Failed to parse %s message: %v", msg.Type, err)
	}
	state, ok := p.(*game.StateMessage)
	if !ok {
		t.Fatalf("Expected a state message, got %s: %s", msg.Type, msg.Payload)
	}
	return state.Board
}

func send(t *testing.T, ctx context.Context, conn *websocket.Conn, msgType game.MessageType, payload any) {
	t.Helper()
	msg, err := game.NewWsMessage(msgType, payload)
	if err != nil {
		t.Fatal(err)
	}
	if err := wsjson.Write(ctx, conn, msg); err != nil {
		t.Fatalf("Failed to send %s: %v", msgType, err)
	}
}

func TestBoardWebsocket(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	started := make(chan *ServerState, 1)
	go Run(ctx, "127.0.0.1:0", started)
	serverState := <-started
	wsURL := "ws://" + serverState.Address + "/ws"

	dial := func() *websocket.Conn {
		conn, _, err := websocket.Dial(ctx, wsURL, nil)
		if err != nil {
			t.Fatalf("Failed to dial %s: %v", wsURL, err)
		}
		return conn
	}

	variant, err := game.LookupVariant("heart")
	if err != nil {
		t.Fatal(err)
	}
	g, err := game.NewGenerator(variant, game.NewSeededRNG(3))
	if err != nil {
		t.Fatal(err)
	}
	batch, err := g.GenerateBatch(4)
	if err != nil {
		t.Fatal(err)
	}

	const boardID = "test-board"

	// A watcher arriving first sees an empty board.
	watcher := dial()
	defer watcher.CloseNow()
	send(t, ctx, watcher, game.MsgTypeWatch, game.WatchMessage{BoardID: boardID})
	empty := readBoard(t, ctx, watcher)
	if empty.BoardID != boardID || empty.Batch != nil {
		t.Fatalf("Expected an empty board %q, got %+v", boardID, empty)
	}

	publisher := dial()
	defer publisher.CloseNow()
	send(t, ctx, publisher, game.MsgTypePublish, game.PublishMessage{Snapshot: game.BoardSnapshot{
		BoardID: boardID,
		Batch:   &batch,
	}})
	got := readBoard(t, ctx, watcher)
	if got.Batch == nil || got.Batch.ID != batch.ID || got.ShowWinners {
		t.Fatalf("Watcher did not receive the published batch: %+v", got)
	}
	if len(got.Batch.WinnerIDs()) != 4 {
		t.Errorf("Expected 4 winners, got %v", got.Batch.WinnerIDs())
	}

	// Revealing the winners reaches the watcher too.
	send(t, ctx, publisher, game.MsgTypePublish, game.PublishMessage{Snapshot: game.BoardSnapshot{
		BoardID:     boardID,
		Batch:       &batch,
		ShowWinners: true,
		ShowHearts:  true,
	}})
	got = readBoard(t, ctx, watcher)
	if !got.ShowWinners || !got.ShowHearts {
		t.Errorf("Expected the toggles to be published, got %+v", got)
	}

	// A late watcher gets the latest snapshot right away.
	late := dial()
	defer late.CloseNow()
	send(t, ctx, late, game.MsgTypeWatch, game.WatchMessage{BoardID: boardID})
	got = readBoard(t, ctx, late)
	if got.Batch == nil || got.Batch.ID != batch.ID || !got.ShowWinners {
		t.Errorf("Late watcher got %+v", got)
	}

	if n := serverState.BoardCount(); n != 1 {
		t.Errorf("Expected 1 board, got %d", n)
	}

	// The board is dropped once every connection is gone.
	publisher.Close(websocket.StatusNormalClosure, "")
	watcher.Close(websocket.StatusNormalClosure, "")
	late.Close(websocket.StatusNormalClosure, "")
	deadline := time.Now().Add(3 * time.Second)
	for serverState.BoardCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("Board was not dropped, %d boards left", serverState.BoardCount())
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestBoardWebsocketErrors(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	started := make(chan *ServerState, 1)
	go Run(ctx, "127.0.0.1:0", started)
	serverState := <-started

	conn, _, err := websocket.Dial(ctx, "ws://"+serverState.Address+"/ws", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.CloseNow()

	tests := []struct {
		name    string
		msgType game.MessageType
		payload any
	}{
		{"watch without board", game.MsgTypeWatch, game.WatchMessage{}},
		{"publish without board", game.MsgTypePublish, game.PublishMessage{}},
		{"server-only message", game.MsgTypeState, game.StateMessage{}},
		{"unknown type", game.MessageType("shout"), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			send(t, ctx, conn, tc.msgType, tc.payload)
			var msg game.WsMessage
			if err := wsjson.Read(ctx, conn, &msg); err != nil {
				t.Fatalf("Failed to read reply: %v", err)
			}
			if msg.Type != game.MsgTypeError {
				t.Errorf("Expected an error message, got %s", msg.Type)
			}
		})
	}
	if n := serverState.BoardCount(); n != 0 {
		t.Errorf("Expected no boards, got %d", n)
	}
}
