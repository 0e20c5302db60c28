package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"k8s.io/klog/v2"

	"github.com/Mikkode/bingo/internal/game"
)

// ServerState holds the variants served and the shared boards.
type ServerState struct {
	mu      sync.RWMutex
	Boards  map[string]*Board
	Address string // Address the server is bound to, set once listening.

	variants       []*game.Variant
	defaultWinners int
}

// Board is a shared view of a generator screen: one publisher, any number of watchers.
type Board struct {
	ID       string
	Snapshot game.BoardSnapshot
	conns    map[*websocket.Conn]bool
}

// NewServerState creates the state with the built-in variants followed by opts.Variants.
func NewServerState(opts Options) (*ServerState, error) {
	if opts.DefaultWinners < 0 || opts.DefaultWinners > game.BatchSize {
		return nil, fmt.Errorf("%w: default winners %d", game.ErrInvalidWinnerCount, opts.DefaultWinners)
	}
	s := &ServerState{
		Boards:         make(map[string]*Board),
		variants:       game.Variants(),
		defaultWinners: opts.DefaultWinners,
	}
	for _, v := range opts.Variants {
		if _, err := s.Variant(v.Name); err == nil {
			return nil, fmt.Errorf("%w %q: a variant with this name already exists", game.ErrInvalidVariant, v.Name)
		}
		s.variants = append(s.variants, v)
	}
	return s, nil
}

// Variant returns the served variant with the given name; empty means the default.
func (s *ServerState) Variant(name string) (*game.Variant, error) {
	if name == "" {
		name = game.DefaultVariant
	}
	for _, v := range s.variants {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", game.ErrUnknownVariant, name)
}

// BoardCount returns the number of live boards.
func (s *ServerState) BoardCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Boards)
}

// HandleWS serves one board connection: the client first sends watch or publish, and
// may keep publishing for as long as the connection lives.
func (s *ServerState) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		klog.Errorf("HandleWS: failed to accept websocket: %v", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	var board *Board
	defer func() {
		if board != nil {
			s.leave(board.ID, conn)
		}
	}()

	for {
		var msg game.WsMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || websocket.CloseStatus(err) == websocket.StatusGoingAway {
				klog.V(1).Infof("HandleWS: connection closed")
			} else {
				klog.Warningf("HandleWS: read error: %v", err)
			}
			return
		}

		p, err := msg.Parse()
		if err != nil {
			s.sendError(ctx, conn, fmt.Sprintf("invalid message: %v", err))
			continue
		}

		switch m := p.(type) {
		case *game.WatchMessage:
			if m.BoardID == "" {
				s.sendError(ctx, conn, "watch needs a board_id")
				continue
			}
			board = s.move(board, m.BoardID, conn)
			s.send(ctx, conn, s.snapshot(m.BoardID))

		case *game.PublishMessage:
			boardID := m.Snapshot.BoardID
			if boardID == "" {
				s.sendError(ctx, conn, "publish needs a snapshot with a board_id")
				continue
			}
			board = s.move(board, boardID, conn)
			snapshot, watchers := s.publish(boardID, m.Snapshot, conn)
			klog.V(1).Infof("HandleWS: board %s published to %d watchers", boardID, len(watchers))
			for _, watcher := range watchers {
				s.send(ctx, watcher, snapshot)
			}

		default:
			s.sendError(ctx, conn, fmt.Sprintf("unexpected message type %q", msg.Type))
		}
	}
}

// move makes conn a member of board boardID, leaving its previous board if different.
func (s *ServerState) move(from *Board, boardID string, conn *websocket.Conn) *Board {
	if from != nil && from.ID == boardID {
		return from
	}
	if from != nil {
		s.leave(from.ID, conn)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	board, found := s.Boards[boardID]
	if !found {
		klog.Infof("Board %s created", boardID)
		board = &Board{
			ID:       boardID,
			Snapshot: game.BoardSnapshot{BoardID: boardID, UpdatedAt: time.Now()},
			conns:    make(map[*websocket.Conn]bool),
		}
		s.Boards[boardID] = board
	}
	board.conns[conn] = true
	return board
}

// leave removes conn from the board, dropping the board when it was the last connection.
func (s *ServerState) leave(boardID string, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	board, found := s.Boards[boardID]
	if !found {
		return
	}
	delete(board.conns, conn)
	if len(board.conns) == 0 {
		klog.Infof("Board %s dropped", boardID)
		delete(s.Boards, boardID)
	}
}

func (s *ServerState) snapshot(boardID string) game.BoardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if board, found := s.Boards[boardID]; found {
		return board.Snapshot
	}
	return game.BoardSnapshot{BoardID: boardID}
}

// publish stores the snapshot and returns it with every connection of the board except from.
func (s *ServerState) publish(boardID string, snapshot game.BoardSnapshot, from *websocket.Conn) (game.BoardSnapshot, []*websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	board, found := s.Boards[boardID]
	if !found {
		return snapshot, nil
	}
	snapshot.BoardID = boardID
	snapshot.UpdatedAt = time.Now()
	board.Snapshot = snapshot
	watchers := make([]*websocket.Conn, 0, len(board.conns))
	for conn := range board.conns {
		if conn != from {
			watchers = append(watchers, conn)
		}
	}
	return snapshot, watchers
}

func (s *ServerState) send(ctx context.Context, conn *websocket.Conn, snapshot game.BoardSnapshot) {
	msg, err := game.NewWsMessage(game.MsgTypeState, game.StateMessage{Board: snapshot})
	if err != nil {
		klog.Errorf("send: failed to create state message: %v", err)
		return
	}
	s.write(ctx, conn, msg)
}

func (s *ServerState) sendError(ctx context.Context, conn *websocket.Conn, message string) {
	klog.Warningf("HandleWS: %s", message)
	msg, err := game.NewWsMessage(game.MsgTypeError, game.ErrorMessage{Message: message})
	if err != nil {
		klog.Errorf("sendError: failed to create error message: %v", err)
		return
	}
	s.write(ctx, conn, msg)
}

func (s *ServerState) write(ctx context.Context, conn *websocket.Conn, msg game.WsMessage) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := wsjson.Write(ctx, conn, msg); err != nil {
		klog.Warningf("write: failed to send %s message: %v", msg.Type, err)
	}
}
