package web

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/trash-toss/internal/core"
	"github.com/vovakirdan/trash-toss/internal/games/trashtoss"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 1024
	inboxSize      = 64
)

// clientMessage is sent by the browser. Pointer coordinates are in world
// space.
type clientMessage struct {
	Type string  `json:"type"`
	Kind string  `json:"kind,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// frameMessage carries one rendered frame to the browser.
type frameMessage struct {
	Type  string             `json:"type"`
	Frame trashtoss.Snapshot `json:"frame"`
}

// applyMessage records a client message in the input frame for the next tick.
func applyMessage(frame *core.InputFrame, msg clientMessage) error {
	switch msg.Type {
	case "pointer":
		kind, ok := core.ParsePointerKind(msg.Kind)
		if !ok {
			return fmt.Errorf("web: unknown pointer kind %q", msg.Kind)
		}
		frame.AddPointer(core.PointerEvent{Kind: kind, X: msg.X, Y: msg.Y, World: true})
	case "reset":
		frame.Set(core.ActionRestart)
	case "pause":
		frame.Set(core.ActionPause)
	default:
		return fmt.Errorf("web: unknown message type %q", msg.Type)
	}
	return nil
}

// session runs one game for one websocket connection. The game is only
// touched by the goroutine in run; the read pump hands messages over inbox.
type session struct {
	conn   *websocket.Conn
	game   *trashtoss.Game
	cfg    Config
	store  ScoreStore
	logger *log.Logger
	inbox  chan clientMessage
	done   chan struct{}
}

func newSession(conn *websocket.Conn, game *trashtoss.Game, cfg Config, store ScoreStore, logger *log.Logger) *session {
	return &session{
		conn:   conn,
		game:   game,
		cfg:    cfg,
		store:  store,
		logger: logger,
		inbox:  make(chan clientMessage, inboxSize),
		done:   make(chan struct{}),
	}
}

// run steps the game at the configured rate until the client goes away or
// ctx is cancelled.
func (s *session) run(ctx context.Context) {
	defer s.conn.Close()
	defer close(s.done)

	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.DefaultConfig()
	rc.TickRate = s.cfg.TickRate
	rc.Seed = seed
	s.game.Reset(rc)
	s.logger.Info("web session started", "seed", seed)

	go s.readPump()

	tick := time.NewTicker(time.Second / time.Duration(s.cfg.TickRate))
	defer tick.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	frame := core.NewInputFrame()
	if err := s.writeFrame(); err != nil {
		s.logger.Debug("write failed", "err", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			s.saveRun("shutdown")
			s.closeWith(websocket.CloseGoingAway, "server shutting down")
			return

		case msg, ok := <-s.inbox:
			if !ok {
				s.saveRun("disconnect")
				s.logger.Info("web session ended", "score", s.game.State().Score)
				return
			}
			if msg.Type == "reset" {
				s.saveRun("reset")
			}
			if err := applyMessage(&frame, msg); err != nil {
				s.logger.Debug("ignoring message", "err", err)
			}

		case <-tick.C:
			s.game.Step(frame)
			frame.Clear()
			if err := s.writeFrame(); err != nil {
				s.logger.Debug("write failed", "err", err)
				s.saveRun("disconnect")
				return
			}

		case <-ping.C:
			//nolint:errcheck // a failed ping surfaces as a read error
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.saveRun("disconnect")
				return
			}
		}
	}
}

// readPump decodes client messages until the connection fails.
func (s *session) readPump() {
	defer close(s.inbox)

	s.conn.SetReadLimit(maxMessageSize)
	//nolint:errcheck // deadline errors surface on the next read
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", "err", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Debug("malformed message", "err", err)
			continue
		}

		select {
		case s.inbox <- msg:
		case <-s.done:
			return
		}
	}
}

func (s *session) writeFrame() error {
	//nolint:errcheck // a stale deadline fails the write below
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(frameMessage{Type: "frame", Frame: s.game.Snapshot()})
}

func (s *session) closeWith(code int, reason string) {
	//nolint:errcheck // best-effort close frame
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	//nolint:errcheck // best-effort close frame
	s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason))
}

// saveRun records the run in the score history. Best effort.
func (s *session) saveRun(reason string) {
	score := s.game.State().Score
	if s.store == nil || score <= 0 {
		return
	}
	if _, err := s.store.SaveScore(trashtoss.GameID, score, s.game.Binned()); err != nil {
		s.logger.Warn("could not save score", "err", err)
		return
	}
	s.logger.Info("run saved", "reason", reason, "score", score, "binned", s.game.Binned())
}
