// Package server exposes one game against an engine over HTTP and
// websocket: the client submits the human moves, the server answers
// with the computer's reply in the same state payload.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/qychen/tictacgo/internal/game"
	"github.com/qychen/tictacgo/pkg/common"
)

type Options struct {
	HumanMark   common.Mark
	NewOpponent func() game.MoveSource
}

type StatusResponse struct {
	Board      common.StateVector `json:"board"`
	NextPlayer string             `json:"next_player"`
	Status     string             `json:"status"`
	Winner     string             `json:"winner,omitempty"`
	HumanMark  string             `json:"human_mark"`
	History    []plyDTO           `json:"history"`
}

type plyDTO struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Mark   string `json:"mark"`
	Source string `json:"source"`
}

type apiMove struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Server struct {
	mu        sync.Mutex
	opts      Options
	game      *game.Game
	hub       *Hub
	humanMark common.Mark
}

func New(opts Options) *Server {
	var s = &Server{
		opts: opts,
		hub:  NewHub(),
	}
	s.reset(opts.HumanMark)
	return s
}

// reset starts a fresh game; callers hold s.mu or run before serving.
func (s *Server) reset(humanMark common.Mark) {
	if humanMark == common.Empty {
		humanMark = common.X
	}
	s.humanMark = humanMark
	var human = &game.FuncSource{SourceName: "human"}
	var opponent = s.opts.NewOpponent()
	if humanMark == common.X {
		s.game = game.New(human, opponent)
	} else {
		s.game = game.New(opponent, human)
	}
	// When the computer opens, play its first move immediately.
	s.advanceComputer()
}

// advanceComputer plays engine turns until it is the human's move or
// the game ended. Callers hold s.mu (or run during construction).
func (s *Server) advanceComputer() {
	for {
		if s.game.Result().Outcome != common.InProgress {
			return
		}
		if s.game.ToMove() == s.humanMark {
			return
		}
		if _, err := s.game.PlayTurn(); err != nil {
			return
		}
	}
}

func (s *Server) status() StatusResponse {
	var result = s.game.Result()
	var resp = StatusResponse{
		Board:      s.game.Board().Vector(),
		NextPlayer: s.game.ToMove().String(),
		Status:     result.Outcome.String(),
		HumanMark:  s.humanMark.String(),
	}
	if result.Outcome == common.Won {
		resp.Winner = result.Winner.String()
	}
	for _, ply := range s.game.History() {
		resp.History = append(resp.History, plyDTO{
			Row:    common.Row(ply.Square),
			Col:    common.Col(ply.Square),
			Mark:   ply.Mark.String(),
			Source: ply.Source,
		})
	}
	return resp
}

func (s *Server) Handler() http.Handler {
	var r = chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		var status = s.status()
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, status)
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		s.mu.Lock()
		var status, err = s.applyHumanMove(payload)
		s.mu.Unlock()
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		s.broadcast(status)
		writeJSON(w, http.StatusOK, status)
	})

	r.Post("/api/reset", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			HumanMark string `json:"human_mark"`
		}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		var mark = s.opts.HumanMark
		if payload.HumanMark != "" {
			var parsed, err = common.ParseMark(payload.HumanMark)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			mark = parsed
		}
		s.mu.Lock()
		s.reset(mark)
		var status = s.status()
		s.mu.Unlock()
		s.broadcast(status)
		writeJSON(w, http.StatusOK, status)
	})

	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWS(w, r)
	})

	return r
}

func (s *Server) applyHumanMove(payload apiMove) (StatusResponse, error) {
	if s.game.Result().Outcome != common.InProgress {
		return StatusResponse{}, errors.New("game over")
	}
	if s.game.ToMove() != s.humanMark {
		return StatusResponse{}, errors.New("not your turn")
	}
	if !common.InBounds(payload.Row, payload.Col) {
		return StatusResponse{}, common.ErrOutOfBounds
	}
	if _, err := s.game.ApplyMove(common.MakeSquare(payload.Row, payload.Col), "human"); err != nil {
		return StatusResponse{}, err
	}
	s.advanceComputer()
	return s.status(), nil
}

func (s *Server) broadcast(status StatusResponse) {
	select {
	case s.hub.broadcastStatus <- status:
	default:
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	var client = &Client{hub: s.hub, send: make(chan []byte, 16)}
	s.hub.Register(client)

	s.mu.Lock()
	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(s.status())})
	s.mu.Unlock()

	go func() {
		defer conn.Close()
		for data := range client.send {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			s.hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "move":
			var payload apiMove
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				continue
			}
			s.mu.Lock()
			status, err := s.applyHumanMove(payload)
			s.mu.Unlock()
			if err != nil {
				client.sendJSON(wsMessage{Type: "error", Payload: mustMarshal(err.Error())})
				continue
			}
			s.broadcast(status)
		case "request_status":
			s.mu.Lock()
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(s.status())})
			s.mu.Unlock()
		}
	}
}

// ListenAndServe runs the hub and blocks serving addr.
func (s *Server) ListenAndServe(addr string) error {
	var done = make(chan struct{})
	defer close(done)
	go s.hub.Run(done)
	return http.ListenAndServe(addr, s.Handler())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
