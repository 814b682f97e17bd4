// Command padlock-web serves an interactive view of the keypad chain:
// type a door code, pick a chain depth, and watch the per-key press
// counts stream back over a websocket.
package main

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/padchain/door"
	"github.com/katalvlaran/padchain/layout"
)

//go:embed static/*
var staticFiles embed.FS

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// ClientMessage is one action from the browser.
type ClientMessage struct {
	Action   string `json:"action"`
	Sequence string `json:"sequence,omitempty"`
	Depth    int    `json:"depth,omitempty"`
}

// KeyCost is the price of one door key within a code: the walk to it
// plus the single press, in bottom-of-chain presses.
type KeyCost struct {
	Key     string `json:"key"`
	Move    uint64 `json:"move"`
	Press   uint64 `json:"press"`
	Running uint64 `json:"running"`
}

// ServerMessage is one reply to the browser.
type ServerMessage struct {
	Type       string    `json:"type"`
	Sequence   string    `json:"sequence,omitempty"`
	Depth      int       `json:"depth,omitempty"`
	Keys       []KeyCost `json:"keys,omitempty"`
	Total      uint64    `json:"total,omitempty"`
	Value      uint64    `json:"value,omitempty"`
	Complexity uint64    `json:"complexity,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// KeypadSession manages one WebSocket connection and the keypad it
// drives. Each session owns its keypad, so the engine's
// single-threaded contract holds per connection.
type KeypadSession struct {
	conn   *websocket.Conn
	keypad *door.Keypad
	depth  int
	mu     sync.Mutex
}

func NewKeypadSession(conn *websocket.Conn) *KeypadSession {
	return &KeypadSession{conn: conn, depth: -1}
}

func (s *KeypadSession) HandleMessages() {
	slog.Info("Session started", "remote_addr", s.conn.RemoteAddr())
	defer func() {
		_ = s.conn.Close()
		slog.Info("Session ended", "remote_addr", s.conn.RemoteAddr())
	}()

	for {
		_, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("WebSocket read error", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			slog.Warn("Failed to parse message", "error", err)
			continue
		}

		s.handleAction(msg)
	}
}

func (s *KeypadSession) handleAction(msg ClientMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slog.Debug("Action received", "action", msg.Action, "payload", msg)

	switch msg.Action {
	case "solve":
		s.solve(msg.Sequence, msg.Depth)
	case "reset":
		if s.keypad != nil {
			s.keypad.Reset()
		}
		s.writeJSON(ServerMessage{Type: "reset"})
	}
}

// solve prices a code key by key so the browser can animate the
// running total, then reports the sequence value and complexity.
func (s *KeypadSession) solve(sequence string, depth int) {
	if depth != s.depth || s.keypad == nil {
		k, err := door.New(depth)
		if err != nil {
			s.sendError(sequence, err.Error())

			return
		}
		s.keypad = k
		s.depth = depth
		slog.Info("Keypad initialized", "depth", depth)
	}

	// Per-key breakdown: walk the code one key at a time on the owned
	// chain, exactly what TotalPresses does in one go.
	c := s.keypad.Chain()
	s.keypad.Reset()
	keys := make([]KeyCost, 0, len(sequence))
	var total uint64
	for i := 0; i < len(sequence); i++ {
		pos, err := layout.Numeric.PositionOf(sequence[i])
		if err != nil {
			s.keypad.Reset()
			s.sendError(sequence, err.Error())

			return
		}

		move := c.MoveTo(pos, layout.Numeric.Gap())
		press := c.Press(1)
		total += move + press
		keys = append(keys, KeyCost{
			Key:     string(sequence[i]),
			Move:    move,
			Press:   press,
			Running: total,
		})
	}
	s.keypad.Reset()

	reply := ServerMessage{
		Type:     "solved",
		Sequence: sequence,
		Depth:    depth,
		Keys:     keys,
		Total:    total,
	}
	if value, err := door.SequenceValue(sequence); err == nil {
		reply.Value = value
		reply.Complexity = total * value
	}
	s.writeJSON(reply)
}

func (s *KeypadSession) sendError(sequence, detail string) {
	s.writeJSON(ServerMessage{Type: "error", Sequence: sequence, Error: detail})
}

func (s *KeypadSession) writeJSON(msg ServerMessage) {
	if err := s.conn.WriteJSON(msg); err != nil {
		slog.Error("Failed to write JSON message", "error", err)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("WebSocket upgrade failed", "error", err)
		return
	}

	session := NewKeypadSession(conn)
	session.HandleMessages()
}

type AppConfig struct {
	Port string
}

func loadConfig() *AppConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return &AppConfig{
		Port: port,
	}
}

func main() {
	cfg := loadConfig()

	// Serve static files from embedded filesystem
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatal(err)
	}

	http.Handle("/", http.FileServer(http.FS(staticFS)))
	http.HandleFunc("/ws", handleWebSocket)

	addr := ":" + cfg.Port
	slog.Info("Starting padlock web server", "addr", addr)
	slog.Info("Open http://localhost:" + cfg.Port + " in your browser")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}
