package web

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/grammarkit/bnf"
	"github.com/grammarkit/bnf/internal/logging"
)

const wsWriteTimeout = 10 * time.Second

var wsClients atomic.Int64

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The UI is served same-origin; other origins get the REST endpoint.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsResult is the message sent back for every grammar received. Exactly one
// of Grammar and Error is set.
type wsResult struct {
	Grammar *bnf.Grammar  `json:"grammar,omitempty"`
	Error   *parseFailure `json:"error,omitempty"`
}

// handleWebSocket parses each text message it receives and answers with the
// same JSON document the REST endpoint produces. One connection, one
// goroutine; the connection closes on the first read or write error.
func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxGrammarBytes)

	logging.WebSocketEvent("client_connected", int(wsClients.Add(1)))
	defer func() {
		logging.WebSocketEvent("client_disconnected", int(wsClients.Add(-1)))
	}()

	for {
		kind, message, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		var result wsResult
		grammar, err := bnf.ParseString(string(message))
		if err != nil {
			failure := failureFrom(err)
			result.Error = &failure
		} else {
			result.Grammar = grammar
		}

		payload, err := json.Marshal(result)
		if err != nil {
			logging.Error("websocket marshal failed", "error", err)
			return
		}
		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
