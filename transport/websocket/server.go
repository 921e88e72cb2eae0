package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/chessmate-backend/internal/entity"
	"github.com/rocketscienceinc/chessmate-backend/internal/matchmaking"
)

// coordinator is the part of the matchmaking core this transport drives.
type coordinator interface {
	FindGame(playerID string)
	CancelFind(playerID string)
	MakeMove(playerID string, move entity.Move)
	Disconnect(playerID string)
}

type Server struct {
	logger      *slog.Logger
	coordinator coordinator
	upgrader    websocket.Upgrader

	handlers map[string]func(playerID string, payload json.RawMessage) error

	connectionsMutex sync.RWMutex
	connections      map[string]*client
}

func New(logger *slog.Logger, coordinator coordinator) *Server {
	server := &Server{
		logger:      logger,
		coordinator: coordinator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(_ *http.Request) bool { return true },
		},
		handlers:    make(map[string]func(string, json.RawMessage) error),
		connections: make(map[string]*client),
	}

	server.handlers["findGame"] = server.handleFindGame
	server.handlers["cancelFindGame"] = server.handleCancelFind
	server.handlers["move"] = server.handleMove

	return server
}

// Start - starts the WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	// no read/write timeouts: connections are long-lived, liveness comes
	// from the ping/pong cycle in the pumps
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveConnection - upgrades the connection and pumps messages until the
// client goes away. Every connection is one anonymous player.
func (that *Server) serveConnection(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	player := newClient(uuid.NewString(), conn)
	log = log.With("playerID", player.id)

	that.connectionsMutex.Lock()
	that.connections[player.id] = player
	that.connectionsMutex.Unlock()

	log.Info("player connected")

	go player.writePump()

	that.readPump(ctx, player)

	that.connectionsMutex.Lock()
	delete(that.connections, player.id)
	that.connectionsMutex.Unlock()

	player.close()
	that.coordinator.Disconnect(player.id)

	log.Info("player disconnected")
}

// readPump - processes messages from the client until the connection drops.
func (that *Server) readPump(ctx context.Context, player *client) {
	log := that.logger.With("method", "readPump", "playerID", player.id)

	player.conn.SetReadLimit(maxMessageSize)
	_ = player.conn.SetReadDeadline(time.Now().Add(pongWait))
	player.conn.SetPongHandler(func(string) error {
		return player.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if ctx.Err() != nil {
			return
		}

		_, reqBody, err := player.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}

			return
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			continue
		}

		if err = handler(player.id, message.Payload); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// Notify - implements matchmaking.Notifier. The send is nonblocking: a
// client that cannot keep up loses events rather than stalling the
// coordinator.
func (that *Server) Notify(playerID string, event matchmaking.Event) {
	log := that.logger.With("method", "Notify", "playerID", playerID)

	that.connectionsMutex.RLock()
	player, ok := that.connections[playerID]
	that.connectionsMutex.RUnlock()

	if !ok {
		log.Warn("connection not found for player", "action", event.Action)
		return
	}

	message, err := encodeEvent(event)
	if err != nil {
		log.Error("failed to encode event", "action", event.Action, "error", err)
		return
	}

	if !player.trySend(message) {
		log.Warn("send buffer full, dropping event", "action", event.Action)
	}
}
