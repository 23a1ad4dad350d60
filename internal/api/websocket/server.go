package websocket

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/fortuna/gridiron/internal/publisher"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development (TODO: restrict in production)
	},
}

// Server pushes saved-game events to websocket subscribers. Events
// arrive on the Redis stream the ingestion pipeline publishes to.
type Server struct {
	port   string
	server *http.Server
	hub    *Hub
	redis  *redis.Client
}

// NewServer creates a new WebSocket server. The Redis client may be
// nil; the server then only relays direct Broadcast calls.
func NewServer(redisClient *redis.Client) *Server {
	return &Server{
		hub:   NewHub(),
		redis: redisClient,
	}
}

// Start starts the WebSocket server and the stream relay
func (s *Server) Start(ctx context.Context, port string) error {
	s.port = port

	go s.hub.Run()
	if s.redis != nil {
		go s.relayGameEvents(ctx)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/games", s.handleGames)
	mux.HandleFunc("/ws/health", s.handleHealth)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: mux,
	}

	log.Printf("[websocket] listening on :%s", port)
	return s.server.ListenAndServe()
}

// relayGameEvents tails the saved-game stream and broadcasts each
// event payload to connected clients.
func (s *Server) relayGameEvents(ctx context.Context) {
	lastID := "$"

	for {
		if err := ctx.Err(); err != nil {
			return
		}

		streams, err := s.redis.XRead(ctx, &redis.XReadArgs{
			Streams: []string{publisher.GameSavedStream, lastID},
			Count:   16,
			Block:   5 * time.Second,
		}).Result()
		if err != nil {
			if err == redis.Nil || ctx.Err() != nil {
				continue
			}
			log.Printf("[websocket] stream read error: %v", err)
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				lastID = msg.ID
				if data, ok := msg.Values["data"].(string); ok {
					s.hub.Broadcast([]byte(data))
				}
			}
		}
	}
}

// handleGames upgrades the connection and registers it for saved-game
// events.
func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[websocket] upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// handleHealth returns WebSocket server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status": "healthy", "clients": %d}`, s.hub.ClientCount())
}

// Broadcast sends a message to all connected clients
func (s *Server) Broadcast(data []byte) {
	s.hub.Broadcast(data)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
