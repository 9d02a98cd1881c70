package stream

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"hangar-service/internal/generator/models"
	"hangar-service/internal/generator/schema"
	"hangar-service/internal/generator/service"

	"github.com/gorilla/websocket"
)

// ============================================================
// Live preview stream
// ============================================================

const (
	readTimeout  = 5 * time.Minute
	writeTimeout = 5 * time.Second

	// конфигурация занимает единицы килобайт
	maxMessageSize = 1 << 20
)

// Server: websocket для живого превью: каждое сообщение клиента это конфигурация,
// в ответ уходит полностью пересчитанная сцена.
type Server struct {
	cache    *service.SceneCache
	upgrader websocket.Upgrader
}

type errorReply struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func NewServer(cache *service.SceneCache) *Server {
	return &Server{
		cache: cache,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			log.Printf("[STREAM] upgrade error: %v", err)
			return
		}
		defer conn.Close()
		conn.SetReadLimit(maxMessageSize)

		log.Printf("[STREAM] client connected: %s", r.RemoteAddr)
		for {
			_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}
			if err := writeJSON(conn, s.reply(msg)); err != nil {
				log.Printf("[STREAM] write error: %v", err)
				break
			}
		}
		log.Printf("[STREAM] client disconnected: %s", r.RemoteAddr)
	}
}

func (s *Server) reply(msg []byte) (out any) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[STREAM] generate panic: %v", r)
			out = errorReply{Error: "internal error", Code: http.StatusInternalServerError}
		}
	}()

	cfg, err := schema.Decode(msg, schema.FormatJSON)
	if err != nil {
		return toErrorReply(err)
	}
	scene, _, err := s.cache.Generate(cfg)
	if err != nil {
		return toErrorReply(err)
	}
	return scene
}

func toErrorReply(err error) errorReply {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrInvalidConfig):
		code = http.StatusBadRequest
	case errors.Is(err, models.ErrUnsupportedRoofType):
		code = http.StatusUnprocessableEntity
	}
	return errorReply{Error: err.Error(), Code: code}
}

// ListenAndServe поднимает отдельный http-листенер под /ws и гасит его по ctx.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[STREAM] listening on %s/ws", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, b)
}
