package sync

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"tide/infras/otel"
	"tide/internal/state/gateway"
	"tide/internal/state/hub"
	"tide/shared/constant"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from the dashboard origin, which is not
	// pinned here. CORS policy is enforced at the HTTP layer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades clients to websocket and streams state frames. Each
// client gets the current snapshot on connect, then every broadcast
// frame until it disconnects.
type Handler struct {
	gateway gateway.Gateway
	hub     *hub.Hub
	otel    otel.Otel
}

func New(gateway gateway.Gateway, hub *hub.Hub, otel otel.Otel) Handler {
	return Handler{
		gateway: gateway,
		hub:     hub,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/ws", handler.Serve)
}

// Serve upgrades the connection and pumps state frames to the client.
func (handler *Handler) Serve(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Serve")
	defer scope.End()

	conn, err := upgrader.Upgrade(writer, request, nil)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upgrade websocket connection")

		return
	}

	subscriber := handler.hub.Subscribe()

	log.Info().
		Str("subscriber", subscriber.ID).
		Int("connected", handler.hub.Len()).
		Msg("websocket client connected")

	defer func() {
		handler.hub.Unsubscribe(subscriber.ID)
		conn.Close()

		log.Info().
			Str("subscriber", subscriber.ID).
			Int("connected", handler.hub.Len()).
			Msg("websocket client disconnected")
	}()

	frame, err := handler.gateway.SnapshotFrame(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build initial snapshot frame")

		return
	}

	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		log.Warn().Err(err).Str("subscriber", subscriber.ID).Msg("failed to send initial snapshot frame")

		return
	}

	// Reader goroutine detects client disconnects. Inbound payloads are
	// discarded, mutations only enter through the REST surface.
	done := make(chan struct{})

	go func() {
		defer close(done)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case payload, ok := <-subscriber.C:
			if !ok {
				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Warn().Err(err).Str("subscriber", subscriber.ID).Msg("failed to push state frame")

				return
			}
		case <-done:
			return
		}
	}
}
