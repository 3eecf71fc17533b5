package ws

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/hallchat/hallchat-server/internal/config"
	"github.com/hallchat/hallchat-server/internal/core"
)

// NewServer builds the HTTP server carrying the chat websocket endpoint.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", healthHandler)
	mux.Handle("/ws", NewHandler(hub, logger))

	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	_, _ = fmt.Fprint(w, "ok")
}
