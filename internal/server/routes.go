package server

import (
	"net/http"

	"fixify/internal/server/handler"
	"fixify/internal/server/middleware"
)

func NewMux(debugHandler *handler.DebugHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/debug", debugHandler.HandleDebug)
	mux.HandleFunc("/api/debug/watch", debugHandler.HandleWatch)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return middleware.CORS(mux)
}
