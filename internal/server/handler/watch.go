package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"fixify/internal/engine"
)

const (
	watchWSWriteWait = 10 * time.Second
	watchWSReadWait  = 60 * time.Second
)

var watchWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type watchWSOutbound struct {
	Type   string `json:"type"`
	Stage  string `json:"stage,omitempty"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// HandleWatch answers GET /api/debug/watch. The client sends one request
// frame; the server streams a frame per pipeline stage and finishes with the
// result frame. Disconnecting cancels the in-flight diagnosis.
func (h *DebugHandler) HandleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := watchWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(watchWSReadWait))
	var req DebugRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = writeWatchFrame(conn, watchWSOutbound{Type: "error", Error: "invalid request frame"})
		return
	}

	writeCh := make(chan watchWSOutbound, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for out := range writeCh {
			if err := writeWatchFrame(conn, out); err != nil {
				return
			}
		}
	}()

	ctx := engine.WithStageHook(r.Context(), func(stage engine.Stage) {
		select {
		case writeCh <- watchWSOutbound{Type: "stage", Stage: string(stage)}:
		default:
			// Slow consumer; stage frames are advisory and may be dropped.
		}
	})

	res := h.engine.Diagnose(ctx, req.Code, req.Log)
	writeCh <- watchWSOutbound{Type: "result", Result: res}
	close(writeCh)
	<-done
}

func writeWatchFrame(conn *websocket.Conn, out watchWSOutbound) error {
	if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
		return err
	}
	return conn.WriteJSON(out)
}
