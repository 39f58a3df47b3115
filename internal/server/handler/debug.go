package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"fixify/internal/cache/result"
	"fixify/internal/engine"
)

// DebugRequest is the boundary input: both fields optional individually, the
// engine tolerates both empty by returning a minimal report.
type DebugRequest struct {
	Code string `json:"code"`
	Log  string `json:"log"`
}

// DebugHandler serves the single engine entry point over JSON.
type DebugHandler struct {
	engine *engine.Engine
	cache  *result.Cache
	logger *log.Logger
}

func NewDebugHandler(eng *engine.Engine, cache *result.Cache, logger *log.Logger) *DebugHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &DebugHandler{engine: eng, cache: cache, logger: logger}
}

// HandleDebug answers POST /api/debug.
func (h *DebugHandler) HandleDebug(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req DebugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	key := result.Key(req.Code, req.Log)
	res, hit := h.cache.Get(key)
	if !hit {
		res = h.engine.Diagnose(r.Context(), req.Code, req.Log)
		h.cache.Set(key, res)
	} else {
		h.logger.Printf("diagnosis cache hit")
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}
