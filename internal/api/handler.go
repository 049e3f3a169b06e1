package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gyaneshwarpardhi/sdlevents/internal/config"
	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/feature"
	"github.com/gyaneshwarpardhi/sdlevents/internal/input"
	"github.com/gyaneshwarpardhi/sdlevents/internal/metrics"
)

const maxBatchSize = 100

// Handler holds all HTTP handler dependencies.
type Handler struct {
	// mu serialises every call into the poller; the source is single-owner.
	mu     sync.Mutex
	poller *input.Poller
	level  feature.Level
	loader *config.Loader
	logger *slog.Logger
	mux    *http.ServeMux
}

// New creates an HTTP handler and registers all routes. loader may be nil, in
// which case reload requests are refused. When set, config changes replace
// the poller's ignore list.
func New(p *input.Poller, level feature.Level, loader *config.Loader, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{poller: p, level: level, loader: loader, logger: logger, mux: http.NewServeMux()}
	if loader != nil {
		loader.OnChange(h.applyConfig)
	}

	h.mux.HandleFunc("POST /v1/decode", h.decode)
	h.mux.HandleFunc("POST /v1/events", h.pushEvents)
	h.mux.HandleFunc("GET /v1/events", h.pollEvents)
	h.mux.HandleFunc("GET /v1/features", h.features)
	h.mux.HandleFunc("POST /v1/config/reload", h.reloadConfig)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.HandleFunc("GET /readyz", h.readyz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(logger, h.mux)
}

// rawRequest is one record on the wire.
type rawRequest struct {
	Raw  event.Raw `json:"raw"`
	Text string    `json:"text,omitempty"`
	// FeatureLevel overrides the server's level for /v1/decode only.
	FeatureLevel string `json:"feature_level,omitempty"`
}

func (rr rawRequest) record() event.Record {
	rec := event.Record{Raw: rr.Raw}
	if _, ok := event.OwnedSlot(rr.Raw.Type()); ok {
		rec.Owned = event.NewOwned(rr.Text, nil)
	}
	return rec
}

// eventResponse describes one decoded variant.
type eventResponse struct {
	Type     string      `json:"type"`
	Category string      `json:"category"`
	Variant  string      `json:"variant"`
	Ticks    uint32      `json:"ticks"`
	Summary  string      `json:"summary"`
	Event    event.Event `json:"event"`
}

func describe(e event.Event) eventResponse {
	return eventResponse{
		Type:     e.Type().String(),
		Category: event.CategoryOfEvent(e).String(),
		Variant:  strings.TrimPrefix(fmt.Sprintf("%T", e), "*event."),
		Ticks:    e.Ticks(),
		Summary:  e.String(),
		Event:    e,
	}
}

// POST /v1/decode: decode one record without touching the queue.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request) {
	var req rawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	dec := h.poller.Decoder()
	if req.FeatureLevel != "" {
		lvl, err := feature.ParseLevel(req.FeatureLevel)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		dec = event.NewDecoder(lvl.Set)
	}
	writeJSON(w, http.StatusOK, describe(dec.Decode(req.record())))
}

// POST /v1/events: push up to 100 raw records onto the source.
func (h *Handler) pushEvents(w http.ResponseWriter, r *http.Request) {
	var reqs []rawRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if len(reqs) == 0 {
		writeError(w, http.StatusBadRequest, "batch must contain at least one record")
		return
	}
	if len(reqs) > maxBatchSize {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("batch size %d exceeds max %d", len(reqs), maxBatchSize))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	queued := 0
	for _, req := range reqs {
		if err := h.poller.PushRecord(req.record()); err != nil {
			if errors.Is(err, input.ErrNotPushable) {
				writeError(w, http.StatusConflict, err.Error())
				return
			}
			continue
		}
		queued++
	}
	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"batch_id": uuid.New().String(),
		"total":    len(reqs),
		"queued":   queued,
		"rejected": len(reqs) - queued,
	})
}

// GET /v1/events?max=N: pump, then poll until empty or N events.
func (h *Handler) pollEvents(w http.ResponseWriter, r *http.Request) {
	limit := -1
	if s := r.URL.Query().Get("max"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "max must be a positive integer")
			return
		}
		limit = n
	}

	h.mu.Lock()
	h.poller.Pump()
	out := make([]eventResponse, 0)
	for limit < 0 || len(out) < limit {
		e, ok := h.poller.Poll()
		if !ok {
			break
		}
		out = append(out, describe(e))
	}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(out),
		"events": out,
	})
}

type capabilityResponse struct {
	Name       string `json:"name"`
	Introduced string `json:"introduced"`
	Enabled    bool   `json:"enabled"`
}

// GET /v1/features: the decoder's feature level and capability table.
func (h *Handler) features(w http.ResponseWriter, r *http.Request) {
	set := h.poller.Decoder().Features()
	caps := make([]capabilityResponse, 0, len(feature.All()))
	for _, c := range feature.All() {
		introduced := c.Introduced()
		caps = append(caps, capabilityResponse{
			Name:       c.String(),
			Introduced: introduced.String(),
			Enabled:    set.Has(c),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"level":        h.level.String(),
		"capabilities": caps,
		"ignored":      typeNames(h.poller.Ignored()),
	})
}

// POST /v1/config/reload: re-read the config file and apply what can change.
func (h *Handler) reloadConfig(w http.ResponseWriter, r *http.Request) {
	if h.loader == nil {
		writeError(w, http.StatusConflict, "server was started without a config file")
		return
	}
	cfg, err := h.loader.Reload()
	if err != nil {
		writeErr(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded": true,
		"ignored":  cfg.Ignore,
	})
}

// applyConfig runs on every successful reload. Only the ignore list is
// applied; the decoder is fixed for the life of the process.
func (h *Handler) applyConfig(cfg *config.Config) {
	types, err := cfg.IgnoredTypes()
	if err != nil {
		h.logger.Warn("hot-reload skipped: ignore list invalid", "err", err)
		return
	}
	h.poller.SetIgnored(types...)
	if lvl, err := cfg.Level(h.level); err == nil && lvl.Set != h.poller.Decoder().Features() {
		h.logger.Warn("feature level change ignored until restart", "running", h.level.String(), "configured", lvl.String())
	}
	h.logger.Info("config hot-reloaded", "ignored", len(types))
}

// GET /healthz: always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz: 503 if the queue is more than 80% full.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	util := h.poller.QueueUtilization()
	metrics.QueueUtilization.Set(util)
	if util > 0.8 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":            "overloaded",
			"queue_utilization": util,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ready",
		"queue_utilization": util,
	})
}

func typeNames(types []event.Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}
	return out
}
