// AngelaMos | 2026
// handler.go

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
)

const probeTimeout = 5 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type probe struct {
	name   string
	pinger Pinger
}

type Handler struct {
	probes   []probe
	ready    atomic.Bool
	shutdown atomic.Bool
}

func NewHandler() *Handler {
	h := &Handler{}
	h.ready.Store(true)
	return h
}

// AddProbe registers a dependency to include in readiness checks.
// Not safe to call after the server starts serving.
func (h *Handler) AddProbe(name string, pinger Pinger) {
	h.probes = append(h.probes, probe{name: name, pinger: pinger})
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Liveness)
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
}

func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, StatusResponse{
			Status: "shutting_down",
		})
		return
	}

	h.writeStatus(w, http.StatusOK, StatusResponse{
		Status: "ok",
	})
}

func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.shutdown.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, StatusResponse{
			Status: "shutting_down",
		})
		return
	}

	if !h.ready.Load() {
		h.writeStatus(w, http.StatusServiceUnavailable, StatusResponse{
			Status: "not_ready",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	checks := h.runProbes(ctx)

	status := "ok"
	statusCode := http.StatusOK
	for _, check := range checks {
		if !check.Healthy {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	h.writeStatus(w, statusCode, ReadinessResponse{
		Status: status,
		Checks: checks,
	})
}

func (h *Handler) runProbes(ctx context.Context) []Check {
	var wg sync.WaitGroup
	checks := make([]Check, len(h.probes))

	for i, p := range h.probes {
		wg.Add(1)
		go func(i int, p probe) {
			defer wg.Done()
			checks[i] = runProbe(ctx, p)
		}(i, p)
	}

	wg.Wait()
	return checks
}

func runProbe(ctx context.Context, p probe) Check {
	check := Check{
		Name:    p.name,
		Healthy: true,
	}

	if p.pinger == nil {
		check.Healthy = false
		check.Message = "probe not configured"
		return check
	}

	start := time.Now()
	err := p.pinger.Ping(ctx)
	check.Latency = time.Since(start).String()

	if err != nil {
		check.Healthy = false
		check.Message = "ping failed"
	}

	return check
}

func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

func (h *Handler) SetShutdown(shutdown bool) {
	h.shutdown.Store(shutdown)
}

func (h *Handler) writeStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response
	_ = json.NewEncoder(w).Encode(data)
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ReadinessResponse struct {
	Status string  `json:"status"`
	Checks []Check `json:"checks"`
}

type Check struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}
