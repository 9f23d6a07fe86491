package handlers

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// ModelStatus is implemented by the intent model client.
type ModelStatus interface {
	Model() string
	BreakerState() string
}

// BrokerStatus is implemented by the message broker connection.
type BrokerStatus interface {
	IsClosed() bool
}

type HealthHandler struct {
	Model     ModelStatus
	Broker    BrokerStatus
	Version   string
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewHealthHandler builds the handler. model and broker may be nil.
func NewHealthHandler(model ModelStatus, broker BrokerStatus, version string) *HealthHandler {
	return &HealthHandler{
		Model:     model,
		Broker:    broker,
		Version:   version,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)
	status := "healthy"

	// An open breaker only degrades scoring quality, the heuristic still answers.
	if h.Model != nil {
		switch h.Model.BreakerState() {
		case gobreaker.StateOpen.String():
			deps["intent_model"] = "degraded: circuit open, using heuristic (" + h.Model.Model() + ")"
			status = "degraded"
		default:
			deps["intent_model"] = "configured (" + h.Model.Model() + ")"
		}
	} else {
		deps["intent_model"] = "not configured, heuristic only"
	}

	if h.Broker != nil {
		if h.Broker.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
			status = "degraded"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:       status,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}
