package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/config"
	"github.com/metinatakli/cinema-booking/internal/jsonutil"
	"github.com/metinatakli/cinema-booking/internal/vcs"
)

const pingTimeout = 2 * time.Second

// PingFunc checks one backing service, such as a database pool or a Redis
// client.
type PingFunc func(ctx context.Context) error

type HealthcheckHandler struct {
	cfg          config.Config
	dependencies map[string]PingFunc
}

func NewHealthcheckHandler(cfg config.Config, dependencies map[string]PingFunc) *HealthcheckHandler {
	return &HealthcheckHandler{
		cfg:          cfg,
		dependencies: dependencies,
	}
}

// GetHealth reports UP only when every dependency answers its ping.
func (h *HealthcheckHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	httpStatus := http.StatusOK

	var deps map[string]string
	if len(h.dependencies) > 0 {
		deps = make(map[string]string, len(h.dependencies))

		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		for name, ping := range h.dependencies {
			if err := ping(ctx); err != nil {
				deps[name] = "DOWN"
				status = "DOWN"
				httpStatus = http.StatusServiceUnavailable
				continue
			}
			deps[name] = "UP"
		}
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     vcs.Version(),
			Environment: h.cfg.Env,
		},
		Dependencies: deps,
	}

	jsonutil.WriteJSON(w, httpStatus, resp, nil)
}
