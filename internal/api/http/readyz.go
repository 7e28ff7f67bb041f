package http

import (
	"net/http"
	"time"

	"github.com/wad01/wad/internal/api/assets"
	"github.com/wad01/wad/internal/api/store"
	"github.com/wad01/wad/pkg/httpx"
	"github.com/wad01/wad/pkg/slogx"
	"github.com/wad01/wad/pkg/wadsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the document store and the asset store
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	wadsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	wadsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	files assets.Store,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := slogx.FromContext(r.Context())
		checks := &wadsdk.HealthChecks{
			Database: "ok",
			Assets:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			log.Warn("readiness: database ping failed", "err", err)
			checks.Database = "error"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := files.Ping(r.Context()); err != nil {
			log.Warn("readiness: asset store ping failed", "err", err)
			checks.Assets = "error"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, wadsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
