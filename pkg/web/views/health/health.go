package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scienceol/labprofile/pkg/middleware/db"
)

type Handle struct {
	ds *db.Datastore
}

func New(ds *db.Datastore) *Handle {
	return &Handle{ds: ds}
}

// Health is a simple health check (backward compatible).
func Health(g *gin.Context) {
	g.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Live is a lightweight liveness probe: the process is alive.
func Live(g *gin.Context) {
	g.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready is a readiness probe that pings the database.
func (h *Handle) Ready(g *gin.Context) {
	checks := gin.H{}
	healthy := true

	if h.ds == nil {
		checks["database"] = "not_initialized"
		healthy = false
	} else if err := h.ds.Ping(g.Request.Context()); err != nil {
		checks["database"] = "unhealthy"
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	status := http.StatusOK
	msg := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		msg = "not_ready"
	}

	g.JSON(status, gin.H{
		"status": msg,
		"checks": checks,
	})
}
