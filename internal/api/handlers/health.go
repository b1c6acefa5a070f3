package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

const checkTimeout = 3 * time.Second

// HealthHandler serves the liveness, readiness and status checks
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler creates a new health handler; cache may be nil when the cooldown store is disabled
func NewHealthHandler(db *gorm.DB, cache *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: cache}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// checkDeps pings postgres and, when configured, redis. Only postgres decides the outcome.
func (h *HealthHandler) checkDeps(ctx context.Context, up, downPrefix string) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	status := func(err error) string {
		if err != nil {
			return downPrefix + err.Error()
		}
		return up
	}

	dbErr := h.pingDB(ctx)
	services := map[string]string{"database": status(dbErr)}
	if h.redis != nil {
		services["redis"] = status(h.redis.Ping(ctx).Err())
	}
	return services, dbErr == nil
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Health reports backing store status and the build version
// @Summary Health check
// @Description Database and redis status with the running version
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Database reachable"
// @Failure 503 {object} HealthResponse "Database unreachable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services, ok := h.checkDeps(c.Request.Context(), "healthy", "error: ")
	resp := HealthResponse{Status: "healthy", Timestamp: time.Now(), Version: Version, Services: services}
	code := http.StatusOK
	if !ok {
		resp.Status, code = "unhealthy", http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}

// Ready tells the load balancer whether to route traffic here
// @Summary Readiness check
// @Description 200 once postgres answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Ready"
// @Failure 503 {object} map[string]interface{} "Not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services, ok := h.checkDeps(c.Request.Context(), "ready", "not ready: ")
	code := http.StatusOK
	if !ok {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"ready": ok, "timestamp": time.Now(), "services": services})
}

// Live
// @Summary Liveness check
// @Description Always 200 while the process serves HTTP
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": time.Now()})
}
