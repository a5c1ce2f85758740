package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles system-level API endpoints
type SystemHandler struct {
	BaseHandler
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{startTime: time.Now()}
}

// PingResponse is the body of a ping reply
type PingResponse struct {
	Message string `json:"message"`
}

// SystemInfoResponse describes the running service
type SystemInfoResponse struct {
	GoVersion string `json:"go_version"`
	NumCPU    int    `json:"num_cpu"`
	Uptime    string `json:"uptime"`
}

// Ping handles GET /system/ping
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{Message: "pong"})
}

// GetSystemInfo handles GET /system/info
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
		Uptime:    time.Since(h.startTime).String(),
	})
}
