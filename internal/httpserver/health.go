package httpserver

import (
	"github.com/gin-gonic/gin"

	"telegram-bot-framework/pkg/response"
)

const (
	ServiceName    = "telegram-bot-framework"
	ServiceVersion = "1.0.0"
)

type healthResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Mode    string `json:"mode"`
}

func (srv *HTTPServer) health(status string) healthResp {
	mode := "polling"
	if srv.updatesUC != nil {
		mode = "webhook"
	}
	return healthResp{Status: status, Service: ServiceName, Version: ServiceVersion, Mode: mode}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the bot server is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.health("healthy"))
}

// readyCheck reports ready once the server is serving.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.health("ready"))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.health("alive"))
}
