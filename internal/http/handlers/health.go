package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	version string
}

func NewHealthHandler(version string) *HealthHandler {
	if version == "" {
		version = "3.0"
	}
	return &HealthHandler{version: version}
}

type rootDescriptor struct {
	Application string   `json:"application"`
	Version     string   `json:"version"`
	Status      string   `json:"status"`
	Features    []string `json:"features"`
}

// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, rootDescriptor{
		Application: "Intelligent Learning Roadmap Generator Pro",
		Version:     h.version,
		Status:      "active",
		Features:    []string{"Real projects", "Working resources", "Progress tracking", "Visual timeline"},
	})
}

// GET /healthcheck
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
