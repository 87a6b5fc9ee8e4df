package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
	"github.com/yungbote/roadmap-backend/internal/http/response"
	"github.com/yungbote/roadmap-backend/internal/services"
)

type RoadmapHandler struct {
	roadmaps services.RoadmapService
}

func NewRoadmapHandler(roadmaps services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmaps: roadmaps}
}

// POST /generate-roadmap
func (h *RoadmapHandler) GenerateRoadmap(c *gin.Context) {
	var req types.LearningGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_request", err)
		return
	}
	plan, err := h.roadmaps.Generate(c.Request.Context(), req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, plan)
}

// GET /roadmap/:roadmap_id
func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	view, err := h.roadmaps.Get(c.Request.Context(), c.Param("roadmap_id"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, view)
}

// GET /roadmaps
func (h *RoadmapHandler) ListRoadmaps(c *gin.Context) {
	list, err := h.roadmaps.List(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"roadmaps": list, "count": len(list)})
}

// GET /catalog/:topic
func (h *RoadmapHandler) GetCatalog(c *gin.Context) {
	topic := types.Topic(strings.ToLower(strings.TrimSpace(c.Param("topic"))))
	view, err := h.roadmaps.Catalog(topic)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, view)
}
