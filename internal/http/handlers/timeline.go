package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/roadmap-backend/internal/http/response"
	"github.com/yungbote/roadmap-backend/internal/services"
)

type TimelineHandler struct {
	roadmaps services.RoadmapService
	renderer services.TimelineRenderer
}

func NewTimelineHandler(roadmaps services.RoadmapService, renderer services.TimelineRenderer) *TimelineHandler {
	return &TimelineHandler{roadmaps: roadmaps, renderer: renderer}
}

// GET /visual-timeline/:roadmap_id
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	tl, err := h.roadmaps.Timeline(c.Request.Context(), c.Param("roadmap_id"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, tl)
}

// GET /visual-timeline/:roadmap_id/image
func (h *TimelineHandler) GetTimelineImage(c *gin.Context) {
	ctx := c.Request.Context()
	view, err := h.roadmaps.Get(ctx, c.Param("roadmap_id"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	tl, err := h.roadmaps.Timeline(ctx, view.Roadmap.RoadmapID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	png, err := h.renderer.RenderPNG(ctx, view.Roadmap.Title, *tl)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "render_failed", err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}
