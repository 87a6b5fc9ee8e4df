package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/roadmap-backend/internal/http/response"
	"github.com/yungbote/roadmap-backend/internal/services"
)

type ProgressHandler struct {
	progress services.ProgressService
}

func NewProgressHandler(progress services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

type updateProgressRequest struct {
	RoadmapID     string  `json:"roadmap_id" binding:"required"`
	WeekCompleted *int    `json:"week_completed" binding:"required"`
	ProjectDone   *bool   `json:"project_done" binding:"required"`
	Notes         *string `json:"notes"`
}

// POST /update-progress
func (h *ProgressHandler) UpdateProgress(c *gin.Context) {
	var req updateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusUnprocessableEntity, "invalid_request", err)
		return
	}
	in := services.ProgressInput{
		RoadmapID:   req.RoadmapID,
		Week:        *req.WeekCompleted,
		ProjectDone: *req.ProjectDone,
	}
	if req.Notes != nil {
		in.Notes = *req.Notes
	}
	res, err := h.progress.Update(c.Request.Context(), in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, res)
}
