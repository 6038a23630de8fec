package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/dto"
	"github.com/SscSPs/money_planner/internal/middleware"
	"github.com/gin-gonic/gin"
)

type tagHandler struct {
	tagService portssvc.TagSvcFacade
}

// RegisterTagRoutes registers routes related to tags.
func RegisterTagRoutes(rg *gin.RouterGroup, tagService portssvc.TagSvcFacade) {
	h := &tagHandler{tagService: tagService}

	tags := rg.Group("/tags")
	{
		tags.POST("", h.createTag)
		tags.GET("", h.listTags)
		tags.GET("/:id", h.getTag)
		tags.DELETE("/:id", h.deleteTag)
	}
}

// createTag godoc
// @Summary Create a tag
// @Tags tags
// @Accept  json
// @Produce  json
// @Param   tag body dto.CreateTagRequest true "Tag details"
// @Success 201 {object} dto.TagResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Tag name already used"
// @Security BearerAuth
// @Router /tags [post]
func (h *tagHandler) createTag(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTag", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create tag")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTagResponse(tag))
}

// listTags godoc
// @Summary List tags
// @Tags tags
// @Produce  json
// @Success 200 {object} dto.ListTagsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /tags [get]
func (h *tagHandler) listTags(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	tags, err := h.tagService.ListTags(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list tags")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTagsResponse(tags))
}

// getTag godoc
// @Summary Get a tag
// @Tags tags
// @Produce  json
// @Param   id path string true "Tag ID"
// @Success 200 {object} dto.TagResponse
// @Failure 404 {object} map[string]string "Tag not found"
// @Security BearerAuth
// @Router /tags/{id} [get]
func (h *tagHandler) getTag(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	tag, err := h.tagService.GetTagByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve tag")
		return
	}
	c.JSON(http.StatusOK, dto.ToTagResponse(tag))
}

// deleteTag godoc
// @Summary Delete a tag
// @Tags tags
// @Param   id path string true "Tag ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Tag not found"
// @Security BearerAuth
// @Router /tags/{id} [delete]
func (h *tagHandler) deleteTag(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	if err := h.tagService.DeleteTag(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, logger, err, "Failed to delete tag")
		return
	}
	c.Status(http.StatusNoContent)
}
