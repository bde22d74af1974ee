package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ayush-Kumar0207/algovista/internal/adapters/handler/http/middleware"
	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
	"github.com/Ayush-Kumar0207/algovista/internal/core/services"
)

type SyncHandler struct {
	svc *services.SyncService
}

func NewSyncHandler(svc *services.SyncService) *SyncHandler {
	return &SyncHandler{
		svc: svc,
	}
}

type updateHandlesRequest struct {
	LeetCode   string `json:"leetcode"`
	Codeforces string `json:"codeforces"`
}

type handlesResponse struct {
	LeetCode   string `json:"leetcode"`
	Codeforces string `json:"codeforces"`
}

func (h *SyncHandler) RegisterRoutes(router *gin.RouterGroup) {
	me := router.Group("/me")
	{
		me.GET("/handles", h.GetHandles)
		me.PUT("/handles", h.UpdateHandles)
		me.PUT("/sync", h.Sync)
		me.GET("/stats", h.LiveStats)
	}
}

// GetHandles godoc
// @Summary      Configured platform handles
// @Tags         sync
// @Produce      json
// @Success      200  {object}  handlesResponse
// @Security     BearerAuth
// @Router       /me/handles [get]
func (h *SyncHandler) GetHandles(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	user, err := h.svc.Handles(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, handlesResponse{
		LeetCode:   user.LeetCodeHandle,
		Codeforces: user.CodeforcesHandle,
	})
}

// UpdateHandles godoc
// @Summary      Set LeetCode and Codeforces handles
// @Tags         sync
// @Accept       json
// @Produce      json
// @Param        body  body  updateHandlesRequest  true  "Handles payload"
// @Success      200  {object}  handlesResponse
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /me/handles [put]
func (h *SyncHandler) UpdateHandles(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req updateHandlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.UpdateHandles(c.Request.Context(), userID, req.LeetCode, req.Codeforces)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, handlesResponse{
		LeetCode:   user.LeetCodeHandle,
		Codeforces: user.CodeforcesHandle,
	})
}

// Sync godoc
// @Summary      Fetch platform stats and persist a snapshot
// @Tags         sync
// @Produce      json
// @Success      200  {object}  domain.PlatformHandles
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Security     BearerAuth
// @Router       /me/sync [put]
func (h *SyncHandler) Sync(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	handles, err := h.svc.SyncAll(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, domain.ErrHandleNotFound):
			c.JSON(http.StatusBadGateway, gin.H{"error": "platform handle not found"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "platform sync failed"})
		}
		return
	}

	c.JSON(http.StatusOK, handles)
}

// LiveStats godoc
// @Summary      Live platform stats without persisting
// @Tags         sync
// @Produce      json
// @Success      200  {object}  domain.PlatformHandles
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Security     BearerAuth
// @Router       /me/stats [get]
func (h *SyncHandler) LiveStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	handles, err := h.svc.LiveStats(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, domain.ErrHandleNotFound):
			c.JSON(http.StatusBadGateway, gin.H{"error": "platform handle not found"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "platform fetch failed"})
		}
		return
	}

	c.JSON(http.StatusOK, handles)
}
