package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ayush-Kumar0207/algovista/internal/adapters/handler/http/middleware"
	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
	"github.com/Ayush-Kumar0207/algovista/internal/core/services"
)

type TrackerHandler struct {
	svc *services.ActivityService
}

func NewTrackerHandler(svc *services.ActivityService) *TrackerHandler {
	return &TrackerHandler{
		svc: svc,
	}
}

type recordSolveRequest struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

func (h *TrackerHandler) RegisterRoutes(router *gin.RouterGroup) {
	tracker := router.Group("/tracker")
	{
		tracker.GET("", h.Tracker)
		tracker.GET("/heatmap", h.Heatmap)
		tracker.POST("/solve", h.RecordSolve)
	}
}

// Tracker godoc
// @Summary      Daily activity plus streak counters
// @Tags         tracker
// @Produce      json
// @Success      200  {object}  services.TrackerSnapshot
// @Security     BearerAuth
// @Router       /tracker [get]
func (h *TrackerHandler) Tracker(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	snapshot, err := h.svc.Tracker(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// Heatmap godoc
// @Summary      Activity entries within a date range
// @Tags         tracker
// @Produce      json
// @Param        from  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        to    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {array}  domain.DailyActivity
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /tracker/heatmap [get]
func (h *TrackerHandler) Heatmap(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -365)
	to := now

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(domain.DateLayout, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, use YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse(domain.DateLayout, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, use YYYY-MM-DD"})
			return
		}
		to = parsed
	}

	entries, err := h.svc.Heatmap(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if entries == nil {
		entries = []*domain.DailyActivity{}
	}

	c.JSON(http.StatusOK, entries)
}

// RecordSolve godoc
// @Summary      Record solved problems for a day
// @Tags         tracker
// @Accept       json
// @Produce      json
// @Param        body  body  recordSolveRequest  false  "Solve payload; date defaults to today, count to 1"
// @Success      200  {object}  domain.DailyActivity
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /tracker/solve [post]
func (h *TrackerHandler) RecordSolve(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req recordSolveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	input := services.RecordSolveInput{
		UserID: userID,
		Date:   req.Date,
		Count:  req.Count,
	}

	entry, err := h.svc.RecordSolve(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidActivityDate),
			errors.Is(err, domain.ErrNegativeSolvedCount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}
