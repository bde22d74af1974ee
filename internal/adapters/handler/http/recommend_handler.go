package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ayush-Kumar0207/algovista/internal/adapters/handler/http/middleware"
	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
	"github.com/Ayush-Kumar0207/algovista/internal/core/services"
)

type RecommendHandler struct {
	svc *services.RecommendService
}

func NewRecommendHandler(svc *services.RecommendService) *RecommendHandler {
	return &RecommendHandler{
		svc: svc,
	}
}

type promptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (h *RecommendHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recommend", h.Recommend)

	coach := router.Group("/coach")
	{
		coach.GET("", h.CoachPlan)
		coach.POST("/recommend", h.RecommendFromPrompt)
	}
}

// Recommend godoc
// @Summary      Rule-based problem recommendations
// @Tags         recommend
// @Produce      json
// @Success      200  {array}  domain.Problem
// @Security     BearerAuth
// @Router       /recommend [get]
func (h *RecommendHandler) Recommend(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	picks, err := h.svc.Recommend(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if picks == nil {
		picks = []*domain.Problem{}
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": picks})
}

// RecommendFromPrompt godoc
// @Summary      Map a free-text prompt to problem references
// @Tags         recommend
// @Accept       json
// @Produce      json
// @Param        body  body  promptRequest  true  "Prompt payload"
// @Success      200  {object}  map[string][]string
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /coach/recommend [post]
func (h *RecommendHandler) RecommendFromPrompt(c *gin.Context) {
	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	refs := h.svc.RecommendFromPrompt(req.Prompt)

	c.JSON(http.StatusOK, gin.H{"recommendations": refs})
}

// CoachPlan godoc
// @Summary      Personalized study plan
// @Tags         recommend
// @Produce      json
// @Success      200  {object}  services.CoachPlan
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /coach [get]
func (h *RecommendHandler) CoachPlan(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	plan, err := h.svc.CoachPlan(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, plan)
}
