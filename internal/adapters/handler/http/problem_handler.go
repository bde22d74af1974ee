package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ayush-Kumar0207/algovista/internal/adapters/handler/http/middleware"
	"github.com/Ayush-Kumar0207/algovista/internal/core/domain"
	"github.com/Ayush-Kumar0207/algovista/internal/core/services"
)

type ProblemHandler struct {
	svc *services.ProblemService
}

func NewProblemHandler(svc *services.ProblemService) *ProblemHandler {
	return &ProblemHandler{
		svc: svc,
	}
}

type createProblemRequest struct {
	Title      string `json:"title" binding:"required"`
	Link       string `json:"link"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Status     string `json:"status"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ProblemHandler) RegisterRoutes(router *gin.RouterGroup) {
	problems := router.Group("/problems")
	{
		problems.POST("", h.Create)
		problems.GET("", h.List)
		problems.PUT("/:id/status", h.UpdateStatus)
	}
}

// Create godoc
// @Summary      Add a problem to the user's practice list
// @Tags         problems
// @Accept       json
// @Produce      json
// @Param        body  body  createProblemRequest  true  "Problem payload"
// @Success      201  {object}  domain.Problem
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /problems [post]
func (h *ProblemHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req createProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.CreateProblemInput{
		UserID:     userID,
		Title:      req.Title,
		Link:       req.Link,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Status:     req.Status,
	}

	problem, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProblemTitleEmpty),
			errors.Is(err, domain.ErrProblemTitleTooLong),
			errors.Is(err, domain.ErrInvalidDifficulty),
			errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, problem)
}

// List godoc
// @Summary      List the user's problems
// @Tags         problems
// @Produce      json
// @Success      200  {array}  domain.Problem
// @Security     BearerAuth
// @Router       /problems [get]
func (h *ProblemHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	list, err := h.svc.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if list == nil {
		list = []*domain.Problem{}
	}

	c.JSON(http.StatusOK, list)
}

// UpdateStatus godoc
// @Summary      Change a problem's status
// @Tags         problems
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Problem ID"
// @Param        body  body  updateStatusRequest  true  "New status"
// @Success      200  {object}  domain.Problem
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /problems/{id}/status [put]
func (h *ProblemHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	id := c.Param("id")

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	problem, err := h.svc.ChangeStatus(c.Request.Context(), id, userID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProblemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "problem not found"})
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, problem)
}
