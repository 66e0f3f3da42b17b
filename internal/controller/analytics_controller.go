package controller

import (
	"mathquiz_backend/internal/service"
	"mathquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// MyAnalytics godoc
// @Summary Performance analytics of the current student
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.StudentAnalytics}
// @Router /api/analytics/me [get]
func (c *AnalyticsController) MyAnalytics(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	a, err := c.AnalyticsService.Aggregate(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// Leaderboard godoc
// @Summary Students ranked by accuracy, then average time
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.LeaderboardEntry}
// @Router /api/leaderboard [get]
func (c *AnalyticsController) Leaderboard(ctx *gin.Context) {
	entries, err := c.AnalyticsService.GetLeaderboard(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// Students godoc
// @Summary All students with their attempt totals
// @Tags Teacher
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.StudentSummary}
// @Router /api/teacher/students [get]
func (c *AnalyticsController) Students(ctx *gin.Context) {
	list, err := c.AnalyticsService.StudentSummaries(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// StudentAnalytics godoc
// @Summary Performance analytics of one student
// @Tags Teacher
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} util.Response{data=model.StudentAnalytics}
// @Failure 404 {object} util.Response "Student not found"
// @Router /api/teacher/students/{id}/analytics [get]
func (c *AnalyticsController) StudentAnalytics(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	a, err := c.AnalyticsService.ForStudent(ctx.Request.Context(), id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// ClassOverview godoc
// @Summary Class-wide accuracy by chapter and by student
// @Tags Teacher
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.ClassOverview}
// @Router /api/teacher/class/overview [get]
func (c *AnalyticsController) ClassOverview(ctx *gin.Context) {
	ov, err := c.AnalyticsService.ClassOverview(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, ov)
}
