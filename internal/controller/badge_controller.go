package controller

import (
	"mathquiz_backend/internal/service"
	"mathquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BadgeController struct {
	BadgeService *service.BadgeService
}

func NewBadgeController(badgeService *service.BadgeService) *BadgeController {
	return &BadgeController{BadgeService: badgeService}
}

type AwardBadgeRequest struct {
	StudentID   uint   `json:"studentId" binding:"required"`
	BadgeName   string `json:"badgeName" binding:"required"`
	Description string `json:"description"`
}

// MyBadges godoc
// @Summary Badges earned by the current student
// @Tags Badges
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Badge}
// @Router /api/badges [get]
func (c *BadgeController) MyBadges(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	list, err := c.BadgeService.List(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Award godoc
// @Summary Award a badge to a student
// @Description Awarding a badge the student already holds changes nothing.
// @Tags Teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AwardBadgeRequest true "Badge"
// @Success 200 {object} util.Response{data=object}
// @Router /api/teacher/badges [post]
func (c *BadgeController) Award(ctx *gin.Context) {
	var req AwardBadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	created, err := c.BadgeService.Award(ctx.Request.Context(), req.StudentID, req.BadgeName, req.Description)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"awarded": created})
}
