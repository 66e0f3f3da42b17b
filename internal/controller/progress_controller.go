package controller

import (
	"mathquiz_backend/internal/service"
	"mathquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
	QuizService     *service.QuizService
}

func NewProgressController(progress *service.ProgressService, quiz *service.QuizService) *ProgressController {
	return &ProgressController{ProgressService: progress, QuizService: quiz}
}

// GetProgress godoc
// @Summary Saved quiz progress
// @Description data is null when nothing is saved. Correct answers appear only for questions graded in a session.
// @Tags Progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.ProgressView}
// @Router /api/quiz/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	p, err := c.ProgressService.Load(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// SaveProgress godoc
// @Summary Save quiz progress
// @Description Question ids must exist in the dataset; one snapshot is kept per user.
// @Tags Progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SaveProgressRequest true "Snapshot"
// @Success 200 {object} util.Response{data=model.ProgressView}
// @Router /api/quiz/progress [put]
func (c *ProgressController) SaveProgress(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req service.SaveProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	p, err := c.ProgressService.Save(ctx.Request.Context(), claims.UserID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// ClearProgress godoc
// @Summary Delete saved quiz progress
// @Tags Progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/quiz/progress [delete]
func (c *ProgressController) ClearProgress(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.ProgressService.Clear(ctx.Request.Context(), claims.UserID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Resume godoc
// @Summary Resume a saved quiz as a new live session
// @Tags Progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "Nothing saved"
// @Router /api/quiz/progress/resume [post]
func (c *ProgressController) Resume(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	view, current, err := c.QuizService.Resume(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"session": view, "currentQuestion": current})
}
