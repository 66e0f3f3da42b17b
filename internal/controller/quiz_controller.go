package controller

import (
	"errors"
	"io"
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/service"
	"mathquiz_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService     *service.QuizService
	ProgressService *service.ProgressService
	ExplainService  *service.ExplainService
	QuestionBank    *service.QuestionBank
}

func NewQuizController(quiz *service.QuizService, progress *service.ProgressService, explain *service.ExplainService, bank *service.QuestionBank) *QuizController {
	return &QuizController{
		QuizService:     quiz,
		ProgressService: progress,
		ExplainService:  explain,
		QuestionBank:    bank,
	}
}

type AnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

type FinishRequest struct {
	Answers map[int]string `json:"answers"`
}

type SessionProgressRequest struct {
	CurrentQuestion int `json:"currentQuestion"`
}

// Chapters godoc
// @Summary Chapters available for a class
// @Description Falls back to a fixed list when the dataset cannot be read.
// @Tags Quiz
// @Produce json
// @Param class query int true "Class level (8, 9 or 10)"
// @Success 200 {object} util.Response{data=object}
// @Router /api/questions/chapters [get]
func (c *QuizController) Chapters(ctx *gin.Context) {
	class, err := strconv.Atoi(ctx.Query("class"))
	if err != nil || !model.IsValidClassLevel(class) {
		util.BadRequest(ctx, "class must be 8, 9 or 10")
		return
	}
	chapters, fallback := c.QuestionBank.Chapters(class)
	util.Success(ctx, gin.H{"chapters": chapters, "fallback": fallback})
}

// CreateSession godoc
// @Summary Start a new quiz
// @Tags Quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateSessionRequest true "Quiz filter"
// @Success 201 {object} util.Response{data=model.QuizSessionView}
// @Failure 404 {object} util.Response "No MCQs for this filter"
// @Router /api/quiz/sessions [post]
func (c *QuizController) CreateSession(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req service.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	view, err := c.QuizService.CreateSession(ctx.Request.Context(), claims.UserID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, view)
}

// GetSession godoc
// @Summary Current state of a quiz session
// @Tags Quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} util.Response{data=model.QuizSessionView}
// @Router /api/quiz/sessions/{id} [get]
func (c *QuizController) GetSession(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	view, err := c.QuizService.Get(ctx.Request.Context(), claims.UserID, ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// StartQuestion godoc
// @Summary Reveal a question and start its timer
// @Description Starting an already started question leaves its timer unchanged.
// @Tags Quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param index path int true "Question index"
// @Success 200 {object} util.Response{data=model.QuestionView}
// @Router /api/quiz/sessions/{id}/questions/{index}/start [post]
func (c *QuizController) StartQuestion(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	index, ok := intParam(ctx, "index")
	if !ok {
		return
	}
	view, err := c.QuizService.StartQuestion(ctx.Request.Context(), claims.UserID, ctx.Param("id"), index)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Answer godoc
// @Summary Submit an answer
// @Description The question must be started and not yet answered.
// @Tags Quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param index path int true "Question index"
// @Param body body AnswerRequest true "Selected option label"
// @Success 200 {object} util.Response{data=model.AnswerFeedback}
// @Failure 409 {object} util.Response "Not started or already answered"
// @Router /api/quiz/sessions/{id}/questions/{index}/answer [post]
func (c *QuizController) Answer(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	index, ok := intParam(ctx, "index")
	if !ok {
		return
	}
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	feedback, err := c.QuizService.Answer(ctx.Request.Context(), claims.UserID, ctx.Param("id"), index, req.Answer)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, feedback)
}

// Explain godoc
// @Summary Explain an answered question
// @Tags Quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param index path int true "Question index"
// @Success 200 {object} util.Response{data=object}
// @Failure 503 {object} util.Response "Explanations not configured"
// @Router /api/quiz/sessions/{id}/questions/{index}/explain [post]
func (c *QuizController) Explain(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	index, ok := intParam(ctx, "index")
	if !ok {
		return
	}
	q, selected, err := c.QuizService.AnsweredQuestion(ctx.Request.Context(), claims.UserID, ctx.Param("id"), index)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	text, err := c.ExplainService.Explain(ctx.Request.Context(), q, selected)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"explanation": text})
}

// SaveProgress godoc
// @Summary Snapshot a live session for later resume
// @Tags Quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param body body SessionProgressRequest true "Current question index"
// @Success 200 {object} util.Response{data=model.ProgressView}
// @Router /api/quiz/sessions/{id}/progress [post]
func (c *QuizController) SaveProgress(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req SessionProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	p, err := c.ProgressService.SaveFromSession(ctx.Request.Context(), claims.UserID, ctx.Param("id"), req.CurrentQuestion)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// Finish godoc
// @Summary Finish a quiz and get the result
// @Description Optional answers are applied to started questions first. Hidden questions are skipped.
// @Tags Quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param body body FinishRequest false "Final answers by question index"
// @Success 200 {object} util.Response{data=model.QuizResult}
// @Router /api/quiz/sessions/{id}/finish [post]
func (c *QuizController) Finish(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req FinishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, err.Error())
		return
	}
	result, err := c.QuizService.Finish(ctx.Request.Context(), claims.UserID, ctx.Param("id"), req.Answers)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Close godoc
// @Summary Abandon a quiz session
// @Description Saved progress is kept.
// @Tags Quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} util.Response
// @Router /api/quiz/sessions/{id} [delete]
func (c *QuizController) Close(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.QuizService.Close(ctx.Request.Context(), claims.UserID, ctx.Param("id")); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
