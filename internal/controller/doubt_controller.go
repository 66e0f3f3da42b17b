package controller

import (
	"mathquiz_backend/internal/service"
	"mathquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DoubtController struct {
	DoubtService *service.DoubtService
}

func NewDoubtController(doubtService *service.DoubtService) *DoubtController {
	return &DoubtController{DoubtService: doubtService}
}

// CreateDoubt godoc
// @Summary Ask a doubt
// @Description The attachment is optional (png, jpg, jpeg, pdf, doc, docx). If it cannot be stored the doubt is saved without it and a warning is returned.
// @Tags Doubts
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param questionText formData string true "Doubt"
// @Param file formData file false "Attachment"
// @Success 201 {object} util.Response{data=service.DoubtResult}
// @Router /api/doubts [post]
func (c *DoubtController) CreateDoubt(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	file, closer, ok := formAttachment(ctx)
	if !ok {
		return
	}
	if closer != nil {
		defer closer.Close()
	}
	result, err := c.DoubtService.Create(ctx.Request.Context(), claims.UserID, ctx.PostForm("questionText"), file)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// MyDoubts godoc
// @Summary Doubts asked by the current student, with responses
// @Tags Doubts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Doubt}
// @Router /api/doubts [get]
func (c *DoubtController) MyDoubts(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	list, err := c.DoubtService.ListMine(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// PendingDoubts godoc
// @Summary Doubts waiting for a teacher, oldest first
// @Tags Teacher
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Doubt}
// @Router /api/teacher/doubts [get]
func (c *DoubtController) PendingDoubts(ctx *gin.Context) {
	list, err := c.DoubtService.ListPending(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Respond godoc
// @Summary Answer a pending doubt
// @Description Needs response text, a file, or both.
// @Tags Teacher
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Doubt ID"
// @Param responseText formData string false "Response"
// @Param file formData file false "Attachment"
// @Success 201 {object} util.Response{data=service.ResponseResult}
// @Failure 409 {object} util.Response "Doubt already answered"
// @Router /api/teacher/doubts/{id}/respond [post]
func (c *DoubtController) Respond(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	file, closer, ok := formAttachment(ctx)
	if !ok {
		return
	}
	if closer != nil {
		defer closer.Close()
	}
	result, err := c.DoubtService.Respond(ctx.Request.Context(), claims.UserID, id, ctx.PostForm("responseText"), file)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, result)
}
