package controller

import (
	"mathquiz_backend/internal/service"
	"mathquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SocialController struct {
	SocialService *service.SocialService
}

func NewSocialController(socialService *service.SocialService) *SocialController {
	return &SocialController{SocialService: socialService}
}

type PostRequest struct {
	Content string `json:"content" binding:"required"`
}

// ListBookmarks godoc
// @Summary Bookmarked questions, newest first
// @Tags Social
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Bookmark}
// @Router /api/bookmarks [get]
func (c *SocialController) ListBookmarks(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	list, err := c.SocialService.ListBookmarks(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// AddBookmark godoc
// @Summary Bookmark a question
// @Description Bookmarking the same question twice keeps one bookmark.
// @Tags Social
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.BookmarkRequest true "Question"
// @Success 200 {object} util.Response{data=model.Bookmark}
// @Router /api/bookmarks [post]
func (c *SocialController) AddBookmark(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req service.BookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	b, err := c.SocialService.AddBookmark(ctx.Request.Context(), claims.UserID, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, b)
}

// RemoveBookmark godoc
// @Summary Remove a bookmark
// @Tags Social
// @Produce json
// @Security ApiKeyAuth
// @Param questionId path string true "Question ID"
// @Success 200 {object} util.Response
// @Router /api/bookmarks/{questionId} [delete]
func (c *SocialController) RemoveBookmark(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.SocialService.RemoveBookmark(ctx.Request.Context(), claims.UserID, ctx.Param("questionId")); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// IsBookmarked godoc
// @Summary Whether a question is bookmarked
// @Tags Social
// @Produce json
// @Security ApiKeyAuth
// @Param questionId path string true "Question ID"
// @Success 200 {object} util.Response{data=object}
// @Router /api/bookmarks/{questionId} [get]
func (c *SocialController) IsBookmarked(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	yes, err := c.SocialService.IsBookmarked(ctx.Request.Context(), claims.UserID, ctx.Param("questionId"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"bookmarked": yes})
}

// ListPosts godoc
// @Summary Discussion thread of a question, newest first
// @Tags Social
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Question ID"
// @Success 200 {object} util.Response{data=[]model.DiscussionPost}
// @Router /api/questions/{id}/discussion [get]
func (c *SocialController) ListPosts(ctx *gin.Context) {
	list, err := c.SocialService.ListPosts(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// AddPost godoc
// @Summary Post to a question's discussion
// @Tags Social
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Question ID"
// @Param body body PostRequest true "Post"
// @Success 201 {object} util.Response{data=model.DiscussionPost}
// @Router /api/questions/{id}/discussion [post]
func (c *SocialController) AddPost(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	post, err := c.SocialService.AddPost(ctx.Request.Context(), claims.UserID, ctx.Param("id"), req.Content)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, post)
}
