package controller

import (
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/service"
	"mathquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// RegisterStudent godoc
// @Summary Register a student
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body service.StudentSignupRequest true "Student details"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "Invalid input"
// @Failure 409 {object} util.Response "Email already registered"
// @Router /api/auth/students/register [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req service.StudentSignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.AuthService.RegisterStudent(ctx.Request.Context(), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// RegisterTeacher godoc
// @Summary Register a teacher
// @Description Needs the configured registration code and an institutional email address.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body service.TeacherSignupRequest true "Teacher details"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "Invalid input"
// @Failure 403 {object} util.Response "Registration code rejected"
// @Failure 409 {object} util.Response "Email already registered"
// @Router /api/auth/teachers/register [post]
func (c *AuthController) RegisterTeacher(ctx *gin.Context) {
	var req service.TeacherSignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.AuthService.RegisterTeacher(ctx.Request.Context(), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// StudentLogin godoc
// @Summary Student login
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=service.LoginResponse}
// @Failure 401 {object} util.Response "Invalid credentials"
// @Router /api/auth/students/login [post]
func (c *AuthController) StudentLogin(ctx *gin.Context) {
	c.login(ctx, model.Student)
}

// TeacherLogin godoc
// @Summary Teacher login
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=service.LoginResponse}
// @Failure 401 {object} util.Response "Invalid credentials or not a teacher"
// @Router /api/auth/teachers/login [post]
func (c *AuthController) TeacherLogin(ctx *gin.Context) {
	c.login(ctx, model.Teacher)
}

func (c *AuthController) login(ctx *gin.Context, role model.UserRole) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	resp, err := c.AuthService.Login(ctx.Request.Context(), req, role)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

// Profile godoc
// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	user, err := c.AuthService.Profile(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
