package controller

import (
	"mathquiz_backend/internal/service"
	"mathquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// MyReport godoc
// @Summary Download the current student's quiz history
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Success 200 {file} file
// @Failure 404 {object} util.Response "No quiz data to export"
// @Router /api/reports/me [get]
func (c *ReportController) MyReport(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	data, name, err := c.ReportService.StudentReport(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	sendFile(ctx, xlsxContentType, name, data)
}

// StudentReport godoc
// @Summary Download one student's quiz history
// @Tags Teacher
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {file} file
// @Router /api/teacher/students/{id}/report [get]
func (c *ReportController) StudentReport(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	data, name, err := c.ReportService.ReportForStudent(ctx.Request.Context(), id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	sendFile(ctx, xlsxContentType, name, data)
}

// ClassReport godoc
// @Summary Download the class summary workbook
// @Tags Teacher
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Success 200 {file} file
// @Router /api/teacher/class/report [get]
func (c *ReportController) ClassReport(ctx *gin.Context) {
	data, name, err := c.ReportService.ClassReport(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	sendFile(ctx, xlsxContentType, name, data)
}
