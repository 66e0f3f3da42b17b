package controller

import (
	"mathquiz_backend/internal/model"
	"mathquiz_backend/internal/service"
	"mathquiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	Materials *service.MaterialService
	Videos    *service.VideoService
}

func NewContentController(materials *service.MaterialService, videos *service.VideoService) *ContentController {
	return &ContentController{Materials: materials, Videos: videos}
}

// ListMaterials godoc
// @Summary Study materials
// @Tags Content
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Material}
// @Router /api/materials [get]
func (c *ContentController) ListMaterials(ctx *gin.Context) {
	list, err := c.Materials.List()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// GetMaterial godoc
// @Summary One study material as markdown
// @Tags Content
// @Produce json
// @Param slug path string true "Material slug"
// @Success 200 {object} util.Response{data=model.Material}
// @Failure 404 {object} util.Response
// @Router /api/materials/{slug} [get]
func (c *ContentController) GetMaterial(ctx *gin.Context) {
	m, err := c.Materials.Get(ctx.Param("slug"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

// MaterialPDF godoc
// @Summary Download a study material as PDF
// @Tags Content
// @Produce application/pdf
// @Param slug path string true "Material slug"
// @Success 200 {file} file
// @Failure 404 {object} util.Response
// @Router /api/materials/{slug}/pdf [get]
func (c *ContentController) MaterialPDF(ctx *gin.Context) {
	slug := ctx.Param("slug")
	data, err := c.Materials.PDF(slug)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	sendFile(ctx, util.MimePDF, slug+".pdf", data)
}

// Catalog godoc
// @Summary Every video resource by class and chapter
// @Tags Content
// @Produce json
// @Success 200 {object} util.Response{data=model.VideoCatalog}
// @Router /api/videos [get]
func (c *ContentController) Catalog(ctx *gin.Context) {
	util.Success(ctx, c.Videos.Catalog())
}

// ChapterVideos godoc
// @Summary Video resources of one chapter
// @Tags Content
// @Produce json
// @Param class path int true "Class level"
// @Param chapter path string true "Chapter"
// @Success 200 {object} util.Response{data=[]model.Video}
// @Router /api/videos/{class}/{chapter} [get]
func (c *ContentController) ChapterVideos(ctx *gin.Context) {
	class, ok := intParam(ctx, "class")
	if !ok {
		return
	}
	if !model.IsValidClassLevel(class) {
		util.BadRequest(ctx, "class must be 8, 9 or 10")
		return
	}
	util.Success(ctx, c.Videos.Videos(class, ctx.Param("chapter")))
}
