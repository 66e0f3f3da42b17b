package controller

import (
	"errors"
	"mathquiz_backend/internal/service"
	"mathquiz_backend/internal/util"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxAttachmentSize = 10 << 20

// currentUser writes 401 and returns false when the request carries no claims.
func currentUser(ctx *gin.Context) (*util.Claims, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Error(ctx, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return claims, true
}

func intParam(ctx *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return v, true
}

func uintParam(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || v == 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}

// formAttachment returns the optional "file" form field. The caller closes
// the returned file when it is non-nil.
func formAttachment(ctx *gin.Context) (*service.Attachment, multipart.File, bool) {
	header, err := ctx.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, true
	}
	if err != nil {
		util.BadRequest(ctx, "invalid upload")
		return nil, nil, false
	}
	if header.Size > maxAttachmentSize {
		util.BadRequest(ctx, "file is larger than 10MB")
		return nil, nil, false
	}
	f, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return nil, nil, false
	}
	return &service.Attachment{Filename: header.Filename, Size: header.Size, Reader: f}, f, true
}

func sendFile(ctx *gin.Context, contentType, filename string, data []byte) {
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, contentType, data)
}
