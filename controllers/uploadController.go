package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Allowed image types, checked by extension and by declared content type.
var (
	allowedExtensions = map[string]bool{
		".png":  true,
		".jpeg": true,
		".jpg":  true,
	}
	allowedContentTypes = map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/jpg":  true,
	}
)

type UploadController struct {
	Log *zap.Logger
	Dir string
}

func NewUploadController(log *zap.Logger, dir string) *UploadController {
	return &UploadController{Log: log, Dir: dir}
}

// UploadImage stores a single multipart image on local disk under the upload
// directory. Spaces in the original name are replaced and a timestamp suffix
// avoids collisions.
func (c *UploadController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No image file in request", err)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if !allowedExtensions[ext] || !allowedContentTypes[contentType] {
		sendErrorResponse(ctx, http.StatusBadRequest, "Images only!")
		return
	}

	base := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(file.Filename), ext), " ", "-")
	fileName := fmt.Sprintf("%s-%d%s", base, time.Now().UnixMilli(), ext)

	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		c.Log.Error("Failed to create upload directory", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "Failed to store image", err)
		return
	}
	if err := ctx.SaveUploadedFile(file, filepath.Join(c.Dir, fileName)); err != nil {
		c.Log.Error("Failed to store uploaded image", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "Failed to store image", err)
		return
	}

	c.Log.Info("Image uploaded", zap.String("file", fileName))
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Image has been uploaded",
		"image":   "/uploads/" + fileName,
	})
}
