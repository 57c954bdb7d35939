package controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/godz1llla/DAMDI-QR-ORG/pkg/resp"
	"github.com/google/uuid"
)

const maxUploadSize = 5 << 20 // 5 MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type UploadController struct {
	UploadDir string
	BaseURL   string
}

func NewUploadController(uploadDir, baseURL string) *UploadController {
	return &UploadController{UploadDir: uploadDir, BaseURL: baseURL}
}

// POST /upload/image — multipart "image" field; stored under a uuid name so
// uploads never collide or expose original filenames.
func (uc *UploadController) Image(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}
	if file.Size > maxUploadSize {
		resp.BadRequest(c, "image is too large")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		resp.BadRequest(c, "unsupported image type")
		return
	}

	if err := os.MkdirAll(uc.UploadDir, 0o755); err != nil {
		resp.ServerError(c, err)
		return
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(uc.UploadDir, name)); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"url": fmt.Sprintf("%s/uploads/%s", uc.BaseURL, name)})
}
