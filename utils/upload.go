package utils

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 5 * 1024 * 1024 // 5MB

var allowedImageExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

// SaveImage stores an uploaded image under dir with a randomized filename
// and returns the filename.
func SaveImage(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if file.Size > maxUploadSize {
		return "", errors.New("file too large")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return "", errors.New("unsupported image type")
	}
	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}
