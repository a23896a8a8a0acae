// utils/upload.go
package utils

import (
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadDir returns the directory client photos are written to.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return filepath.Join("static", "uploads")
}

// SaveUploadedPhoto stores the file under a randomized name and returns the
// reference kept on the client row ("uploads/<name>").
func SaveUploadedPhoto(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + "_" + sanitizeFilename(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "uploads/" + name, nil
}

// DeletePhoto removes a stored photo, best effort. A missing file is not an
// error; anything else is only logged.
func DeletePhoto(photoURL string) {
	if photoURL == "" {
		return
	}
	path := filepath.Join(UploadDir(), filepath.Base(photoURL))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to delete photo %s: %v", path, err)
	}
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
