package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// UploadFile stores a multipart file under a fresh UUID name and returns the
// url items can reference.
func (h *UploadHandler) UploadFile(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "File is required")
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		log.Printf("Error creating upload dir: %v", err)
		fail(c, http.StatusInternalServerError, "Error uploading file")
		return
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	dst := filepath.Join(h.uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.Printf("Error saving upload: %v", err)
		fail(c, http.StatusInternalServerError, "Error uploading file")
		return
	}

	success(c, "File uploaded successfully", gin.H{"url": dst})
}
