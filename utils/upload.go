package utils

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SavePostImage stores the uploaded "image" form file under
// mediaRoot/posts_images with a random name and returns the path
// relative to mediaRoot. An absent file is not an error.
func SavePostImage(c *gin.Context, mediaRoot string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	relative := filepath.Join("posts_images", name)
	if err := c.SaveUploadedFile(file, filepath.Join(mediaRoot, relative)); err != nil {
		return "", err
	}

	return relative, nil
}
