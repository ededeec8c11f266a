package v1

import (
	"io"

	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// readFormFile pulls one multipart file out of the request, rejecting
// oversized bodies before they are buffered in full.
func readFormFile(c *gin.Context, field string) (filename string, data []byte, err error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil, apperror.BadRequest("A file is required in the '" + field + "' field")
	}
	if file.Size > security.MaxUploadSize {
		return "", nil, apperror.PayloadTooLarge("File exceeds the 5 MiB upload limit")
	}

	src, err := file.Open()
	if err != nil {
		return "", nil, apperror.BadRequest("Unable to read the uploaded file")
	}
	defer src.Close()

	data, err = io.ReadAll(io.LimitReader(src, security.MaxUploadSize+1))
	if err != nil {
		return "", nil, apperror.BadRequest("Unable to read the uploaded file")
	}
	if int64(len(data)) > security.MaxUploadSize {
		return "", nil, apperror.PayloadTooLarge("File exceeds the 5 MiB upload limit")
	}

	return file.Filename, data, nil
}
