package security_test

import (
	"testing"

	"go-portfolio-backend/pkg/security"

	"github.com/stretchr/testify/assert"
)

var (
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46}
	pngHeader  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
	pdfHeader  = []byte("%PDF-1.7 rest of document")
)

func TestValidateImage(t *testing.T) {
	t.Run("JPEG with matching extension passes", func(t *testing.T) {
		result := security.ValidateImage("photo.jpg", jpegHeader, "image/jpeg")
		assert.True(t, result.Valid)
		assert.Equal(t, ".jpg", result.Extension)
	})

	t.Run("PNG with matching extension passes", func(t *testing.T) {
		result := security.ValidateImage("shot.PNG", pngHeader, "image/png")
		assert.True(t, result.Valid)
	})

	t.Run("Extension spoofing is caught by magic bytes", func(t *testing.T) {
		result := security.ValidateImage("script.png", []byte("#!/bin/sh\nrm -rf"), "text/plain; charset=utf-8")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "does not match extension")
	})

	t.Run("PDF is not a valid image", func(t *testing.T) {
		result := security.ValidateImage("resume.pdf", pdfHeader, "application/pdf")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "extension not allowed")
	})

	t.Run("Missing extension is rejected", func(t *testing.T) {
		result := security.ValidateImage("photo", jpegHeader, "image/jpeg")
		assert.False(t, result.Valid)
	})

	t.Run("octet-stream MIME is rejected outright", func(t *testing.T) {
		result := security.ValidateImage("blob.webp", []byte{0x52, 0x49, 0x46, 0x46, 0x00, 0x00}, "application/octet-stream")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "MIME type not allowed")
	})
}

func TestValidatePDF(t *testing.T) {
	t.Run("Real PDF passes", func(t *testing.T) {
		result := security.ValidatePDF("cv.pdf", pdfHeader, "application/pdf")
		assert.True(t, result.Valid)
	})

	t.Run("Image disguised as PDF fails", func(t *testing.T) {
		result := security.ValidatePDF("cv.pdf", pngHeader, "image/png")
		assert.False(t, result.Valid)
	})

	t.Run("Images are not accepted as resumes", func(t *testing.T) {
		result := security.ValidatePDF("cv.png", pngHeader, "image/png")
		assert.False(t, result.Valid)
	})
}

func TestIsImageExtension(t *testing.T) {
	assert.True(t, security.IsImageExtension(".jpg"))
	assert.True(t, security.IsImageExtension(".WEBP"))
	assert.False(t, security.IsImageExtension(".pdf"))
	assert.False(t, security.IsImageExtension(".exe"))
}
