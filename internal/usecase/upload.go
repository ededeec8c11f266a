package usecase

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"net/http"
	"strings"
	"time"

	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/security"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	imageMaxDimension = 1200
	imageJPEGQuality  = 80
)

// validateImageUpload enforces the size ceiling and media-type allow-list
// before any byte reaches the asset host.
func validateImageUpload(filename string, data []byte) error {
	if len(data) > security.MaxUploadSize {
		return apperror.PayloadTooLarge("File exceeds the 5 MiB upload limit")
	}
	result := security.ValidateImage(filename, data, http.DetectContentType(data))
	if !result.Valid {
		return apperror.UnsupportedMedia(result.Error)
	}
	return nil
}

// validatePDFUpload is the resume variant: PDF only, same ceiling.
func validatePDFUpload(filename string, data []byte) error {
	if len(data) > security.MaxUploadSize {
		return apperror.PayloadTooLarge("File exceeds the 5 MiB upload limit")
	}
	result := security.ValidatePDF(filename, data, http.DetectContentType(data))
	if !result.Valid {
		return apperror.UnsupportedMedia(result.Error)
	}
	return nil
}

// prepareImage downscales and re-encodes an accepted image as JPEG.
// Falls back to the original bytes when decoding fails, so odd but valid
// uploads still go through.
func prepareImage(filename string, data []byte) (finalData []byte, contentType, objectKey string) {
	compressed, err := compressImage(data, imageMaxDimension, imageJPEGQuality)
	if err != nil {
		logger.Log.Warn("Image compression failed, storing original", "file", filename, "error", err)
		return data, http.DetectContentType(data), newObjectKey(filename)
	}
	key := fmt.Sprintf("%d_%s.jpg", time.Now().UnixNano(), sanitizeFilename(filename))
	return compressed, "image/jpeg", key
}

func newObjectKey(filename string) string {
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), sanitizeFilename(filename), extension(filename))
}

// compressImage resizes an image to the given max dimension, preserving
// aspect ratio, and encodes it as JPEG.
func compressImage(data []byte, maxDimension, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	newWidth, newHeight := width, height
	if width >= height && width > maxDimension {
		newWidth = maxDimension
		newHeight = int(float64(height) * float64(maxDimension) / float64(width))
	} else if height > width && height > maxDimension {
		newHeight = maxDimension
		newWidth = int(float64(width) * float64(maxDimension) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

func extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx:])
}

// sanitizeFilename strips the extension, replaces spaces with underscores
// and keeps only ASCII alphanumerics, underscores and dashes.
func sanitizeFilename(filename string) string {
	baseName := strings.TrimSuffix(filename, extension(filename))
	baseName = strings.ReplaceAll(baseName, " ", "_")

	var result strings.Builder
	for _, r := range baseName {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			result.WriteRune(r)
		}
	}

	if result.Len() == 0 {
		return "file"
	}
	return result.String()
}
