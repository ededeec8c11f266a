package security

import (
	"bytes"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the fixed ceiling for multipart uploads (5 MiB).
// Enforcement happens before any byte reaches the asset host.
const MaxUploadSize = 5 << 20

// FileValidationResult contains the result of upload validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // Detected MIME type
	Error        string // Error message if validation failed
}

// Magic byte signatures for allowed upload types, keyed by lowercase extension
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                                   // %PDF
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Strict MIME whitelist - application/octet-stream is rejected outright
var strictMIMETypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// ValidateImage checks that an upload is one of the allowed image formats:
// extension whitelist, magic bytes matching the extension, and MIME whitelist.
func ValidateImage(filename string, data []byte, detectedMIME string) FileValidationResult {
	return validate(filename, data, detectedMIME, func(ext string) bool {
		return imageExtensions[ext]
	})
}

// ValidatePDF checks that an upload is a PDF (resume uploads).
func ValidatePDF(filename string, data []byte, detectedMIME string) FileValidationResult {
	return validate(filename, data, detectedMIME, func(ext string) bool {
		return ext == ".pdf"
	})
}

func validate(filename string, data []byte, detectedMIME string, extAllowed func(string) bool) FileValidationResult {
	result := FileValidationResult{
		DetectedMIME: detectedMIME,
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	if !extAllowed(ext) {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	if !strictMIMETypes[detectedMIME] {
		result.Error = "MIME type not allowed: " + detectedMIME
		return result
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false // File too small to validate
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}

	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// IsImageExtension checks if the extension is an allowed image type
func IsImageExtension(ext string) bool {
	return imageExtensions[strings.ToLower(ext)]
}
