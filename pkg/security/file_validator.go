package security

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	ContentType  string // Canonical content type used when storing the file
	DetectedMIME string // MIME type sniffed from the content
	Error        string // Error message if validation failed
}

// ISO base media files (mp4/mov/m4v) carry "ftyp" at offset 4.
var isoBoxType = []byte("ftyp")

// Matroska/WebM EBML header
var ebmlMagic = []byte{0x1A, 0x45, 0xDF, 0xA3}

// Allowed video extensions and the content type stored for each
var allowedExtensions = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
}

// Strict MIME types - application/octet-stream is never accepted
var strictMIMETypes = map[string]bool{
	"video/mp4":       true,
	"video/quicktime": true,
	"video/webm":      true,
	"video/x-m4v":     true,
}

// ValidateVideo performs 3-layer validation of an uploaded skill video:
// 1. Extension whitelist check
// 2. Magic byte verification (content matches extension)
// 3. MIME type whitelist
func ValidateVideo(filename string, data []byte, detectedMIME string) FileValidationResult {
	result := FileValidationResult{
		DetectedMIME: detectedMIME,
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	contentType, ok := allowedExtensions[ext]
	if !ok {
		result.Error = "file extension not allowed: " + ext
		return result
	}
	result.ContentType = contentType

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension (potential file spoofing detected)"
		return result
	}

	// The stdlib sniffer does not know QuickTime or every ftyp brand; once the
	// container signature matched, trust the extension's content type.
	mime := detectedMIME
	if mime == "" || mime == "application/octet-stream" {
		mime = contentType
	}
	if !strictMIMETypes[mime] {
		result.Error = "MIME type not allowed: " + detectedMIME
		return result
	}

	result.Valid = true
	return result
}

func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 12 {
		return false // File too small to validate
	}
	switch ext {
	case ".webm":
		return bytes.HasPrefix(data, ebmlMagic)
	default:
		return bytes.Equal(data[4:8], isoBoxType)
	}
}

// ValidateVideoExtension checks only the extension (for quick pre-validation)
func ValidateVideoExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("file has no extension")
	}
	if _, ok := allowedExtensions[ext]; !ok {
		return errors.New("file extension not allowed: " + ext)
	}
	return nil
}
