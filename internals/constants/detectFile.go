package constants

import (
	"path/filepath"
	"strings"
)

// Contract document kinds
const (
	DocumentKindDOCX    = 3
	DocumentKindPDF     = 4
	DocumentKindImage   = 6
	DocumentKindUnknown = 99
)

func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".doc", ".docx":
		return DocumentKindDOCX
	case ".pdf":
		return DocumentKindPDF
	case ".png", ".jpg", ".jpeg", ".webp":
		return DocumentKindImage
	default:
		return DocumentKindUnknown
	}
}

// ContentTypeFromExt returns the MIME type stored with an uploaded contract document.
func ContentTypeFromExt(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
