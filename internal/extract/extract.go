// Package extract turns uploaded recipe documents into plain text.
package extract

import (
	"errors"
	"path/filepath"
	"strings"
)

// Format identifies a supported document format.
type Format string

const (
	FormatTXT  Format = "txt"
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

// ErrUnsupportedFormat is returned for any file type outside the supported
// set. Unrecognized uploads are rejected outright rather than silently
// producing empty text.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// DetectFormat maps a file name's extension to a Format.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return FormatTXT, nil
	case ".docx":
		return FormatDOCX, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// ContentType returns the MIME type for a recognized format.
func (f Format) ContentType() string {
	switch f {
	case FormatTXT:
		return "text/plain"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Extractor produces plain text from a document's bytes.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// Registry dispatches extraction by format.
type Registry struct {
	extractors map[Format]Extractor
}

// NewRegistry builds a registry with the full supported set.
func NewRegistry() *Registry {
	return &Registry{
		extractors: map[Format]Extractor{
			FormatTXT:  TextExtractor{},
			FormatDOCX: DocxExtractor{},
			FormatPDF:  PDFExtractor{},
		},
	}
}

// Extract runs the extractor registered for the format.
func (r *Registry) Extract(format Format, data []byte) (string, error) {
	ex, ok := r.extractors[format]
	if !ok {
		return "", ErrUnsupportedFormat
	}
	return ex.Extract(data)
}

// TextExtractor returns the file bytes as UTF-8 text verbatim.
type TextExtractor struct{}

func (TextExtractor) Extract(data []byte) (string, error) {
	return string(data), nil
}
