package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

// DocxExtractor extracts paragraph and table text from a .docx document.
type DocxExtractor struct{}

func (DocxExtractor) Extract(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var builder strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch v := item.(type) {
		case *docx.Paragraph:
			builder.WriteString(v.String())
			builder.WriteString("\n")
		case *docx.Table:
			builder.WriteString(v.String())
			builder.WriteString("\n")
		}
	}
	return builder.String(), nil
}
