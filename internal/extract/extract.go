// Package extract pulls plain text out of resume documents.
//
// Libraries used: github.com/ledongthuc/pdf (PDF) and
// github.com/nguyenthenguyen/docx (DOCX).
package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedType indicates a file extension outside the pdf/docx allow-list.
type ErrUnsupportedType string

func (e ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported file type: %s", string(e))
}

// Text extracts plain text from an in-memory document, dispatching on the
// file extension. PDF pages are concatenated with no separator; DOCX
// paragraphs are joined with a newline. The asymmetry matches the upstream
// report pipeline and is relied on by consumers.
func Text(ctx context.Context, data []byte, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	default:
		return "", ErrUnsupportedType(filepath.Ext(fileName))
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages that cannot be decoded contribute nothing.
			continue
		}
		// GetPlainText prefixes every text row with a newline. Drop the
		// page-leading one so pages concatenate without a separator.
		buf.WriteString(strings.TrimPrefix(text, "\n"))
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("read docx: empty data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML walks document.xml and keeps character data, emitting a
// newline at paragraph and line-break boundaries. Paragraphs with no
// character data are skipped rather than kept as blank lines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	pending := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(t) > 0 {
				buf.WriteString(string(t))
				pending = true
			}
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if pending {
					buf.WriteString("\n")
					pending = false
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
