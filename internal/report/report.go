// Package report renders a ParsedResume into an OOXML word-processing
// document, either from scratch or by filling a placeholder template.
package report

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/telemetry"
)

// Builder assembles report documents. TemplatePath optionally points at a
// .docx with {{EMAIL}}/{{PHONE}}/{{SKILLS}}/{{EDUCATION}} placeholders; when
// empty or unreadable the built-in layout is used.
type Builder struct {
	TemplatePath string
}

// Build renders the report as an in-memory DOCX payload.
func (b *Builder) Build(res resumes.ParsedResume) ([]byte, error) {
	if b.TemplatePath != "" {
		data, err := b.buildFromTemplate(res)
		if err == nil {
			metrics.IncReportBuilt()
			return data, nil
		}
		telemetry.Warn("report.template_fallback", map[string]any{
			"template": b.TemplatePath,
			"err":      err.Error(),
		})
	}
	data, err := buildDocument(res)
	if err != nil {
		return nil, err
	}
	metrics.IncReportBuilt()
	return data, nil
}

// WriteFile renders the report and persists it at path.
func (b *Builder) WriteFile(res resumes.ParsedResume, path string) error {
	data, err := b.Build(res)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func (b *Builder) buildFromTemplate(res resumes.ParsedResume) ([]byte, error) {
	tpl, err := docx.ReadDocxFile(b.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	defer tpl.Close()

	doc := tpl.Editable()
	replacements := map[string]string{
		"{{EMAIL}}":     orNA(res.Email),
		"{{PHONE}}":     orNA(res.Phone),
		"{{SKILLS}}":    orNA(strings.Join(res.Skills, ", ")),
		"{{EDUCATION}}": orNA(strings.Join(res.Education, "; ")),
	}
	for key, val := range replacements {
		if err := doc.Replace(key, val, -1); err != nil {
			return nil, fmt.Errorf("replace %s: %w", key, err)
		}
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("write template output: %w", err)
	}
	return buf.Bytes(), nil
}

// buildDocument assembles a minimal OOXML package by hand: content types,
// package relationships, styles, and the document body.
func buildDocument(res resumes.ParsedResume) ([]byte, error) {
	var body strings.Builder
	writeStyledParagraph(&body, "Title", "Resume Analysis Report")

	writeStyledParagraph(&body, "Heading1", "Contact Information")
	if res.Email != "" {
		writeParagraph(&body, "Email: "+res.Email)
	}
	if res.Phone != "" {
		writeParagraph(&body, "Phone: "+res.Phone)
	}

	if len(res.Skills) > 0 {
		writeStyledParagraph(&body, "Heading1", "Skills")
		writeParagraph(&body, strings.Join(res.Skills, ", "))
	}

	if len(res.Education) > 0 {
		writeStyledParagraph(&body, "Heading1", "Education")
		for _, edu := range res.Education {
			writeParagraph(&body, "• "+edu)
		}
	}

	writeStyledParagraph(&body, "Heading1", "Original Resume Text")
	for _, line := range strings.Split(res.RawText, "\n") {
		writeParagraph(&body, line)
	}

	documentXML := xmlHeader +
		`<w:document xmlns:w="` + wmlNamespace + `"><w:body>` +
		body.String() +
		`<w:sectPr/></w:body></w:document>`

	var out bytes.Buffer
	writer := zip.NewWriter(&out)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", documentXML},
	}
	for _, part := range parts {
		f, err := writer.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close package: %w", err)
	}
	return out.Bytes(), nil
}

func writeStyledParagraph(buf *strings.Builder, style, text string) {
	buf.WriteString(`<w:p><w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>`)
	writeRun(buf, text)
	buf.WriteString(`</w:p>`)
}

func writeParagraph(buf *strings.Builder, text string) {
	buf.WriteString(`<w:p>`)
	writeRun(buf, text)
	buf.WriteString(`</w:p>`)
}

func writeRun(buf *strings.Builder, text string) {
	if text == "" {
		return
	}
	buf.WriteString(`<w:r><w:t xml:space="preserve">`)
	buf.WriteString(escapeXML(text))
	buf.WriteString(`</w:t></w:r>`)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
