// Package render turns generated document content into the court-ready text
// layouts and writes the final PDF files.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/nyayasetu/nyayasetu/internal/core"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Engine executes the embedded document templates and renders PDFs into
// outputDir. fontPath optionally points at a TTF with Devanagari coverage;
// without it Hindi output falls back to the built-in Times face and will not
// render Devanagari glyphs correctly.
type Engine struct {
	templates *template.Template
	outputDir string
	fontPath  string
}

func NewEngine(outputDir, fontPath string) (*Engine, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse document templates: %w", err)
	}
	return &Engine{templates: tmpl, outputDir: outputDir, fontPath: fontPath}, nil
}

func templateName(docType core.DocumentType) string {
	return strings.ToLower(string(docType)) + ".tmpl"
}

// Text executes the template for docType with data. The returned string is
// the complete document body, ready for translation and PDF layout.
func (e *Engine) Text(docType core.DocumentType, data any) (string, error) {
	name := templateName(docType)
	tmpl := e.templates.Lookup(name)
	if tmpl == nil {
		return "", &core.RenderError{Template: name, Err: fmt.Errorf("template not registered")}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", &core.RenderError{Template: name, Err: err}
	}
	return buf.String(), nil
}

// Filename returns the deterministic output name for a rendered document.
// Repeated generations for the same user and language overwrite in place.
func Filename(docType core.DocumentType, userName, language string) string {
	name := strings.ReplaceAll(strings.TrimSpace(userName), " ", "_")
	return fmt.Sprintf("%s_%s_%s.pdf", docType, name, language)
}

// OutputDir reports where rendered PDFs are written.
func (e *Engine) OutputDir() string {
	return e.outputDir
}

func (e *Engine) ensureOutputDir() error {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

func (e *Engine) outputPath(docType core.DocumentType, userName, language string) string {
	return filepath.Join(e.outputDir, Filename(docType, userName, language))
}
