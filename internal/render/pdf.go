package render

import (
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/nyayasetu/nyayasetu/internal/core"
)

var sectionHeaders = []string{
	"FACTS OF THE CASE:",
	"LEGAL BASIS:",
	"PRAYERS:",
	"VERIFICATION:",
	"INFORMATION SOUGHT:",
}

func isSectionHeader(line string) bool {
	for _, h := range sectionHeaders {
		if strings.HasPrefix(line, h) {
			return true
		}
	}
	return false
}

// PDF lays the document text out as a PDF and returns the written file path.
// Lines are styled by shape: section headers and salutations get extra
// leading, party labels are centered, everything else is justified body text.
func (e *Engine) PDF(content string, docType core.DocumentType, userName, language string) (string, error) {
	if err := e.ensureOutputDir(); err != nil {
		return "", &core.RenderError{Template: templateName(docType), Err: err}
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(72, 72, 72)
	pdf.SetAutoPageBreak(true, 72)

	family := "Times"
	write := func(line string) string { return line }
	if e.fontPath != "" {
		family = "document"
		pdf.AddUTF8Font(family, "", e.fontPath)
	} else {
		// Core fonts cover cp1252 only; translate what can be translated.
		tr := pdf.UnicodeTranslatorFromDescriptor("")
		write = tr
	}

	pdf.AddPage()
	pdf.SetFont(family, "", 12)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case isSectionHeader(line):
			pdf.Ln(12)
			pdf.MultiCell(0, 14, write(line), "", "J", false)
		case line == "Petitioner" || line == "Respondents" || line == "Complainant":
			pdf.CellFormat(0, 14, write(line), "", 1, "C", false, 0, "")
		case strings.HasPrefix(line, "Subject:") || strings.HasPrefix(line, "Respected"):
			pdf.Ln(12)
			pdf.MultiCell(0, 14, write(line), "", "J", false)
		default:
			pdf.MultiCell(0, 14, write(line), "", "J", false)
		}
	}

	path := e.outputPath(docType, userName, language)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", &core.RenderError{Template: templateName(docType), Err: err}
	}
	return path, nil
}
