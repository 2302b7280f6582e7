// Package docgen classifies legal issues and generates court-ready documents
// from them: Public Interest Litigation petitions, Right to Information
// applications, and consumer complaints.
package docgen

import (
	"context"
	"fmt"

	"github.com/nyayasetu/nyayasetu/internal/core"
	"github.com/nyayasetu/nyayasetu/pkg/log"
)

const dateLayout = "02 January, 2006"

// Renderer converts builder output into document text and the final PDF.
type Renderer interface {
	Text(docType core.DocumentType, data any) (string, error)
	PDF(content string, docType core.DocumentType, userName, language string) (string, error)
}

// builder drafts the content for one document type and returns the matching
// template data. The set of builders is closed; dispatch is an exhaustive
// switch, never a lookup that can miss.
type builder interface {
	docType() core.DocumentType
	build(ctx context.Context, req core.DocumentRequest) (any, error)
}

// Result describes a finished generation run.
type Result struct {
	Path     string            `json:"path"`
	Type     core.DocumentType `json:"document_type"`
	Language string            `json:"language"`
}

// Generator runs the full document workflow: classify, draft sections,
// render text, translate, write PDF.
type Generator struct {
	provider   core.CompletionProvider
	classifier *Classifier
	renderer   Renderer
}

func NewGenerator(provider core.CompletionProvider, renderer Renderer) *Generator {
	return &Generator{
		provider:   provider,
		classifier: NewClassifier(provider),
		renderer:   renderer,
	}
}

// Generate produces a legal document for req and returns where it was
// written. The request moves through RECEIVED, CLASSIFIED, CONTENT_GENERATED
// and RENDERED in order; any failure after classification aborts the run with
// no partial output visible to the caller.
func (g *Generator) Generate(ctx context.Context, req core.DocumentRequest) (Result, error) {
	logger := log.FromCtx(ctx)
	logger.Info().Str("stage", string(core.StageReceived)).Str("user", req.UserName).Msg("document request received")

	language := req.Language
	if language == "" {
		language = DetectLanguage(req.Issue)
	}

	caseDetails := fmt.Sprintf(
		"User Issue: %s\nLegal Insights: %s\nUser Name: %s\nLocation: %s\nContact: %s",
		req.Issue, req.Insights, req.UserName, req.Location, req.ContactNumber,
	)
	docType := g.classifier.Classify(ctx, caseDetails)
	logger.Info().Str("stage", string(core.StageClassified)).Str("type", string(docType)).Msg("document classified")

	data, err := g.builderFor(docType).build(ctx, req)
	if err != nil {
		return Result{}, err
	}
	logger.Info().Str("stage", string(core.StageContentGenerated)).Str("type", string(docType)).Msg("content generated")

	content, err := g.renderer.Text(docType, data)
	if err != nil {
		return Result{}, err
	}

	content, err = Translate(ctx, g.provider, content, language)
	if err != nil {
		return Result{}, err
	}

	path, err := g.renderer.PDF(content, docType, req.UserName, language)
	if err != nil {
		return Result{}, err
	}
	logger.Info().Str("stage", string(core.StageRendered)).Str("path", path).Msg("document rendered")

	return Result{Path: path, Type: docType, Language: language}, nil
}

func (g *Generator) builderFor(docType core.DocumentType) builder {
	switch docType {
	case core.TypePIL:
		return &pilBuilder{provider: g.provider}
	case core.TypeRTI:
		return &rtiBuilder{provider: g.provider}
	default:
		return &complaintBuilder{provider: g.provider}
	}
}

// complete wraps a section drafting call so upstream failures surface as
// generation errors naming the section that failed.
func complete(ctx context.Context, provider core.CompletionProvider, op, prompt string) (string, error) {
	out, err := provider.Complete(ctx, prompt)
	if err != nil {
		return "", core.NewGenerationError(op, err)
	}
	return out, nil
}

func contactDetails(contactNumber, address string) string {
	if contactNumber == "" {
		contactNumber = "[Contact Number]"
	}
	return fmt.Sprintf("Contact: %s\nAddress: %s", contactNumber, address)
}
