package docgen

import (
	"context"
	"strings"

	"github.com/nyayasetu/nyayasetu/internal/core"
	"github.com/nyayasetu/nyayasetu/pkg/log"
)

// Keyword fallback precedence: PIL indicators are checked first, then RTI,
// and everything else defaults to COMPLAINT. The ordering is a deliberate
// tie-break; classification is always total, never inconclusive.
var (
	pilKeywords = []string{"constitutional", "public interest", "environment", "governance", "policy", "public welfare"}
	rtiKeywords = []string{"information", "documents", "records", "transparency"}
)

// Classifier decides which of the three document workflows fits a free-text
// case description.
type Classifier struct {
	provider core.CompletionProvider
}

func NewClassifier(provider core.CompletionProvider) *Classifier {
	return &Classifier{provider: provider}
}

// Classify resolves case details to exactly one DocumentType. The model is
// asked for a single token; anything else (verbose output, malformed output,
// a failed call) falls through to keyword matching.
func (c *Classifier) Classify(ctx context.Context, caseDetails string) core.DocumentType {
	logger := log.FromCtx(ctx)

	reply, err := c.provider.Complete(ctx, classificationPrompt(caseDetails))
	if err != nil {
		logger.Warn().Err(err).Msg("classification call failed, using keyword fallback")
		return classifyByKeywords(caseDetails)
	}

	if docType, ok := core.ParseDocumentType(reply); ok {
		return docType
	}

	logger.Debug().Str("reply", reply).Msg("unrecognised classification reply, using keyword fallback")
	return classifyByKeywords(caseDetails)
}

func classifyByKeywords(caseDetails string) core.DocumentType {
	lower := strings.ToLower(caseDetails)
	if containsAny(lower, pilKeywords) {
		return core.TypePIL
	}
	if containsAny(lower, rtiKeywords) {
		return core.TypeRTI
	}
	return core.TypeComplaint
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
