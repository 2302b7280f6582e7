package docgen

import (
	"context"
	"strings"

	"github.com/abadojack/whatlanggo"

	"github.com/nyayasetu/nyayasetu/internal/core"
)

// DetectLanguage guesses the document language from the issue text. Only
// Hindi is handled specially; everything else renders in English.
func DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if info.Lang == whatlanggo.Hin {
		return "hi"
	}
	return "en"
}

// Translate converts a fully assembled document to the target language.
// English passes through untouched; a failed translation call aborts the
// request rather than shipping a half-translated document.
func Translate(ctx context.Context, provider core.CompletionProvider, content, language string) (string, error) {
	if language != "hi" {
		return content, nil
	}
	out, err := provider.Complete(ctx, translationPrompt(content))
	if err != nil {
		return "", core.NewGenerationError("translate", err)
	}
	return strings.TrimSpace(out), nil
}
