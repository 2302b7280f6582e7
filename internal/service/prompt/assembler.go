package prompt

import (
	"context"
	"strings"
	"sync"

	"github.com/nyayasetu/nyayasetu/internal/service/memory"
	"github.com/nyayasetu/nyayasetu/pkg/log"
	"github.com/pkoukk/tiktoken-go"
)

var (
	tk     *tiktoken.Tiktoken
	tkErr  error
	tkOnce sync.Once
)

// Assembler merges retrieved context, interaction memory, and the query into
// a single prompt following a fixed section template. Build never fails:
// every missing slot value is replaced by a literal fallback.
type Assembler struct {
	template        string
	contextSlot     string
	contextFallback string
	tokenBudget     int
}

// NewAdvisor assembles retrieval-augmented advisory prompts. tokenBudget caps
// the context slot; zero disables truncation.
func NewAdvisor(tokenBudget int) *Assembler {
	return &Assembler{
		template:        advisorTemplate,
		contextSlot:     "{context}",
		contextFallback: NoRelevantInfo,
		tokenBudget:     tokenBudget,
	}
}

// NewAnalyzer assembles single-document analysis prompts.
func NewAnalyzer(tokenBudget int) *Assembler {
	return &Assembler{
		template:        analyzerTemplate,
		contextSlot:     "{document}",
		contextFallback: NoDocument,
		tokenBudget:     tokenBudget,
	}
}

// Build fills the template slots and returns the prompt.
func (a *Assembler) Build(ctx context.Context, contextText, memoryText, question string) string {
	if strings.TrimSpace(contextText) == "" {
		contextText = a.contextFallback
	} else {
		contextText = fitTokens(ctx, contextText, a.tokenBudget)
	}
	if strings.TrimSpace(memoryText) == "" {
		memoryText = memory.NoHistory
	}

	r := strings.NewReplacer(
		a.contextSlot, contextText,
		"{memory}", memoryText,
		"{question}", question,
	)
	return r.Replace(a.template)
}

func getTokenizer() (*tiktoken.Tiktoken, error) {
	tkOnce.Do(func() {
		tk, tkErr = tiktoken.GetEncoding("cl100k_base")
	})
	return tk, tkErr
}

// fitTokens truncates text to at most budget tokens by encoding, slicing the
// token array, and decoding back. The encoding data is fetched on first use
// and may be unreachable; an oversized prompt beats a failed answer, so the
// text passes through untruncated in that case.
func fitTokens(ctx context.Context, text string, budget int) string {
	if budget <= 0 {
		return text
	}
	enc, err := getTokenizer()
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("tokenizer unavailable, skipping context truncation")
		return text
	}
	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= budget {
		return text
	}
	return enc.Decode(tokens[:budget])
}
