package docgen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nyayasetu/nyayasetu/internal/core"
)

type mockProvider struct {
	completeFunc func(ctx context.Context, prompt string) (string, error)
	prompts      []string
}

func (m *mockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.completeFunc != nil {
		return m.completeFunc(ctx, prompt)
	}
	return "ok", nil
}

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		reply    string
		replyErr error
		want     core.DocumentType
	}{
		{
			name:  "exact token",
			input: "anything",
			reply: "RTI",
			want:  core.TypeRTI,
		},
		{
			name:  "token with whitespace and casing",
			input: "anything",
			reply: "  pil \n",
			want:  core.TypePIL,
		},
		{
			name:  "verbose reply falls back to keywords",
			input: "I need records and documents from the municipal office",
			reply: "I believe an RTI application would be most appropriate here.",
			want:  core.TypeRTI,
		},
		{
			name:     "model failure falls back to keywords",
			input:    "factory emissions are destroying the environment near our village",
			replyErr: errors.New("upstream down"),
			want:     core.TypePIL,
		},
		{
			name:  "pil keywords win over rti keywords",
			input: "seeking documents about a public interest matter",
			reply: "unsure",
			want:  core.TypePIL,
		},
		{
			name:  "no keywords defaults to complaint",
			input: "the shop sold me a defective washing machine",
			reply: "unsure",
			want:  core.TypeComplaint,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := &mockProvider{
				completeFunc: func(ctx context.Context, prompt string) (string, error) {
					return tc.reply, tc.replyErr
				},
			}
			got := NewClassifier(provider).Classify(context.Background(), tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifier_PromptCarriesCaseDetails(t *testing.T) {
	provider := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "Complaint", nil
		},
	}
	NewClassifier(provider).Classify(context.Background(), "broken fridge from CoolCo")

	assert.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], "broken fridge from CoolCo")
	assert.Contains(t, provider.prompts[0], "Respond with ONLY one of these three words")
}
