package docgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayasetu/nyayasetu/internal/core"
	"github.com/nyayasetu/nyayasetu/internal/render"
)

type fakeRenderer struct {
	textType core.DocumentType
	textData any
	pdfBody  string
	pdfLang  string
}

func (f *fakeRenderer) Text(docType core.DocumentType, data any) (string, error) {
	f.textType = docType
	f.textData = data
	return "DOCUMENT BODY", nil
}

func (f *fakeRenderer) PDF(content string, docType core.DocumentType, userName, language string) (string, error) {
	f.pdfBody = content
	f.pdfLang = language
	return "generated_pdfs/" + render.Filename(docType, userName, language), nil
}

// scriptedProvider answers each workflow prompt by recognising its wording.
func scriptedProvider(t *testing.T, classification string) *mockProvider {
	t.Helper()
	return &mockProvider{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			switch {
			case strings.Contains(prompt, "classifying a legal case"):
				return classification, nil
			case strings.Contains(prompt, "Translate the following legal document"):
				return "HINDI BODY", nil
			case strings.Contains(prompt, "authority details"):
				return "Designation: The Registrar\nName: District Consumer Forum\nSubject: Refund for defective cooler", nil
			case strings.Contains(prompt, "department details"):
				return "Department: Urban Development Department\nAdditional Info: Attach identity proof", nil
			case strings.Contains(prompt, "documents to be enclosed"):
				return "1. Purchase invoice\n2. Warranty card", nil
			case strings.Contains(prompt, "PRAYERS"):
				return "1. Direct a full refund within 30 days", nil
			case strings.Contains(prompt, "LEGAL BASIS"):
				return "1. Section 2(11) of the Consumer Protection Act applies", nil
			default:
				return "1. Generated point", nil
			}
		},
	}
}

func TestGenerator_GenerateComplaint(t *testing.T) {
	provider := scriptedProvider(t, "Complaint")
	renderer := &fakeRenderer{}
	g := NewGenerator(provider, renderer)

	req := core.DocumentRequest{
		Issue:         "defective air cooler from CoolKing Traders, stopped working in a week",
		Insights:      "seller refused refund",
		UserName:      "Asha Rao",
		Location:      "Pune, Maharashtra",
		ContactNumber: "9876543210",
	}
	got, err := g.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, core.TypeComplaint, got.Type)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "generated_pdfs/COMPLAINT_Asha_Rao_en.pdf", got.Path)

	data, ok := renderer.textData.(render.ComplaintData)
	require.True(t, ok, "renderer received %T", renderer.textData)
	assert.Equal(t, "CoolKing Traders", data.RespondentName)
	assert.Equal(t, "The Registrar", data.AuthorityDesignation)
	assert.Equal(t, "District Consumer Forum", data.AuthorityName)
	assert.Equal(t, "Refund for defective cooler", data.Subject)
	assert.Equal(t, []string{"1. Direct a full refund within 30 days"}, data.Prayers)
	assert.Equal(t, []string{"1. Purchase invoice", "2. Warranty card"}, data.Documents)
	assert.Equal(t, "DOCUMENT BODY", renderer.pdfBody)
}

func TestGenerator_GeneratePIL_RespondentRoster(t *testing.T) {
	provider := scriptedProvider(t, "PIL")
	renderer := &fakeRenderer{}
	g := NewGenerator(provider, renderer)

	req := core.DocumentRequest{
		Issue:    "industrial effluents polluting the river, public health emergency",
		Insights: "State of Maharashtra precedents apply",
		UserName: "Asha Rao",
		Location: "Pune, Maharashtra",
	}
	got, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, core.TypePIL, got.Type)

	data, ok := renderer.textData.(render.PILData)
	require.True(t, ok, "renderer received %T", renderer.textData)
	assert.Equal(t, "Pune", data.UserAddress)
	assert.Equal(t, "Maharashtra", data.Location)
	assert.Contains(t, data.Respondents, "State of Maharashtra")
	assert.Contains(t, data.Respondents, "Municipal Corporation of Pune")
	assert.Contains(t, data.Respondents, "Central Pollution Control Board")
	assert.Len(t, data.Respondents, 6)
}

func TestGenerator_GenerateRTI_PollutionOverride(t *testing.T) {
	provider := scriptedProvider(t, "RTI")
	renderer := &fakeRenderer{}
	g := NewGenerator(provider, renderer)

	req := core.DocumentRequest{
		Issue:    "seeking records about pollution monitoring near the lake",
		Insights: "orders passed in the State of Karnataka, 2021",
		UserName: "Asha Rao",
		Location: "Mysuru, Karnataka",
	}
	_, err := g.Generate(context.Background(), req)
	require.NoError(t, err)

	data, ok := renderer.textData.(render.RTIData)
	require.True(t, ok, "renderer received %T", renderer.textData)
	// The model proposed Urban Development; the environmental issue routes to
	// the state pollution board instead.
	assert.Equal(t, "Karnataka State Pollution Control Board", data.DepartmentName)
	assert.Equal(t, []string{"1. Attach identity proof"}, data.AdditionalInfo)
}

func TestGenerator_ComplaintAuthorityDefaults(t *testing.T) {
	provider := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			if strings.Contains(prompt, "classifying a legal case") {
				return "Complaint", nil
			}
			if strings.Contains(prompt, "authority details") {
				// No Name or Designation line in the model output.
				return "Subject: Refund for defective cooler", nil
			}
			return "1. Generated point", nil
		},
	}
	renderer := &fakeRenderer{}
	g := NewGenerator(provider, renderer)

	_, err := g.Generate(context.Background(), core.DocumentRequest{
		Issue:    "defective cooler from CoolKing Traders",
		UserName: "Asha Rao",
		Location: "Pune",
	})
	require.NoError(t, err)

	data, ok := renderer.textData.(render.ComplaintData)
	require.True(t, ok, "renderer received %T", renderer.textData)
	assert.Equal(t, "Consumer Disputes Redressal Commission", data.AuthorityName)
	assert.Equal(t, "The Presiding Officer", data.AuthorityDesignation)
	assert.Equal(t, "Refund for defective cooler", data.Subject)
}

func TestGenerator_SectionFailureAborts(t *testing.T) {
	provider := &mockProvider{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			if strings.Contains(prompt, "classifying a legal case") {
				return "Complaint", nil
			}
			if strings.Contains(prompt, "PRAYERS") {
				return "", errors.New("model quota exceeded")
			}
			return "1. Generated point", nil
		},
	}
	renderer := &fakeRenderer{}
	g := NewGenerator(provider, renderer)

	_, err := g.Generate(context.Background(), core.DocumentRequest{
		Issue:    "defective phone from QuickMart",
		UserName: "Asha Rao",
		Location: "Pune",
	})
	require.Error(t, err)

	var genErr *core.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Error(), "model quota exceeded")
	assert.Empty(t, renderer.pdfBody, "no document should be rendered after a section failure")
}

func TestGenerator_HindiTranslation(t *testing.T) {
	provider := scriptedProvider(t, "Complaint")
	renderer := &fakeRenderer{}
	g := NewGenerator(provider, renderer)

	got, err := g.Generate(context.Background(), core.DocumentRequest{
		Issue:    "defective phone from QuickMart",
		UserName: "Asha Rao",
		Location: "Pune",
		Language: "hi",
	})
	require.NoError(t, err)

	assert.Equal(t, "hi", got.Language)
	assert.Equal(t, "HINDI BODY", renderer.pdfBody)
	assert.Equal(t, "hi", renderer.pdfLang)
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "hi", DetectLanguage("मेरे क्षेत्र में वायु प्रदूषण बहुत बढ़ गया है और सरकार कोई कार्रवाई नहीं कर रही है"))
	assert.Equal(t, "en", DetectLanguage("air pollution in my area has become severe"))
}
