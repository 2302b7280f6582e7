package core

import "strings"

const (
	ServiceName    = "NyayaSetu"
	ServiceVersion = "0.1.0"
	UserAgent      = "NyayaSetu/0.1"
)

// Query is a single advisory question scoped to a user. It lives for the
// duration of one request and is never persisted.
type Query struct {
	Text   string `json:"text"`
	UserID string `json:"user_id"`
}

// Turn is one completed question/answer exchange. Immutable once created.
type Turn struct {
	UserInput string
	Response  string
}

// Format renders the turn into the single text block stored in memory and
// injected into future prompts.
func (t Turn) Format() string {
	return "User asked: " + t.UserInput + "\nAssistant answered: " + t.Response
}

// RetrievedContext is the ordered, relevance-ranked set of passages grounding
// a prompt. Recomputed on every query.
type RetrievedContext struct {
	Passages []string
}

// Empty reports whether no context text is available at all.
func (c RetrievedContext) Empty() bool {
	for _, p := range c.Passages {
		if strings.TrimSpace(p) != "" {
			return false
		}
	}
	return true
}

// Text joins the passages with blank-line separators for prompt embedding.
func (c RetrievedContext) Text() string {
	return strings.Join(c.Passages, "\n\n")
}

// Answer is the result of one pass through the response pipeline.
type Answer struct {
	Text     string   `json:"text"`
	Passages []string `json:"retrieved_passages,omitempty"`
}

// DocumentType enumerates the supported legal document workflows.
// Classification is total: every input resolves to exactly one of these.
type DocumentType string

const (
	TypePIL       DocumentType = "PIL"
	TypeRTI       DocumentType = "RTI"
	TypeComplaint DocumentType = "COMPLAINT"
)

// ParseDocumentType normalises a raw model reply into a DocumentType.
// The second return is false unless the reply is exactly one of the three
// accepted tokens after trimming and uppercasing.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(strings.ToUpper(strings.TrimSpace(s))) {
	case TypePIL:
		return TypePIL, true
	case TypeRTI:
		return TypeRTI, true
	case TypeComplaint:
		return TypeComplaint, true
	}
	return "", false
}

// DocumentRequest carries every field needed to generate a legal document.
// Fields are named and explicit; nothing is recovered by splitting a
// flattened input blob.
type DocumentRequest struct {
	Issue         string `json:"issue"`
	Insights      string `json:"insights"`
	UserName      string `json:"user_name"`
	Location      string `json:"location"`
	ContactNumber string `json:"contact_number"`
	// Language overrides detection when set ("en", "hi").
	Language string `json:"language,omitempty"`
}

// Stage tracks a document-generation request through its lifecycle.
// Transitions only move forward; any failure aborts the request.
type Stage string

const (
	StageReceived         Stage = "RECEIVED"
	StageClassified       Stage = "CLASSIFIED"
	StageContentGenerated Stage = "CONTENT_GENERATED"
	StageRendered         Stage = "RENDERED"
)

// PILContent holds the generated sections of a Public Interest Litigation
// petition. Assembled once, then handed to rendering unchanged.
type PILContent struct {
	IssueSummary  string
	LegalInsights string
	Prayers       []string
}

// RTIContent holds the generated sections of a Right to Information
// application.
type RTIContent struct {
	InformationSought string
	LegalBasis        string
	DepartmentName    string
	AdditionalInfo    []string
}

// ComplaintContent holds the generated sections of a consumer complaint.
type ComplaintContent struct {
	IssueSummary         string
	LegalInsights        string
	AuthorityDesignation string
	AuthorityName        string
	Subject              string
	Prayers              []string
	Documents            []string
}
