package conv

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags
	txtPolicy  = bluemonday.NewPolicy()
)

func init() {
	// Structural tags survive sanitization so html2text can lay out
	// paragraphs and lists; emphasis and everything else is dropped.
	txtPolicy.AllowElements("p", "br", "ul", "ol", "li", "blockquote",
		"h1", "h2", "h3", "h4", "h5", "h6")
}

// MarkdownToPlainText strips markdown and HTML from prose and returns plain
// text. Emphasis markers, heading markers, tags, and link targets are
// removed. The round-trip may reflow paragraphs, so this is for prose blocks
// (retrieved passages, scraped content); line-oriented model output is
// cleaned per line by its consumers instead.
func MarkdownToPlainText(md string) string {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse([]byte(md)), renderer)

	sanitized := txtPolicy.Sanitize(string(unsafeHTML))

	text, err := html2text.FromString(sanitized, html2text.Options{OmitLinks: true})
	if err != nil {
		// html2text only fails on malformed HTML, which our own renderer
		// does not produce. Fall back to the sanitized form.
		return strings.TrimSpace(sanitized)
	}
	return strings.TrimSpace(text)
}
