// Package renderer turns thread bodies and page models into HTML.
package renderer

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/niklasfasching/go-org/org"
)

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// Highlighted code blocks are styled through chroma and go-org classes.
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[\w\- ]+$`)).Globally()
	p.AllowRelativeURLs(true)
	return p
}

// NewHTMLWriterWithChroma returns an org HTML writer that highlights source
// blocks with chroma, emitting CSS classes instead of inline styles.
func NewHTMLWriterWithChroma() *org.HTMLWriter {
	w := org.NewHTMLWriter()
	w.HighlightCodeBlock = func(source, lang string, inline bool, params map[string]string) string {
		var buf bytes.Buffer
		lexer := lexers.Get(lang)
		if lexer == nil {
			lexer = lexers.Fallback
		}
		iterator, err := lexer.Tokenise(nil, source)
		if err != nil {
			return source
		}
		formatter := html.New(html.WithClasses(true))
		if err := formatter.Format(&buf, styles.Get("friendly"), iterator); err != nil {
			return source
		}
		return buf.String()
	}
	return w
}

// Content renders a thread or comment body written in Org markup and
// sanitizes the result, so it is safe to embed in a page unescaped.
func Content(source string) (string, error) {
	doc := org.New().Parse(strings.NewReader(source), "")
	out, err := doc.Write(NewHTMLWriterWithChroma())
	if err != nil {
		return "", err
	}
	return policy.Sanitize(out), nil
}
