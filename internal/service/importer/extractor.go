package importer

import (
	"bytes"
	"mime"
	"strings"

	"golang.org/x/net/html"

	"github.com/julisunkan/LearnMan/internal/app_errors"
)

const titleExcerptLen = 80

// ExtractResult is clean readable text plus a suggested title for the
// module draft.
type ExtractResult struct {
	Text           string
	SuggestedTitle string
}

// Extractor reduces raw fetched markup to plain readable text. It is fully
// deterministic: the same input bytes always produce the same output.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// elements whose entire subtree is boilerplate and never part of the
// readable body.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"iframe":   true,
	"svg":      true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"form":     true,
	"button":   true,
	"select":   true,
	"object":   true,
}

// elements that terminate the current paragraph.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "main": true,
	"li": true, "ul": true, "ol": true, "table": true, "tr": true,
	"blockquote": true, "pre": true, "br": true, "hr": true,
	"figcaption": true,
	"h1":         true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

var headingElements = map[string]bool{"h1": true, "h2": true, "h3": true}

// Extract turns raw document bytes into readable text and a title.
func (e *Extractor) Extract(raw []byte, contentType string) (ExtractResult, error) {
	kind, err := documentKind(contentType)
	if err != nil {
		return ExtractResult{}, err
	}

	var text, title, heading string
	switch kind {
	case "plain":
		text = collapseParagraphs(string(raw))
	default:
		text, title, heading = walkHTML(raw)
	}

	if strings.TrimSpace(text) == "" {
		return ExtractResult{}, &app_errors.ExtractionError{Reason: app_errors.ExtractionEmpty}
	}

	suggested := title
	if suggested == "" {
		suggested = heading
	}
	if suggested == "" {
		suggested = excerpt(text, titleExcerptLen)
	}

	return ExtractResult{Text: text, SuggestedTitle: suggested}, nil
}

func documentKind(contentType string) (string, error) {
	if contentType == "" {
		// No declared type: assume markup, the tokenizer degrades gracefully.
		return "html", nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", &app_errors.ExtractionError{Reason: app_errors.ExtractionUnsupportedType}
	}
	switch mediaType {
	case "text/html", "application/xhtml+xml":
		return "html", nil
	case "text/plain":
		return "plain", nil
	default:
		return "", &app_errors.ExtractionError{Reason: app_errors.ExtractionUnsupportedType}
	}
}

// walkHTML tokenizes the markup, skipping boilerplate subtrees and flushing a
// paragraph at every block boundary. It also captures the document title and
// the first top-level heading.
func walkHTML(raw []byte) (text, title, heading string) {
	tokenizer := html.NewTokenizer(bytes.NewReader(raw))

	var paragraphs []string
	var current, titleBuf, headingBuf strings.Builder
	var skipDepth int
	var inTitle, inHeading, headingDone bool

	flush := func() {
		if p := collapseSpace(current.String()); p != "" {
			paragraphs = append(paragraphs, p)
		}
		current.Reset()
	}

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			nameBytes, _ := tokenizer.TagName()
			name := string(nameBytes)
			if blockElements[name] {
				flush()
			}
			if tt == html.SelfClosingTagToken {
				continue
			}
			switch {
			case skippedElements[name]:
				skipDepth++
			case name == "title":
				inTitle = true
			case headingElements[name] && !headingDone && skipDepth == 0:
				inHeading = true
			}
		case html.EndTagToken:
			nameBytes, _ := tokenizer.TagName()
			name := string(nameBytes)
			switch {
			case skippedElements[name]:
				if skipDepth > 0 {
					skipDepth--
				}
			case name == "title":
				inTitle = false
			case headingElements[name] && inHeading:
				inHeading = false
				headingDone = true
			}
			if blockElements[name] {
				flush()
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			t := string(tokenizer.Text())
			if inTitle {
				titleBuf.WriteString(t)
				continue
			}
			if inHeading {
				headingBuf.WriteString(t)
			}
			current.WriteString(t)
		}
	}
	flush()

	return strings.Join(paragraphs, "\n\n"),
		collapseSpace(titleBuf.String()),
		collapseSpace(headingBuf.String())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// collapseParagraphs normalizes plain text: blank lines separate paragraphs,
// everything inside a paragraph collapses to single spaces.
func collapseParagraphs(s string) string {
	var paragraphs []string
	for _, block := range strings.Split(s, "\n\n") {
		if p := collapseSpace(block); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

func excerpt(text string, limit int) string {
	flat := collapseSpace(strings.ReplaceAll(text, "\n", " "))
	runes := []rune(flat)
	if len(runes) <= limit {
		return flat
	}
	cut := string(runes[:limit])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
