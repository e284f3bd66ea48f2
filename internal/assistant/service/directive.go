package service

import "strings"

const (
	directiveStart = "||ADD_CART:"
	directiveEnd   = "||"
	// stripMarker cuts the reply before any add-to-cart markup, including
	// partial markup the model emitted without the colon terminator.
	stripMarker = "||ADD_CART"
)

// Directive is a parsed hidden add-to-cart command.
type Directive struct {
	ItemName  string
	StartYear string
	EndYear   string
	CoverType string
}

// HasDirective reports whether the reply contains an add-to-cart command.
func HasDirective(text string) bool {
	return strings.Contains(text, directiveStart)
}

// ExtractDirective parses the first add-to-cart command out of the reply.
// The command body runs to the next closing delimiter, or to the end of the
// text when the model forgot to close it. Fields are pipe-separated and
// trimmed; at least four are required, extras are ignored.
func ExtractDirective(text string) (Directive, bool) {
	_, after, found := strings.Cut(text, directiveStart)
	if !found {
		return Directive{}, false
	}

	body := after
	if closed, _, ok := strings.Cut(after, directiveEnd); ok {
		body = closed
	}

	parts := strings.Split(body, "|")
	if len(parts) < 4 {
		return Directive{}, false
	}

	return Directive{
		ItemName:  strings.TrimSpace(parts[0]),
		StartYear: strings.TrimSpace(parts[1]),
		EndYear:   strings.TrimSpace(parts[2]),
		CoverType: strings.TrimSpace(parts[3]),
	}, true
}

// StripDirective returns everything before the first add-to-cart marker.
func StripDirective(text string) string {
	before, _, _ := strings.Cut(text, stripMarker)
	return before
}
