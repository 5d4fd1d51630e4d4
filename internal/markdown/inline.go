package markdown

import "regexp"

var (
	boldRe       = regexp.MustCompile(`(?s)\*\*(.+?)\*\*`)
	inlineCodeRe = regexp.MustCompile("`([^`\n]+)`")
)

// TransformInline rewrites bold markers and backtick spans inside a text
// fragment without touching block structure. Bold runs before inline code.
// Inline code renders as an escaped styled span, not a <code> element:
// everywhere outside the notable-code-sections part of the report, model
// output is kept inert. UpgradeCodeTags lifts the spans in that one
// section afterwards.
func TransformInline(s string) string {
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = inlineCodeRe.ReplaceAllStringFunc(s, func(m string) string {
		inner := m[1 : len(m)-1]
		return `<span class="inline-code">` + EscapeHTML(inner) + `</span>`
	})
	return s
}
