package markdown

import (
	"regexp"
	"strings"
)

// A resource entry occupies one line:
//
//	**Resource N:** <title> - <url> - <description>
//
// where <url> is either a bare http(s) token or a markdown [label](url)
// link. Lines that match neither URL form are not treated as resources at
// all; they stay in the main text and render as plain paragraphs.
var resourceRe = regexp.MustCompile(
	`(?m)^\*\*Resource (\d+):\*\*\s*(.+?)\s*-\s*(?:\[([^\]]+)\]\((https?://[^)\s]+)\)|(https?://[^\s]+))\s*-\s*(.+)$\n?`)

type ResourceItem struct {
	Title       string
	URL         string
	Description string
}

// ExtractResources deletes every matched resource block from the text and
// returns the remaining text together with the extracted items, so the
// block normalizer never sees the matched lines.
func ExtractResources(text string) (string, []ResourceItem) {
	matches := resourceRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))
	items := make([]ResourceItem, 0, len(matches))
	prevEnd := 0

	for _, m := range matches {
		b.WriteString(text[prevEnd:m[0]])
		prevEnd = m[1]

		item := ResourceItem{
			Title:       strings.TrimSpace(text[m[4]:m[5]]),
			Description: strings.TrimSpace(text[m[12]:m[13]]),
		}
		// Prefer the markdown-link capture when both URL groups are present.
		if m[8] >= 0 {
			item.URL = text[m[8]:m[9]]
		} else {
			item.URL = text[m[10]:m[11]]
		}
		items = append(items, item)
	}

	b.WriteString(text[prevEnd:])
	return b.String(), items
}

// RenderResourceList renders the extracted items as a flat list of
// "Title - URL" lines, the title linked and the URL shown as plain text.
func RenderResourceList(items []ResourceItem) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<ul class="resources-list">`)
	for _, item := range items {
		b.WriteString(`<li><a href="`)
		b.WriteString(EscapeHTML(item.URL))
		b.WriteString(`" target="_blank" rel="noopener noreferrer">`)
		b.WriteString(renderTitle(item.Title))
		b.WriteString(`</a> - `)
		b.WriteString(EscapeHTML(item.URL))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
	return b.String()
}

// renderTitle escapes a title and then rewrites its bold and backtick
// markers. The whole string is escaped up front, so the code-span pass here
// must not escape its capture again the way TransformInline does.
func renderTitle(title string) string {
	s := EscapeHTML(title)
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = inlineCodeRe.ReplaceAllString(s, `<span class="inline-code">$1</span>`)
	return s
}

const resourcesHeading = "supplemental learning resources"

// injectResources places the rendered list into the document. Exactly one
// of two paths runs: when a heading for the resources section already
// exists, the list goes directly under it (dropping one empty placeholder
// paragraph if the model emitted one); otherwise a new section with its
// own heading is appended at the very end.
func injectResources(html, list string) string {
	if list == "" {
		return html
	}

	lower := strings.ToLower(html)
	if i := strings.Index(lower, resourcesHeading); i >= 0 {
		headEnd := strings.Index(html[i:], "</h2>")
		if headEnd < 0 {
			headEnd = strings.Index(html[i:], "</h3>")
		}
		if headEnd >= 0 {
			at := i + headEnd + len("</h2>")
			rest := html[at:]
			trimmed := strings.TrimPrefix(rest, "\n")
			if strings.HasPrefix(trimmed, "<p></p>") {
				rest = strings.TrimPrefix(trimmed, "<p></p>")
			}
			return html[:at] + list + rest
		}
	}

	return html + `<section class="analysis-section"><h2>Supplemental Learning Resources</h2>` + list + `</section>`
}
