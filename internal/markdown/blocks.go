package markdown

import (
	"regexp"
	"strings"
)

type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

var (
	numberedHeadingRe = regexp.MustCompile(`^## (\d+)\.\s+(.+)$`)
	orderedItemRe     = regexp.MustCompile(`^\d+\.\s+(.+)$`)
	fenceOpenRe       = regexp.MustCompile("^```[A-Za-z0-9+#._-]*$")
)

// transformBlocks is a single left-to-right pass over the document's
// lines. State: the currently open list kind and whether the scanner is
// inside a fenced code block or an open section. Per line, in priority
// order: fence delimiters, blank lines, numbered section headings,
// subheadings, already-formed markup, bullet items, numbered items, and
// finally bare paragraphs.
//
// Every `## N. Title` closes the previous section and opens the next one,
// so the scanner tracks whether a section is open rather than emitting a
// closing tag before the very first heading and stripping it afterwards.
// The assembled output is wrapped in one top-level element.
func transformBlocks(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 2)

	list := listNone
	inCode := false
	openSection := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if inCode {
			if strings.HasPrefix(trimmed, "```") {
				b.WriteString("</div>\n")
				inCode = false
				continue
			}
			b.WriteString(EscapeHTML(line))
			b.WriteString("\n")
			continue
		}

		switch {
		case fenceOpenRe.MatchString(trimmed):
			list = closeList(&b, list)
			b.WriteString(`<div class="code-block">` + "\n")
			inCode = true

		case trimmed == "":
			list = closeList(&b, list)

		case numberedHeadingRe.MatchString(trimmed):
			list = closeList(&b, list)
			m := numberedHeadingRe.FindStringSubmatch(trimmed)
			if openSection {
				b.WriteString("</section>")
			}
			b.WriteString(`<section class="analysis-section"><h2>`)
			b.WriteString(m[1])
			b.WriteString(". ")
			b.WriteString(TransformInline(m[2]))
			b.WriteString("</h2>\n")
			openSection = true

		case strings.HasPrefix(trimmed, "### "):
			list = closeList(&b, list)
			b.WriteString("<h3>")
			b.WriteString(TransformInline(strings.TrimPrefix(trimmed, "### ")))
			b.WriteString("</h3>\n")

		case strings.HasPrefix(trimmed, "<"):
			list = closeList(&b, list)
			if strings.HasPrefix(trimmed, detailsOpen) {
				// Markup produced by the quiz pass; pass through unchanged.
				b.WriteString(trimmed)
			} else {
				// Raw markup the pipeline did not emit stays inert, so a
				// model-authored closing tag cannot break the section
				// structure the diagram pass parses.
				b.WriteString("<p>")
				b.WriteString(EscapeHTML(trimmed))
				b.WriteString("</p>")
			}
			b.WriteString("\n")

		case strings.HasPrefix(trimmed, "- "):
			if list == listOrdered {
				list = closeList(&b, list)
			}
			if list != listUnordered {
				b.WriteString("<ul>\n")
				list = listUnordered
			}
			b.WriteString("<li><p>")
			b.WriteString(TransformInline(strings.TrimPrefix(trimmed, "- ")))
			b.WriteString("</p></li>\n")

		case orderedItemRe.MatchString(trimmed):
			if list == listUnordered {
				list = closeList(&b, list)
			}
			if list != listOrdered {
				b.WriteString("<ol>\n")
				list = listOrdered
			}
			m := orderedItemRe.FindStringSubmatch(trimmed)
			b.WriteString("<li><p>")
			b.WriteString(TransformInline(m[1]))
			b.WriteString("</p></li>\n")

		default:
			list = closeList(&b, list)
			b.WriteString("<p>")
			b.WriteString(TransformInline(trimmed))
			b.WriteString("</p>\n")
		}
	}

	closeList(&b, list)
	if inCode {
		b.WriteString("</div>\n")
	}
	if openSection {
		b.WriteString("</section>")
	}

	return `<div class="analysis-body">` + b.String() + `</div>`
}

func closeList(b *strings.Builder, list listKind) listKind {
	switch list {
	case listUnordered:
		b.WriteString("</ul>\n")
	case listOrdered:
		b.WriteString("</ol>\n")
	}
	return listNone
}
