// Package markdown converts the AI-generated analysis report (a markdown
// document following a fixed eight-section template, with custom
// conventions for quiz questions and resource citations) into sanitized
// HTML fragments. Every function is total: any string in, some HTML out.
// Explanation rows store the raw markdown; this pipeline runs on every
// view request.
package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// Render runs the full pipeline: quiz blocks, resource extraction, the
// block normalizer, the section-2 code upgrade, and finally resource
// reinsertion.
func Render(doc string) string {
	text := TransformQuizBlocks(doc)
	text, items := ExtractResources(text)

	html := transformBlocks(text)
	html = UpgradeCodeTags(html)
	html = injectResources(html, RenderResourceList(items))
	return html
}

const sectionOpen = `<section class="analysis-section">`

var headingNumberRe = regexp.MustCompile(`^` + regexp.QuoteMeta(sectionOpen) + `<h2>(\d+)\.`)

// sectionNode is one analysis-section element of the assembled document,
// keyed by its leading heading number (0 for unnumbered headings).
type sectionNode struct {
	number int
	html   string
}

// splitSections decomposes a rendered document into the text before the
// first section, its consecutive section elements, and whatever follows
// the last one. The block normalizer escapes every angle bracket inside
// section bodies, so section tags never nest.
func splitSections(html string) (prefix string, nodes []sectionNode, suffix string) {
	i := strings.Index(html, sectionOpen)
	if i < 0 {
		return html, nil, ""
	}
	prefix, suffix = html[:i], html[i:]
	for strings.HasPrefix(suffix, sectionOpen) {
		end := strings.Index(suffix, "</section>")
		if end < 0 {
			break
		}
		end += len("</section>")

		n := 0
		if m := headingNumberRe.FindStringSubmatch(suffix); m != nil {
			n, _ = strconv.Atoi(m[1])
		}
		nodes = append(nodes, sectionNode{number: n, html: suffix[:end]})
		suffix = suffix[end:]
	}
	return prefix, nodes, suffix
}

// InsertDiagramInSection attaches an image block to the numbered section,
// directly under its heading. Documents without that section come back
// unchanged.
func InsertDiagramInSection(html string, sectionNumber int, dataURI, alt string) string {
	if dataURI == "" {
		return html
	}

	prefix, nodes, suffix := splitSections(html)

	var b strings.Builder
	b.Grow(len(html) + len(dataURI) + 128)
	b.WriteString(prefix)
	for _, node := range nodes {
		if node.number == sectionNumber {
			if at := strings.Index(node.html, "</h2>"); at >= 0 {
				at += len("</h2>")
				img := `<div class="diagram"><img src="` + dataURI + `" alt="` + EscapeHTML(alt) + `" /></div>`
				node.html = node.html[:at] + img + node.html[at:]
			}
		}
		b.WriteString(node.html)
	}
	b.WriteString(suffix)
	return b.String()
}
