package markdown

import "strings"

// UpgradeCodeTags rewrites the generic escaped code markup into native
// code elements, scoped to the "2." section only. That section of the
// report (notable code sections) is allowed richer code rendering; every
// other section keeps code as inert styled text so model-controlled
// content cannot smuggle markup in.
//
// Content inside the rewritten elements was escaped when the wrappers were
// produced and is not re-escaped here.
func UpgradeCodeTags(html string) string {
	start := strings.Index(html, "<h2>2.")
	if start < 0 {
		return html
	}

	end := len(html)
	if i := strings.Index(html[start:], "</section>"); i >= 0 {
		end = start + i
	}

	frag := html[start:end]
	frag = strings.ReplaceAll(frag, `<span class="inline-code">`, `<code class="inline-code">`)
	frag = strings.ReplaceAll(frag, "</span>", "</code>")
	frag = strings.ReplaceAll(frag, `<div class="code-block">`, `<pre class="code-block"><code>`)
	frag = strings.ReplaceAll(frag, "</div>", "</code></pre>")

	return html[:start] + frag + html[end:]
}
