package markdown_test

import (
	"strings"
	"testing"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/markdown"
)

func TestUpgradeCodeTags(t *testing.T) {
	doc := "## 1. Project Summary\n\nUses `fmt` a lot.\n\n" +
		"## 2. Notable Code Sections\n\nSee `main.go`:\n\n```go\nfunc main() {}\n```\n\n" +
		"## 3. Authentication & Security Analysis\n\nToken in `header`.\n"

	got := markdown.Render(doc)

	t.Run("SectionTwoUpgraded", func(t *testing.T) {
		sec2 := between(got, "<h2>2.", "<h2>3.")
		if !strings.Contains(sec2, `<code class="inline-code">main.go</code>`) {
			t.Errorf("Inline code in section 2 not upgraded:\n%s", sec2)
		}
		if !strings.Contains(sec2, `<pre class="code-block"><code>`) {
			t.Errorf("Code block in section 2 not upgraded:\n%s", sec2)
		}
		if !strings.Contains(sec2, "</code></pre>") {
			t.Errorf("Code block closing tags not upgraded:\n%s", sec2)
		}
	})

	t.Run("OtherSectionsUntouched", func(t *testing.T) {
		sec1 := between(got, "<h2>1.", "<h2>2.")
		if !strings.Contains(sec1, `<span class="inline-code">fmt</span>`) {
			t.Errorf("Section 1 span should stay generic:\n%s", sec1)
		}

		sec3 := got[strings.Index(got, "<h2>3."):]
		if !strings.Contains(sec3, `<span class="inline-code">header</span>`) {
			t.Errorf("Section 3 span should stay generic:\n%s", sec3)
		}
		if strings.Contains(sec3, "<code") {
			t.Errorf("Section 3 must not contain native code tags:\n%s", sec3)
		}
	})

	t.Run("ContentNotReescaped", func(t *testing.T) {
		in := "## 2. Notable Code Sections\n\n```\na < b\n```\n"
		out := markdown.Render(in)
		if !strings.Contains(out, "a &lt; b") {
			t.Errorf("Escaped content mangled:\n%s", out)
		}
		if strings.Contains(out, "&amp;lt;") {
			t.Errorf("Content was escaped twice:\n%s", out)
		}
	})

	t.Run("NoSectionTwoNoChange", func(t *testing.T) {
		in := "## 1. Project Summary\n\nOnly `one` section.\n"
		out := markdown.Render(in)
		if strings.Contains(out, "<code") {
			t.Errorf("Upgrade ran without a section 2:\n%s", out)
		}
	})
}

func between(s, from, to string) string {
	i := strings.Index(s, from)
	j := strings.Index(s, to)
	if i < 0 || j < 0 || j < i {
		return ""
	}
	return s[i:j]
}
