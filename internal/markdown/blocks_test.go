package markdown_test

import (
	"strings"
	"testing"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/markdown"
)

func TestBlockNormalizer(t *testing.T) {
	t.Run("NumberedHeadingsOpenSections", func(t *testing.T) {
		got := markdown.Render("## 1. Project Summary\n\nHello.\n\n## 2. Notable Code Sections\n\nWorld.\n")

		if !strings.HasPrefix(got, `<div class="analysis-body"><section class="analysis-section"><h2>1. Project Summary</h2>`) {
			t.Errorf("No leading closing tag may precede the first section:\n%s", got)
		}
		if strings.Count(got, "<section") != strings.Count(got, "</section>") {
			t.Errorf("Unbalanced section tags:\n%s", got)
		}
		if !strings.Contains(got, "<h2>2. Notable Code Sections</h2>") {
			t.Errorf("Second section heading missing:\n%s", got)
		}
	})

	t.Run("Subheading", func(t *testing.T) {
		got := markdown.Render("### Details\n")
		if !strings.Contains(got, "<h3>Details</h3>") {
			t.Errorf("Subheading not converted:\n%s", got)
		}
	})

	t.Run("UnorderedList", func(t *testing.T) {
		got := markdown.Render("- one\n- two\n")
		if !strings.Contains(got, "<ul>\n<li><p>one</p></li>\n<li><p>two</p></li>\n</ul>") {
			t.Errorf("Unordered list wrong:\n%s", got)
		}
	})

	t.Run("OrderedList", func(t *testing.T) {
		got := markdown.Render("1. first\n2. second\n")
		if !strings.Contains(got, "<ol>\n<li><p>first</p></li>\n<li><p>second</p></li>\n</ol>") {
			t.Errorf("Ordered list wrong:\n%s", got)
		}
	})

	t.Run("KindSwitchClosesAndReopens", func(t *testing.T) {
		got := markdown.Render("1. first\n- bullet\n")
		if !strings.Contains(got, "</ol>\n<ul>\n") {
			t.Errorf("Ordered list must close before the unordered one opens:\n%s", got)
		}
		if strings.Count(got, "<li>") != 2 {
			t.Errorf("Expected two items across the two lists:\n%s", got)
		}
	})

	t.Run("BlankLineClosesList", func(t *testing.T) {
		got := markdown.Render("- one\n\nparagraph\n")
		ulClose := strings.Index(got, "</ul>")
		para := strings.Index(got, "<p>paragraph</p>")
		if ulClose < 0 || para < 0 || para < ulClose {
			t.Errorf("List not closed before the paragraph:\n%s", got)
		}
	})

	t.Run("ListLeftOpenAtEOF", func(t *testing.T) {
		got := markdown.Render("- dangling")
		if !strings.Contains(got, "</ul>") {
			t.Errorf("List left open at end of input:\n%s", got)
		}
	})

	t.Run("FencedCodeEscaped", func(t *testing.T) {
		got := markdown.Render("```go\nif a < b {\n}\n```\n")
		if !strings.Contains(got, `<div class="code-block">`) {
			t.Errorf("Code block wrapper missing:\n%s", got)
		}
		if !strings.Contains(got, "if a &lt; b {") {
			t.Errorf("Code content not escaped:\n%s", got)
		}
		if strings.Contains(got, "<p>if a") {
			t.Errorf("Code line rendered as paragraph:\n%s", got)
		}
	})

	t.Run("MarkupPassthrough", func(t *testing.T) {
		got := markdown.Render("<details class=\"quiz-question\"><summary>q</summary></details>\n")
		if !strings.Contains(got, `<details class="quiz-question"><summary>q</summary></details>`) {
			t.Errorf("Pre-formed markup was altered:\n%s", got)
		}
		if strings.Contains(got, "<p><details") {
			t.Errorf("Pre-formed markup wrapped in a paragraph:\n%s", got)
		}
	})

	t.Run("ForeignMarkupEscaped", func(t *testing.T) {
		got := markdown.Render("## 1. Summary\n\n</section><script>alert(1)</script>\n")
		if !strings.Contains(got, "&lt;/section&gt;&lt;script&gt;") {
			t.Errorf("Model-authored markup not escaped:\n%s", got)
		}
		if strings.Count(got, "<section") != strings.Count(got, "</section>") {
			t.Errorf("Raw closing tag broke section balance:\n%s", got)
		}
	})

	t.Run("BareLineBecomesParagraph", func(t *testing.T) {
		got := markdown.Render("just a sentence\n")
		if !strings.Contains(got, "<p>just a sentence</p>") {
			t.Errorf("Bare line not wrapped:\n%s", got)
		}
	})

	t.Run("EmptyDocument", func(t *testing.T) {
		got := markdown.Render("")
		if got != `<div class="analysis-body"></div>` {
			t.Errorf("Empty input should produce just the wrapper, got:\n%s", got)
		}
	})
}
