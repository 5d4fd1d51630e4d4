package markdown_test

import (
	"strings"
	"testing"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/markdown"
)

func TestExtractResources(t *testing.T) {
	t.Run("BareURL", func(t *testing.T) {
		in := "before\n**Resource 1:** Go Tour - https://go.dev/tour - Interactive introduction\nafter\n"
		remaining, items := markdown.ExtractResources(in)

		if len(items) != 1 {
			t.Fatalf("Expected 1 item, got %d", len(items))
		}
		if items[0].Title != "Go Tour" {
			t.Errorf("Wrong title: %q", items[0].Title)
		}
		if items[0].URL != "https://go.dev/tour" {
			t.Errorf("Wrong URL: %q", items[0].URL)
		}
		if items[0].Description != "Interactive introduction" {
			t.Errorf("Wrong description: %q", items[0].Description)
		}
		if strings.Contains(remaining, "**Resource") {
			t.Errorf("Matched block not removed from text: %q", remaining)
		}
		if !strings.Contains(remaining, "before") || !strings.Contains(remaining, "after") {
			t.Errorf("Surrounding text lost: %q", remaining)
		}
	})

	t.Run("MarkdownLinkPreferred", func(t *testing.T) {
		in := "**Resource 2:** Effective Go - [Effective Go](https://go.dev/doc/effective_go) - The classic style guide\n"
		_, items := markdown.ExtractResources(in)

		if len(items) != 1 {
			t.Fatalf("Expected 1 item, got %d", len(items))
		}
		if items[0].URL != "https://go.dev/doc/effective_go" {
			t.Errorf("Markdown-link URL not captured: %q", items[0].URL)
		}
	})

	t.Run("MalformedEntrySkipped", func(t *testing.T) {
		in := "**Resource 3:** No URL here at all\n"
		remaining, items := markdown.ExtractResources(in)

		if len(items) != 0 {
			t.Fatalf("Malformed entry should not produce an item, got %d", len(items))
		}
		if remaining != in {
			t.Errorf("Malformed entry should stay in the main text: %q", remaining)
		}
	})

	t.Run("MultipleEntries", func(t *testing.T) {
		in := "**Resource 1:** A - https://a.example - first\n" +
			"**Resource 2:** B - https://b.example - second\n" +
			"**Resource 3:** C - [C](https://c.example) - third\n"
		remaining, items := markdown.ExtractResources(in)

		if len(items) != 3 {
			t.Fatalf("Expected 3 items, got %d", len(items))
		}
		if strings.TrimSpace(remaining) != "" {
			t.Errorf("All blocks should be removed, remaining: %q", remaining)
		}
	})
}

func TestRenderResourceList(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if got := markdown.RenderResourceList(nil); got != "" {
			t.Errorf("Empty item list should render nothing, got %q", got)
		}
	})

	t.Run("TitleDashURLItems", func(t *testing.T) {
		items := []markdown.ResourceItem{{Title: "Go Tour", URL: "https://go.dev/tour"}}
		got := markdown.RenderResourceList(items)

		want := `<li><a href="https://go.dev/tour" target="_blank" rel="noopener noreferrer">Go Tour</a> - https://go.dev/tour</li>`
		if !strings.Contains(got, want) {
			t.Errorf("Item not rendered as Title - URL:\n%s", got)
		}
	})

	t.Run("EscapedTitleAndURL", func(t *testing.T) {
		items := []markdown.ResourceItem{{Title: `Tricks & "Tips"`, URL: "https://x.example/?a=1&b=2"}}
		got := markdown.RenderResourceList(items)

		if !strings.Contains(got, `href="https://x.example/?a=1&amp;b=2"`) {
			t.Errorf("URL not escaped: %s", got)
		}
		if !strings.Contains(got, `Tricks &amp; &quot;Tips&quot;`) {
			t.Errorf("Title not escaped: %s", got)
		}
	})
}

func TestResourceInjection(t *testing.T) {
	t.Run("ExistingHeading", func(t *testing.T) {
		doc := "## 8. Supplemental Learning Resources\n\n" +
			"**Resource 1:** A - https://a.example - first\n" +
			"**Resource 2:** B - https://b.example - second\n"
		got := markdown.Render(doc)

		if n := strings.Count(got, `<ul class="resources-list">`); n != 1 {
			t.Fatalf("Expected exactly one resources list, got %d", n)
		}
		if n := strings.Count(got, "<li>"); n != 2 {
			t.Errorf("Expected 2 items, got %d", n)
		}
		// The list lands inside the existing section, right under its heading.
		headAt := strings.Index(got, "Supplemental Learning Resources</h2>")
		listAt := strings.Index(got, `<ul class="resources-list">`)
		sectionClose := strings.LastIndex(got, "</section>")
		if headAt < 0 || listAt < headAt || listAt > sectionClose {
			t.Errorf("List not injected under the existing heading:\n%s", got)
		}
		if n := strings.Count(got, "Supplemental Learning Resources"); n != 1 {
			t.Errorf("A second resources heading was appended:\n%s", got)
		}
	})

	t.Run("NoHeadingAppendsSection", func(t *testing.T) {
		doc := "## 1. Project Summary\n\nSome summary.\n\n" +
			"**Resource 1:** A - https://a.example - first\n"
		got := markdown.Render(doc)

		if n := strings.Count(got, `<ul class="resources-list">`); n != 1 {
			t.Fatalf("Expected exactly one resources list, got %d", n)
		}
		tail := got[strings.LastIndex(got, "Supplemental Learning Resources"):]
		if !strings.Contains(tail, `<ul class="resources-list">`) {
			t.Errorf("Appended section does not contain the list:\n%s", got)
		}
	})

	t.Run("NoResourcesNoList", func(t *testing.T) {
		got := markdown.Render("## 1. Project Summary\n\nJust text.\n")
		if strings.Contains(got, "resources-list") {
			t.Errorf("Resources list rendered for a document without entries:\n%s", got)
		}
		if strings.Contains(got, "Supplemental Learning Resources") {
			t.Errorf("Resources section appended for a document without entries:\n%s", got)
		}
	})
}
