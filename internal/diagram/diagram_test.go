package diagram

import (
	"encoding/base64"
	"strings"
	"testing"
	"unicode/utf8"
)

func decodeURI(t *testing.T, uri string) string {
	t.Helper()
	const prefix = "data:image/svg+xml;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("Not a data URI: %.60s", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("Invalid base64 payload: %v", err)
	}
	return string(raw)
}

func TestGenerate(t *testing.T) {
	cases := []struct {
		name        string
		description string
		wantTitle   string
	}{
		{"Structure", "Show the project structure and file organization", "Project Structure"},
		{"StateTree", "Describe data flow and state management", "Data Flow &amp; State"},
		{"Analogy", "Explain analogies and concepts", "Concepts &amp; Analogies"},
		{"Generic", "Something else entirely", "Code Overview"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svg := decodeURI(t, Generate(tc.description, "unused-key"))
			if !strings.Contains(svg, tc.wantTitle) {
				t.Errorf("Expected the %q template, got:\n%.200s", tc.wantTitle, svg)
			}
			if !strings.Contains(svg, tc.description) {
				t.Errorf("Description not interpolated into the template")
			}
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	// "project structure" wins even when state keywords are also present.
	svg := decodeURI(t, Generate("project structure of the state store", ""))
	if !strings.Contains(svg, "Project Structure") {
		t.Errorf("Structure keywords must take priority:\n%.200s", svg)
	}
}

func TestTruncation(t *testing.T) {
	long := strings.Repeat("x", 200) + " project structure"
	svg := decodeURI(t, Generate(long, ""))
	if strings.Contains(svg, long) {
		t.Errorf("Description was not truncated")
	}
	if !strings.Contains(svg, strings.Repeat("x", descriptionBudget)+"...") {
		t.Errorf("Truncated description missing ellipsis")
	}
}

func TestTruncationKeepsRuneBoundary(t *testing.T) {
	// 30 three-byte runes: byte 80 falls inside a rune, so the cut must
	// back up to byte 78.
	long := strings.Repeat("日", 30)
	got := truncate(long)

	if !utf8.ValidString(got) {
		t.Fatalf("Truncated description is not valid UTF-8: %q", got)
	}
	if got != strings.Repeat("日", 26)+"..." {
		t.Errorf("Wrong cut point: %q", got)
	}
}

func TestFallbackOnPanic(t *testing.T) {
	boom := func(kind, string) string { panic("template exploded") }

	uri := generateWith(boom, "whatever")
	svg := decodeURI(t, uri)
	if !strings.Contains(svg, "Diagram unavailable") {
		t.Errorf("Expected the fallback template, got:\n%.200s", svg)
	}
}
