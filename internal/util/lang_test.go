package util_test

import (
	"reflect"
	"testing"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/util"
)

func TestDetectLanguages(t *testing.T) {
	t.Run("OrderedAndDeduplicated", func(t *testing.T) {
		paths := []string{
			"src/index.ts",
			"src/app.tsx",
			"server/main.go",
			"server/handler.go",
			"styles/site.css",
		}
		got := util.DetectLanguages(paths)
		want := []string{"TypeScript", "Go", "CSS"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("UnknownExtensionsIgnored", func(t *testing.T) {
		got := util.DetectLanguages([]string{"README.md", "LICENSE", "data.xyz"})
		if len(got) != 0 {
			t.Errorf("Expected no languages, got %v", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := util.DetectLanguages(nil); len(got) != 0 {
			t.Errorf("Expected no languages for empty input, got %v", got)
		}
	})
}

func TestShouldIngest(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"src/main.go", true},
		{"node_modules/react/index.js", false},
		{"assets/logo.png", false},
		{"vendor/pkg/mod.go", false},
		{"docs/guide.md", true},
		{"yarn.lock", false},
	}
	for _, tc := range cases {
		if got := util.ShouldIngest(tc.path); got != tc.want {
			t.Errorf("ShouldIngest(%q) = %v, expected %v", tc.path, got, tc.want)
		}
	}
}
