package github_test

import (
	"testing"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/github"
)

func TestParseRepoURL(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		cases := []struct {
			in    string
			owner string
			name  string
		}{
			{"https://github.com/golang/go", "golang", "go"},
			{"https://github.com/golang/go.git", "golang", "go"},
			{"https://www.github.com/chi/chi/", "chi", "chi"},
			{"https://github.com/owner/repo/tree/main/sub", "owner", "repo"},
		}
		for _, tc := range cases {
			owner, name, err := github.ParseRepoURL(tc.in)
			if err != nil {
				t.Errorf("ParseRepoURL(%q) failed: %v", tc.in, err)
				continue
			}
			if owner != tc.owner || name != tc.name {
				t.Errorf("ParseRepoURL(%q) = %s/%s, expected %s/%s", tc.in, owner, name, tc.owner, tc.name)
			}
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, in := range []string{
			"https://gitlab.com/owner/repo",
			"https://github.com/onlyowner",
			"not a url at all ://",
			"",
		} {
			if _, _, err := github.ParseRepoURL(in); err == nil {
				t.Errorf("ParseRepoURL(%q) should have failed", in)
			}
		}
	})
}
