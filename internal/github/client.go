// Package github fetches repository snapshots through the GitHub REST API.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"golang.org/x/oauth2"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/config"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/util"
)

const (
	defaultBaseURL = "https://api.github.com"

	// Files above this size are skipped rather than fetched; huge blobs
	// add nothing to the analysis prompt.
	maxFileSize = 256 * 1024

	// Cap on fetched files per repository.
	maxFiles = 200
)

var ErrNotGitHubURL = errors.New("not a recognizable github repository url")

type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient builds a REST client. When GITHUB_TOKEN is set the client
// authenticates with a static oauth2 token source, which raises the API
// rate limit and allows private repositories.
func NewClient(ctx context.Context) *Client {
	httpClient := http.DefaultClient
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}
	return &Client{http: httpClient, baseURL: defaultBaseURL}
}

// ParseRepoURL extracts owner and name from a github.com repository URL.
func ParseRepoURL(raw string) (owner, name string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", ErrNotGitHubURL
	}
	if u.Host != "github.com" && u.Host != "www.github.com" {
		return "", "", ErrNotGitHubURL
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrNotGitHubURL
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}

// FetchRepository pulls the default-branch tree and the text file contents
// of a repository.
func (c *Client) FetchRepository(ctx context.Context, owner, name string) (*Fetched, error) {
	log := config.WithContext(ctx)

	var meta repoMeta
	if err := c.getJSON(ctx, fmt.Sprintf("/repos/%s/%s", owner, name), &meta); err != nil {
		return nil, fmt.Errorf("fetching repository metadata: %w", err)
	}

	var tree treeResponse
	path := fmt.Sprintf("/repos/%s/%s/git/trees/%s?recursive=1", owner, name, meta.DefaultBranch)
	if err := c.getJSON(ctx, path, &tree); err != nil {
		return nil, fmt.Errorf("fetching repository tree: %w", err)
	}
	if tree.Truncated {
		log.Warnf("Tree listing for %s/%s is truncated; ingesting a partial snapshot", owner, name)
	}

	fetched := &Fetched{
		Name:      meta.Name,
		FullName:  meta.FullName,
		URL:       meta.HTMLURL,
		Branch:    meta.DefaultBranch,
		Truncated: tree.Truncated,
	}

	for _, entry := range tree.Tree {
		if entry.Type != "blob" || entry.Size > maxFileSize || !util.ShouldIngest(entry.Path) {
			continue
		}
		if len(fetched.Files) >= maxFiles {
			log.Warnf("Reached the %d-file cap for %s/%s", maxFiles, owner, name)
			break
		}

		content, err := c.fetchBlob(ctx, owner, name, entry.SHA)
		if err != nil {
			log.WithError(err).Warnf("Skipping blob %s", entry.Path)
			continue
		}
		fetched.Files = append(fetched.Files, File{Path: entry.Path, Content: content})
	}

	return fetched, nil
}

func (c *Client) fetchBlob(ctx context.Context, owner, name, sha string) ([]byte, error) {
	var blob blobResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/repos/%s/%s/git/blobs/%s", owner, name, sha), &blob); err != nil {
		return nil, err
	}
	if blob.Encoding != "base64" {
		return []byte(blob.Content), nil
	}
	return base64.StdEncoding.DecodeString(strings.ReplaceAll(blob.Content, "\n", ""))
}

func (c *Client) getJSON(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api returned %d for %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
