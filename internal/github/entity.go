package github

// Minimal shapes from the GitHub REST API; only the fields the ingestion
// flow reads.

type repoMeta struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	HTMLURL       string `json:"html_url"`
}

type treeResponse struct {
	SHA       string      `json:"sha"`
	Truncated bool        `json:"truncated"`
	Tree      []treeEntry `json:"tree"`
}

type treeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	SHA  string `json:"sha"`
}

type blobResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// File is one fetched repository file.
type File struct {
	Path    string
	Content []byte
}

// Fetched is a repository snapshot pulled from the GitHub API.
type Fetched struct {
	Name      string
	FullName  string
	URL       string
	Branch    string
	Truncated bool
	Files     []File
}
