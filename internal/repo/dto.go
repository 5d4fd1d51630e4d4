package repo

import "encoding/json"

type IngestGitHubDTO struct {
	URL string `json:"url"`
}

type IngestResponse struct {
	Repository *Repository `json:"repository"`
	Duplicate  bool        `json:"duplicate"`
}

// LanguageList decodes the jsonb languages column back into a slice.
func (r *Repository) LanguageList() []string {
	var langs []string
	_ = json.Unmarshal(r.Languages, &langs)
	return langs
}
