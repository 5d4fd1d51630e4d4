package ai

// SourceFile is one repository file handed to the model.
type SourceFile struct {
	Path    string
	Content string
}

// GeneratedQuestion is the JSON shape the quiz prompt asks the model for.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Rationale     string   `json:"rationale"`
}
