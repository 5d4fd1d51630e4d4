package explanation

type CreateDiagramDTO struct {
	Description string `json:"description"`
	FilePath    string `json:"file_path,omitempty"`
}
