package quiz

type GenerateQuizDTO struct {
	Title string `json:"title,omitempty"`
	Count int    `json:"count,omitempty"`
}

type SubmitAttemptDTO struct {
	Answers map[string]string `json:"answers"`
}
