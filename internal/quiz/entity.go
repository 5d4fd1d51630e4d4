package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Quiz embeds its questions as a jsonb document rather than normalized
// rows; a quiz is generated in one shot and never edited afterwards.
type Quiz struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RepositoryID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"repository_id"`
	ExplanationID *uuid.UUID     `gorm:"type:uuid;index" json:"explanation_id,omitempty"`
	Title         string         `gorm:"type:text;not null" json:"title"`
	Questions     datatypes.JSON `gorm:"type:jsonb;not null" json:"questions"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// Question is one embedded quiz entry: a prompt, exactly four options,
// the correct option's literal text, and a rationale.
type Question struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Rationale     string   `json:"rationale"`
}

type QuizAttempt struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_id"`
	SessionID string         `gorm:"type:text;not null;index" json:"session_id"`
	Answers   datatypes.JSON `gorm:"type:jsonb;not null" json:"answers"`
	Score     int            `gorm:"not null" json:"score"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
