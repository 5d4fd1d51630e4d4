package explanation

import (
	"time"

	"github.com/google/uuid"
)

// Explanation is one persisted unit of analysis output. Content holds the
// raw markdown as the model produced it; HTML is assembled at view time.
type Explanation struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RepositoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"repository_id"`
	FilePath     string    `gorm:"type:text;not null" json:"file_path"`
	Kind         Kind      `gorm:"type:text;not null" json:"kind"`
	Title        string    `gorm:"type:text;not null" json:"title"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	DiagramData  string    `gorm:"type:text" json:"diagram_data,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
