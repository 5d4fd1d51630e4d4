package repo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Repository is one ingested codebase. Rows are immutable after creation;
// only the duplicate-detection bookkeeping (ContentHash lookups) touches
// them again.
type Repository struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string         `gorm:"type:text;not null" json:"name"`
	SourceKind    SourceKind     `gorm:"type:text;not null" json:"source_kind"`
	SourceURL     *string        `gorm:"type:text" json:"source_url,omitempty"`
	FileCount     int            `gorm:"not null;default:0" json:"file_count"`
	TotalSize     int64          `gorm:"not null;default:0" json:"total_size"`
	Languages     datatypes.JSON `gorm:"type:jsonb;not null" json:"languages"`
	StoragePrefix string         `gorm:"type:text;not null" json:"storage_prefix"`
	ContentHash   string         `gorm:"type:text;not null;uniqueIndex" json:"-"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
