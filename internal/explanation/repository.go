package explanation

import (
	"errors"

	"gorm.io/gorm"
)

type ExplanationRepository interface {
	Create(rec *Explanation) error
	GetByID(id string) (*Explanation, error)
	GetByRepositoryAndPath(repositoryID, filePath string) (*Explanation, error)
	ListByRepository(repositoryID string) ([]*Explanation, error)
}

type explanationRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ExplanationRepository {
	return &explanationRepository{db: db}
}

func (r *explanationRepository) Create(rec *Explanation) error {
	return r.db.Create(rec).Error
}

func (r *explanationRepository) GetByID(id string) (*Explanation, error) {
	var rec Explanation
	if err := r.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *explanationRepository) GetByRepositoryAndPath(repositoryID, filePath string) (*Explanation, error) {
	var rec Explanation
	err := r.db.
		Where("repository_id = ? AND file_path = ?", repositoryID, filePath).
		Order("created_at DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *explanationRepository) ListByRepository(repositoryID string) ([]*Explanation, error) {
	var recs []*Explanation
	if err := r.db.Where("repository_id = ?", repositoryID).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
