package repo

import (
	"errors"

	"gorm.io/gorm"
)

type RepoRepository interface {
	Create(r *Repository) error
	GetByID(id string) (*Repository, error)
	GetByContentHash(hash string) (*Repository, error)
	List() ([]*Repository, error)
}

type repoRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) RepoRepository {
	return &repoRepository{db: db}
}

func (r *repoRepository) Create(rec *Repository) error {
	return r.db.Create(rec).Error
}

func (r *repoRepository) GetByID(id string) (*Repository, error) {
	var rec Repository
	if err := r.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repoRepository) GetByContentHash(hash string) (*Repository, error) {
	var rec Repository
	if err := r.db.First(&rec, "content_hash = ?", hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repoRepository) List() ([]*Repository, error) {
	var recs []*Repository
	if err := r.db.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
