package quiz

import (
	"errors"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(rec *Quiz) error
	GetByID(id string) (*Quiz, error)
	ListByRepository(repositoryID string) ([]*Quiz, error)
	CreateAttempt(rec *QuizAttempt) error
	ListAttempts(quizID, sessionID string) ([]*QuizAttempt, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(rec *Quiz) error {
	return r.db.Create(rec).Error
}

func (r *quizRepository) GetByID(id string) (*Quiz, error) {
	var rec Quiz
	if err := r.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *quizRepository) ListByRepository(repositoryID string) ([]*Quiz, error) {
	var recs []*Quiz
	if err := r.db.Where("repository_id = ?", repositoryID).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *quizRepository) CreateAttempt(rec *QuizAttempt) error {
	return r.db.Create(rec).Error
}

func (r *quizRepository) ListAttempts(quizID, sessionID string) ([]*QuizAttempt, error) {
	var recs []*QuizAttempt
	err := r.db.
		Where("quiz_id = ? AND session_id = ?", quizID, sessionID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
