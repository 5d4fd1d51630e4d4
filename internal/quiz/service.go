package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/ai"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/config"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/explanation"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/repo"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	ErrInvalidID    = errors.New("invalid id format")
	ErrNoQuestions  = errors.New("generation produced no questions")
	ErrNoAnalysis   = errors.New("repository has no comprehensive analysis")
)

type QuizService interface {
	GenerateQuiz(ctx context.Context, repositoryID string, dto GenerateQuizDTO) (*Quiz, error)
	FindByID(ctx context.Context, id string) (*Quiz, error)
	ListByRepository(ctx context.Context, repositoryID string) ([]*Quiz, error)
	SubmitAttempt(ctx context.Context, quizID, sessionID string, dto SubmitAttemptDTO) (*QuizAttempt, error)
	ListAttempts(ctx context.Context, quizID, sessionID string) ([]*QuizAttempt, error)
}

type quizService struct {
	quizzes      QuizRepository
	explanations explanation.ExplanationRepository
	repos        repo.RepoService
	provider     ai.Provider
}

func NewService(quizzes QuizRepository, explanations explanation.ExplanationRepository, repos repo.RepoService, provider ai.Provider) QuizService {
	return &quizService{
		quizzes:      quizzes,
		explanations: explanations,
		repos:        repos,
		provider:     provider,
	}
}

func (s *quizService) GenerateQuiz(ctx context.Context, repositoryID string, dto GenerateQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx)

	rec, err := s.repos.FindByID(ctx, repositoryID)
	if err != nil {
		return nil, err
	}

	analysis, err := s.explanations.GetByRepositoryAndPath(rec.ID.String(), explanation.PathComprehensive)
	if err != nil {
		return nil, fmt.Errorf("looking up analysis: %w", err)
	}
	if analysis == nil {
		return nil, ErrNoAnalysis
	}

	generated, err := s.provider.GenerateQuestions(ctx, analysis.Content, dto.Count)
	if err != nil {
		return nil, fmt.Errorf("generating questions: %w", err)
	}
	if len(generated) == 0 {
		return nil, ErrNoQuestions
	}

	questions := make([]Question, 0, len(generated))
	for _, g := range generated {
		questions = append(questions, Question{
			ID:            uuid.NewString(),
			Prompt:        g.Question,
			Options:       g.Options,
			CorrectAnswer: g.CorrectAnswer,
			Rationale:     g.Rationale,
		})
	}

	payload, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("encoding questions: %w", err)
	}

	title := dto.Title
	if title == "" {
		title = "Interview Quiz: " + rec.Name
	}

	quiz := &Quiz{
		RepositoryID:  rec.ID,
		ExplanationID: &analysis.ID,
		Title:         title,
		Questions:     payload,
	}
	if err := s.quizzes.Create(quiz); err != nil {
		return nil, fmt.Errorf("persisting quiz: %w", err)
	}

	log.Infof("Generated quiz %s with %d questions", quiz.ID, len(questions))
	return quiz, nil
}

func (s *quizService) FindByID(ctx context.Context, id string) (*Quiz, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	rec, err := s.quizzes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrQuizNotFound
	}
	return rec, nil
}

func (s *quizService) ListByRepository(ctx context.Context, repositoryID string) ([]*Quiz, error) {
	rec, err := s.repos.FindByID(ctx, repositoryID)
	if err != nil {
		return nil, err
	}
	return s.quizzes.ListByRepository(rec.ID.String())
}

func (s *quizService) SubmitAttempt(ctx context.Context, quizID, sessionID string, dto SubmitAttemptDTO) (*QuizAttempt, error) {
	quiz, err := s.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(quiz.Questions, &questions); err != nil {
		return nil, fmt.Errorf("decoding questions: %w", err)
	}

	answers, err := json.Marshal(dto.Answers)
	if err != nil {
		return nil, fmt.Errorf("encoding answers: %w", err)
	}

	attempt := &QuizAttempt{
		QuizID:    quiz.ID,
		SessionID: sessionID,
		Answers:   answers,
		Score:     scoreAttempt(questions, dto.Answers),
	}
	if err := s.quizzes.CreateAttempt(attempt); err != nil {
		return nil, fmt.Errorf("persisting attempt: %w", err)
	}
	return attempt, nil
}

func (s *quizService) ListAttempts(ctx context.Context, quizID, sessionID string) ([]*QuizAttempt, error) {
	quiz, err := s.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return s.quizzes.ListAttempts(quiz.ID.String(), sessionID)
}

// scoreAttempt compares submitted answers against the correct option text
// by exact string equality. A quiz with zero questions scores 0.
func scoreAttempt(questions []Question, answers map[string]string) int {
	if len(questions) == 0 {
		return 0
	}
	correct := 0
	for _, q := range questions {
		if answers[q.ID] == q.CorrectAnswer {
			correct++
		}
	}
	return int(math.Round(100 * float64(correct) / float64(len(questions))))
}
