package explanation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/ai"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/config"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/diagram"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/markdown"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/repo"
)

var (
	ErrExplanationNotFound = errors.New("explanation not found")
	ErrInvalidID           = errors.New("invalid id format")
	ErrEmptyDescription    = errors.New("diagram description is empty")
)

// Sections of the fixed report template that diagrams attach to: the
// primary structure diagram under Project Summary, the data-flow diagram
// under Architecture & Data Flow, the concept map under Key Concepts.
const (
	summarySection  = 1
	dataFlowSection = 4
	conceptSection  = 5
)

type ExplanationService interface {
	Analyze(ctx context.Context, repositoryID string) (*Explanation, error)
	CreateDiagram(ctx context.Context, repositoryID string, dto CreateDiagramDTO) (*Explanation, error)
	FindByID(ctx context.Context, id string) (*Explanation, error)
	ListByRepository(ctx context.Context, repositoryID string) ([]*Explanation, error)
	RenderView(ctx context.Context, id string) (title string, body string, err error)
}

type explanationService struct {
	explanations ExplanationRepository
	repos        repo.RepoService
	provider     ai.Provider
}

func NewService(explanations ExplanationRepository, repos repo.RepoService, provider ai.Provider) ExplanationService {
	return &explanationService{explanations: explanations, repos: repos, provider: provider}
}

func (s *explanationService) Analyze(ctx context.Context, repositoryID string) (*Explanation, error) {
	log := config.WithContext(ctx)

	rec, err := s.repos.FindByID(ctx, repositoryID)
	if err != nil {
		return nil, err
	}

	files, err := s.repos.LoadFiles(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("loading repository files: %w", err)
	}

	log.WithField("languages", rec.LanguageList()).
		Infof("Generating analysis for %s (%d files)", rec.Name, len(files))
	analysis, err := s.provider.GenerateAnalysis(ctx, rec.Name, files)
	if err != nil {
		return nil, fmt.Errorf("generating analysis: %w", err)
	}

	uri := diagram.Generate("Project structure of "+rec.Name, os.Getenv("GEMINI_API_KEY"))

	expl := &Explanation{
		RepositoryID: rec.ID,
		FilePath:     PathComprehensive,
		Kind:         KindComprehensive,
		Title:        "Comprehensive Analysis: " + rec.Name,
		Content:      analysis,
		DiagramData:  uri,
	}
	if err := s.explanations.Create(expl); err != nil {
		return nil, fmt.Errorf("persisting explanation: %w", err)
	}

	log.Infof("Stored comprehensive analysis %s", expl.ID)
	return expl, nil
}

func (s *explanationService) CreateDiagram(ctx context.Context, repositoryID string, dto CreateDiagramDTO) (*Explanation, error) {
	description := strings.TrimSpace(dto.Description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	rec, err := s.repos.FindByID(ctx, repositoryID)
	if err != nil {
		return nil, err
	}

	path, kind := sentinelFor(description)
	if dto.FilePath == PathDataFlow || dto.FilePath == PathConceptMap {
		path = dto.FilePath
	}

	uri := diagram.Generate(description, os.Getenv("GEMINI_API_KEY"))

	expl := &Explanation{
		RepositoryID: rec.ID,
		FilePath:     path,
		Kind:         kind,
		Title:        description,
		Content:      description,
		DiagramData:  uri,
	}
	if err := s.explanations.Create(expl); err != nil {
		return nil, fmt.Errorf("persisting diagram explanation: %w", err)
	}
	return expl, nil
}

// sentinelFor routes a diagram description to one of the two secondary
// sentinel paths.
func sentinelFor(description string) (string, Kind) {
	d := strings.ToLower(description)
	if strings.Contains(d, "data flow") || strings.Contains(d, "state") {
		return PathDataFlow, KindFlow
	}
	return PathConceptMap, KindDiagram
}

func (s *explanationService) FindByID(ctx context.Context, id string) (*Explanation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	rec, err := s.explanations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrExplanationNotFound
	}
	return rec, nil
}

func (s *explanationService) ListByRepository(ctx context.Context, repositoryID string) ([]*Explanation, error) {
	rec, err := s.repos.FindByID(ctx, repositoryID)
	if err != nil {
		return nil, err
	}
	return s.explanations.ListByRepository(rec.ID.String())
}

// RenderView assembles the HTML fragment for one explanation: the
// markdown pipeline over the stored content, then the owning repository's
// diagrams attached to their template sections.
func (s *explanationService) RenderView(ctx context.Context, id string) (string, string, error) {
	rec, err := s.FindByID(ctx, id)
	if err != nil {
		return "", "", err
	}

	body := markdown.Render(rec.Content)

	if rec.FilePath != PathComprehensive {
		// Diagram and per-file explanations have no numbered sections;
		// the image goes after the rendered text.
		if rec.DiagramData != "" {
			body += `<div class="diagram"><img src="` + rec.DiagramData + `" alt="` + markdown.EscapeHTML(rec.Title) + `" /></div>`
		}
		return rec.Title, body, nil
	}

	body = markdown.InsertDiagramInSection(body, summarySection, rec.DiagramData, "Project structure diagram")

	repoID := rec.RepositoryID.String()
	if flow, err := s.explanations.GetByRepositoryAndPath(repoID, PathDataFlow); err == nil && flow != nil {
		body = markdown.InsertDiagramInSection(body, dataFlowSection, flow.DiagramData, flow.Title)
	}
	if concept, err := s.explanations.GetByRepositoryAndPath(repoID, PathConceptMap); err == nil && concept != nil {
		body = markdown.InsertDiagramInSection(body, conceptSection, concept.DiagramData, concept.Title)
	}

	return rec.Title, body, nil
}
