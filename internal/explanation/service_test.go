package explanation

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type fakeExplanationRepo struct {
	rows []*Explanation
}

func (f *fakeExplanationRepo) Create(rec *Explanation) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	f.rows = append(f.rows, rec)
	return nil
}

func (f *fakeExplanationRepo) GetByID(id string) (*Explanation, error) {
	for _, r := range f.rows {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeExplanationRepo) GetByRepositoryAndPath(repositoryID, filePath string) (*Explanation, error) {
	for _, r := range f.rows {
		if r.RepositoryID.String() == repositoryID && r.FilePath == filePath {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeExplanationRepo) ListByRepository(repositoryID string) ([]*Explanation, error) {
	var out []*Explanation
	for _, r := range f.rows {
		if r.RepositoryID.String() == repositoryID {
			out = append(out, r)
		}
	}
	return out, nil
}

const analysisDoc = "## 1. PROJECT SUMMARY\n\nA small service.\n\n## 4. ARCHITECTURE & DATA FLOW\n\nRequests flow in.\n\n## 5. KEY CONCEPTS & ANALOGIES\n\nThink of a kitchen.\n"

func TestRenderViewAttachesDiagrams(t *testing.T) {
	repoID := uuid.New()
	store := &fakeExplanationRepo{}

	comprehensive := &Explanation{
		RepositoryID: repoID,
		FilePath:     PathComprehensive,
		Kind:         KindComprehensive,
		Title:        "Comprehensive Analysis: demo",
		Content:      analysisDoc,
		DiagramData:  "data:image/svg+xml;base64,c3RydWN0dXJl",
	}
	store.Create(comprehensive)
	store.Create(&Explanation{
		RepositoryID: repoID,
		FilePath:     PathDataFlow,
		Kind:         KindFlow,
		Title:        "Data flow through the service",
		Content:      "Data flow through the service",
		DiagramData:  "data:image/svg+xml;base64,Zmxvdw==",
	})

	svc := &explanationService{explanations: store}

	title, body, err := svc.RenderView(context.Background(), comprehensive.ID.String())
	if err != nil {
		t.Fatalf("RenderView: %v", err)
	}
	if title != comprehensive.Title {
		t.Errorf("Title = %q", title)
	}

	structure := strings.Index(body, "c3RydWN0dXJl")
	flow := strings.Index(body, "Zmxvdw==")
	arch := strings.Index(body, "<h2>4.")
	if structure < 0 || flow < 0 {
		t.Fatalf("Diagram data missing:\n%s", body)
	}
	if !(structure < arch && arch < flow) {
		t.Errorf("Diagrams attached to the wrong sections:\n%s", body)
	}
}

func TestRenderViewDiagramExplanation(t *testing.T) {
	repoID := uuid.New()
	store := &fakeExplanationRepo{}

	rec := &Explanation{
		RepositoryID: repoID,
		FilePath:     PathConceptMap,
		Kind:         KindDiagram,
		Title:        "Key concepts",
		Content:      "Key concepts of the codebase",
		DiagramData:  "data:image/svg+xml;base64,Y29uY2VwdA==",
	}
	store.Create(rec)

	svc := &explanationService{explanations: store}

	_, body, err := svc.RenderView(context.Background(), rec.ID.String())
	if err != nil {
		t.Fatalf("RenderView: %v", err)
	}
	if !strings.Contains(body, "Y29uY2VwdA==") {
		t.Errorf("Diagram image missing:\n%s", body)
	}
}

func TestSentinelFor(t *testing.T) {
	if p, k := sentinelFor("Data flow between handlers"); p != PathDataFlow || k != KindFlow {
		t.Errorf("sentinelFor(data flow) = %s, %s", p, k)
	}
	if p, k := sentinelFor("Core concepts and analogies"); p != PathConceptMap || k != KindDiagram {
		t.Errorf("sentinelFor(concepts) = %s, %s", p, k)
	}
}
