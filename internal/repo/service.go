package repo

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/ai"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/config"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/github"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/storage"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/util"
)

var (
	ErrRepoNotFound = errors.New("repository not found")
	ErrEmptyArchive = errors.New("archive contains no ingestible files")
	ErrInvalidID    = errors.New("invalid id format")
)

const (
	maxEntrySize = 256 * 1024
	maxEntries   = 200
)

type ingestedFile struct {
	Path    string
	Content []byte
}

type RepoService interface {
	IngestZip(ctx context.Context, name string, zr *zip.Reader) (*Repository, bool, error)
	IngestGitHub(ctx context.Context, url string) (*Repository, bool, error)
	FindByID(ctx context.Context, id string) (*Repository, error)
	List(ctx context.Context) ([]*Repository, error)
	LoadFiles(ctx context.Context, rec *Repository) ([]ai.SourceFile, error)
}

type repoService struct {
	repo   RepoRepository
	store  storage.Provider
	github *github.Client
}

func NewService(repo RepoRepository, store storage.Provider, gh *github.Client) RepoService {
	return &repoService{repo: repo, store: store, github: gh}
}

func (s *repoService) IngestZip(ctx context.Context, name string, zr *zip.Reader) (*Repository, bool, error) {
	log := config.WithContext(ctx)

	var files []ingestedFile
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || f.UncompressedSize64 > maxEntrySize || !util.ShouldIngest(f.Name) {
			continue
		}
		// Entry names become storage keys; absolute or dot-dot paths must
		// never leave the repository's blob prefix.
		if !filepath.IsLocal(filepath.FromSlash(f.Name)) {
			log.Warnf("Skipping zip entry with unsafe path %s", f.Name)
			continue
		}
		if len(files) >= maxEntries {
			log.Warnf("Reached the %d-file cap while unpacking %s", maxEntries, name)
			break
		}

		rc, err := f.Open()
		if err != nil {
			log.WithError(err).Warnf("Skipping unreadable zip entry %s", f.Name)
			continue
		}
		content, err := io.ReadAll(io.LimitReader(rc, maxEntrySize))
		rc.Close()
		if err != nil {
			log.WithError(err).Warnf("Skipping zip entry %s", f.Name)
			continue
		}
		files = append(files, ingestedFile{Path: f.Name, Content: content})
	}

	return s.ingest(ctx, name, SourceUpload, nil, stripCommonRoot(files))
}

func (s *repoService) IngestGitHub(ctx context.Context, url string) (*Repository, bool, error) {
	owner, name, err := github.ParseRepoURL(url)
	if err != nil {
		return nil, false, err
	}

	fetched, err := s.github.FetchRepository(ctx, owner, name)
	if err != nil {
		return nil, false, err
	}

	files := make([]ingestedFile, 0, len(fetched.Files))
	for _, f := range fetched.Files {
		files = append(files, ingestedFile{Path: f.Path, Content: f.Content})
	}

	return s.ingest(ctx, fetched.FullName, SourceGitHub, &fetched.URL, files)
}

func (s *repoService) ingest(ctx context.Context, name string, kind SourceKind, sourceURL *string, files []ingestedFile) (*Repository, bool, error) {
	log := config.WithContext(ctx)

	if len(files) == 0 {
		return nil, false, ErrEmptyArchive
	}

	hash := contentHash(files)
	if existing, err := s.repo.GetByContentHash(hash); err != nil {
		return nil, false, err
	} else if existing != nil {
		log.Infof("Repository %s already ingested as %s", name, existing.ID)
		return existing, true, nil
	}

	id := uuid.New()
	prefix := "repos/" + id.String()

	paths := make([]string, 0, len(files))
	var totalSize int64
	for _, f := range files {
		paths = append(paths, f.Path)
		totalSize += int64(len(f.Content))

		key := prefix + "/files/" + f.Path
		if err := s.store.Upload(ctx, key, bytes.NewReader(f.Content), int64(len(f.Content)), "text/plain; charset=utf-8"); err != nil {
			return nil, false, fmt.Errorf("storing %s: %w", f.Path, err)
		}
	}

	manifest, err := json.Marshal(paths)
	if err != nil {
		return nil, false, err
	}
	if err := s.store.Upload(ctx, prefix+"/manifest.json", bytes.NewReader(manifest), int64(len(manifest)), "application/json"); err != nil {
		return nil, false, fmt.Errorf("storing manifest: %w", err)
	}

	languages, err := json.Marshal(util.DetectLanguages(paths))
	if err != nil {
		return nil, false, err
	}

	rec := &Repository{
		ID:            id,
		Name:          name,
		SourceKind:    kind,
		SourceURL:     sourceURL,
		FileCount:     len(files),
		TotalSize:     totalSize,
		Languages:     datatypes.JSON(languages),
		StoragePrefix: prefix,
		ContentHash:   hash,
	}
	if err := s.repo.Create(rec); err != nil {
		return nil, false, err
	}

	log.Infof("Ingested repository %s: %d files, %d bytes", name, rec.FileCount, rec.TotalSize)
	return rec, false, nil
}

func (s *repoService) FindByID(ctx context.Context, id string) (*Repository, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrRepoNotFound
	}
	return rec, nil
}

func (s *repoService) List(ctx context.Context) ([]*Repository, error) {
	return s.repo.List()
}

// LoadFiles reads the stored snapshot back for analysis.
func (s *repoService) LoadFiles(ctx context.Context, rec *Repository) ([]ai.SourceFile, error) {
	log := config.WithContext(ctx)

	mr, err := s.store.Get(ctx, rec.StoragePrefix+"/manifest.json")
	if err != nil {
		return nil, fmt.Errorf("loading manifest: %w", err)
	}
	defer mr.Close()

	var paths []string
	if err := json.NewDecoder(mr).Decode(&paths); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	files := make([]ai.SourceFile, 0, len(paths))
	for _, p := range paths {
		rc, err := s.store.Get(ctx, rec.StoragePrefix+"/files/"+p)
		if err != nil {
			log.WithError(err).Warnf("Skipping missing blob %s", p)
			continue
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, ai.SourceFile{Path: p, Content: string(content)})
	}
	return files, nil
}

// contentHash fingerprints the file set for duplicate detection,
// independent of upload order.
func contentHash(files []ingestedFile) string {
	sorted := make([]ingestedFile, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	h := sha256.New()
	for _, f := range sorted {
		h.Write([]byte(f.Path))
		h.Write([]byte{0})
		h.Write(f.Content)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// stripCommonRoot drops the single top-level directory zip archives
// exported from GitHub wrap everything in, but only when every entry
// shares it.
func stripCommonRoot(files []ingestedFile) []ingestedFile {
	if len(files) == 0 {
		return files
	}

	first := files[0].Path
	i := strings.IndexByte(first, '/')
	if i <= 0 {
		return files
	}
	root := first[:i+1]
	for _, f := range files {
		if !strings.HasPrefix(f.Path, root) {
			return files
		}
	}

	stripped := make([]ingestedFile, 0, len(files))
	for _, f := range files {
		rest := strings.TrimPrefix(f.Path, root)
		if rest == "" {
			continue
		}
		stripped = append(stripped, ingestedFile{Path: rest, Content: f.Content})
	}
	return stripped
}
