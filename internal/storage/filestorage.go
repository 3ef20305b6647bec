package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/zamm-dev/showcase/internal/models"
	"gopkg.in/yaml.v3"
)

// CatalogFileName is the name of the catalog file inside the storage directory
const CatalogFileName = "catalog.yaml"

// FileStorage implements YAML file based storage for the showcase catalog
type FileStorage struct {
	baseDir string
}

// NewFileStorage creates a new file-based storage instance
func NewFileStorage(baseDir string) *FileStorage {
	return &FileStorage{
		baseDir: baseDir,
	}
}

// BaseDir returns the base directory path
func (fs *FileStorage) BaseDir() string {
	return fs.baseDir
}

// CatalogPath returns the path of the catalog file
func (fs *FileStorage) CatalogPath() string {
	return filepath.Join(fs.baseDir, CatalogFileName)
}

// InitializeStorage creates the storage directory and an empty catalog
func (fs *FileStorage) InitializeStorage() error {
	if err := os.MkdirAll(fs.baseDir, 0755); err != nil {
		return models.NewShowcaseErrorWithCause(models.ErrTypeStorage, fmt.Sprintf("failed to create directory %s", fs.baseDir), err)
	}

	if _, err := os.Stat(fs.CatalogPath()); errors.Is(err, os.ErrNotExist) {
		return fs.writeCatalog(&models.Catalog{Projects: []*models.Project{}})
	}
	return nil
}

// ListProjects returns every project in file order. A missing catalog is
// treated as empty.
func (fs *FileStorage) ListProjects() ([]*models.Project, error) {
	catalog, err := fs.readCatalog()
	if err != nil {
		return nil, err
	}
	return catalog.Projects, nil
}

// ReadProject returns the project with the given ID
func (fs *FileStorage) ReadProject(id string) (*models.Project, error) {
	catalog, err := fs.readCatalog()
	if err != nil {
		return nil, err
	}
	for _, project := range catalog.Projects {
		if project.ID == id {
			return project, nil
		}
	}
	return nil, models.NewShowcaseError(models.ErrTypeNotFound, fmt.Sprintf("project not found: %s", id))
}

// WriteProject inserts the project, or replaces the one with the same ID.
// Projects without an ID get a fresh one.
func (fs *FileStorage) WriteProject(project *models.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	if project.ID == "" {
		project.ID = uuid.New().String()
	}

	catalog, err := fs.readCatalog()
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range catalog.Projects {
		if existing.ID == project.ID {
			catalog.Projects[i] = project
			replaced = true
			break
		}
	}
	if !replaced {
		catalog.Projects = append(catalog.Projects, project)
	}

	return fs.writeCatalog(catalog)
}

// DeleteProject removes the project with the given ID
func (fs *FileStorage) DeleteProject(id string) error {
	catalog, err := fs.readCatalog()
	if err != nil {
		return err
	}

	kept := catalog.Projects[:0]
	found := false
	for _, project := range catalog.Projects {
		if project.ID == id {
			found = true
			continue
		}
		kept = append(kept, project)
	}
	if !found {
		return models.NewShowcaseError(models.ErrTypeNotFound, fmt.Sprintf("project not found: %s", id))
	}
	catalog.Projects = kept

	return fs.writeCatalog(catalog)
}

func (fs *FileStorage) readCatalog() (*models.Catalog, error) {
	data, err := os.ReadFile(fs.CatalogPath())
	if errors.Is(err, os.ErrNotExist) {
		return &models.Catalog{}, nil
	}
	if err != nil {
		return nil, models.NewShowcaseErrorWithCause(models.ErrTypeStorage, "failed to read catalog", err)
	}

	var catalog models.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, models.NewShowcaseErrorWithCause(models.ErrTypeStorage, fmt.Sprintf("failed to parse catalog %s", fs.CatalogPath()), err)
	}
	return &catalog, nil
}

// writeCatalog replaces the catalog file through a temp file so readers never
// see a partial write
func (fs *FileStorage) writeCatalog(catalog *models.Catalog) error {
	data, err := yaml.Marshal(catalog)
	if err != nil {
		return models.NewShowcaseErrorWithCause(models.ErrTypeStorage, "failed to encode catalog", err)
	}

	if err := os.MkdirAll(fs.baseDir, 0755); err != nil {
		return models.NewShowcaseErrorWithCause(models.ErrTypeStorage, fmt.Sprintf("failed to create directory %s", fs.baseDir), err)
	}

	tmp, err := os.CreateTemp(fs.baseDir, ".catalog-*.yaml")
	if err != nil {
		return models.NewShowcaseErrorWithCause(models.ErrTypeStorage, "failed to create temp catalog", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath) // no-op after a successful rename
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return models.NewShowcaseErrorWithCause(models.ErrTypeStorage, "failed to write catalog", err)
	}
	if err := tmp.Close(); err != nil {
		return models.NewShowcaseErrorWithCause(models.ErrTypeStorage, "failed to write catalog", err)
	}
	if err := os.Rename(tmpPath, fs.CatalogPath()); err != nil {
		return models.NewShowcaseErrorWithCause(models.ErrTypeStorage, "failed to replace catalog", err)
	}
	return nil
}

// SeedProjects returns the sample catalog written by `showcase init --sample`
func SeedProjects(now time.Time) []*models.Project {
	day := 24 * time.Hour
	seed := []struct {
		name, language, description string
		ago                         time.Duration
		days                        int
	}{
		{"ledger", "Go", "Double-entry bookkeeping service", 2 * day, 120},
		{"tidepool", "Rust", "Embedded time-series store", 9 * day, 240},
		{"quill", "TypeScript", "Markdown notes with live preview", 1 * day, 45},
		{"harbor", "Go", "Container registry mirror", 30 * day, 300},
		{"sprout", "Python", "Garden planner with weather hints", 5 * day, 60},
		{"ember", "Rust", "Tiny 2D game engine", 14 * day, 180},
	}

	projects := make([]*models.Project, 0, len(seed))
	for _, s := range seed {
		p := models.NewProject(s.name, s.language, now.Add(-s.ago).UTC().Truncate(time.Second), s.days)
		p.Description = s.description
		projects = append(projects, p)
	}
	return projects
}
