package storage

import "github.com/zamm-dev/showcase/internal/models"

// Storage defines the interface for all catalog storage operations
type Storage interface {
	InitializeStorage() error

	ListProjects() ([]*models.Project, error)
	ReadProject(id string) (*models.Project, error)
	WriteProject(project *models.Project) error
	DeleteProject(id string) error
}
