package interactive

import (
	"github.com/zamm-dev/showcase/internal/models"
)

// ProjectsLoadedMsg carries the result of reading the catalog
type ProjectsLoadedMsg struct {
	projects  []*models.Project
	languages []string
	err       error
}

// ReloadProjectsMsg asks the host to read the catalog again
type ReloadProjectsMsg struct{}
