package services

import (
	"sort"
	"strings"

	"github.com/zamm-dev/showcase/internal/models"
	"github.com/zamm-dev/showcase/internal/storage"
)

// ShowcaseService defines the catalog operations the showcase needs
type ShowcaseService interface {
	ListProjects() ([]*models.Project, error)
	GetProject(id string) (*models.Project, error)
	Languages() ([]string, error)
	Query(filter models.FilterState) ([]*models.Project, error)
	Insights(projects []*models.Project) Insights

	AddProject(project *models.Project) error
	RemoveProject(id string) error
}

// LanguageCount is the number of projects written in one language
type LanguageCount struct {
	Language string `json:"language"`
	Projects int    `json:"projects"`
}

// Insights summarises a set of projects for the AI page
type Insights struct {
	Total                  int             `json:"total"`
	Languages              []LanguageCount `json:"languages"`
	TotalDevelopmentDays   int             `json:"total_development_days"`
	AverageDevelopmentDays float64         `json:"average_development_days"`
	MostRecent             *models.Project `json:"most_recent,omitempty"`
	LongestRunning         *models.Project `json:"longest_running,omitempty"`
}

// showcaseService implements the ShowcaseService interface
type showcaseService struct {
	storage storage.Storage
}

// NewShowcaseService creates a new ShowcaseService instance
func NewShowcaseService(storage storage.Storage) ShowcaseService {
	return &showcaseService{
		storage: storage,
	}
}

// ListProjects returns all projects sorted by name
func (s *showcaseService) ListProjects() ([]*models.Project, error) {
	projects, err := s.storage.ListProjects()
	if err != nil {
		return nil, err
	}
	sortProjects(projects, models.OrderByName)
	return projects, nil
}

// Languages returns the distinct project languages in the order they first
// appear in the name-sorted catalog
func (s *showcaseService) Languages() ([]string, error) {
	projects, err := s.ListProjects()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var languages []string
	for _, project := range projects {
		lang := strings.TrimSpace(project.Language)
		key := languageKey(lang)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		languages = append(languages, lang)
	}
	return languages, nil
}

// Query applies the language filter and then the ordering
func (s *showcaseService) Query(filter models.FilterState) ([]*models.Project, error) {
	projects, err := s.ListProjects()
	if err != nil {
		return nil, err
	}
	return FilterProjects(projects, filter), nil
}

// FilterProjects returns the projects matching filter in the requested order.
// The input slice is left untouched.
func FilterProjects(projects []*models.Project, filter models.FilterState) []*models.Project {
	result := make([]*models.Project, 0, len(projects))
	for _, project := range projects {
		if matchesLanguage(project, filter.Language) {
			result = append(result, project)
		}
	}
	sortProjects(result, filter.Ordering)
	return result
}

func matchesLanguage(project *models.Project, language string) bool {
	if language == "" || language == models.AllLanguages {
		return true
	}
	return languageKey(project.Language) == languageKey(language)
}

// languageKey is the case-insensitive identity of a language name, so "go"
// and "Go" are one language everywhere
func languageKey(language string) string {
	return strings.ToLower(strings.TrimSpace(language))
}

func sortProjects(projects []*models.Project, ordering models.Ordering) {
	byName := func(i, j int) bool {
		return strings.ToLower(projects[i].Name) < strings.ToLower(projects[j].Name)
	}

	switch ordering {
	case models.OrderByRecentCommit:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].LastCommit.After(projects[j].LastCommit)
		})
	case models.OrderByDevelopmentTime:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].DevelopmentDays > projects[j].DevelopmentDays
		})
	default:
		sort.SliceStable(projects, byName)
	}
}

// Insights computes catalog statistics for the given projects
func (s *showcaseService) Insights(projects []*models.Project) Insights {
	var insights Insights
	insights.Total = len(projects)

	counts := make(map[string]int)
	var order []string
	spelling := make(map[string]string)
	for _, project := range projects {
		key := languageKey(project.Language)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
			spelling[key] = strings.TrimSpace(project.Language)
		}
		counts[key]++
		insights.TotalDevelopmentDays += project.DevelopmentDays

		if insights.MostRecent == nil || project.LastCommit.After(insights.MostRecent.LastCommit) {
			insights.MostRecent = project
		}
		if insights.LongestRunning == nil || project.DevelopmentDays > insights.LongestRunning.DevelopmentDays {
			insights.LongestRunning = project
		}
	}

	for _, lang := range order {
		insights.Languages = append(insights.Languages, LanguageCount{Language: spelling[lang], Projects: counts[lang]})
	}
	sort.SliceStable(insights.Languages, func(i, j int) bool {
		return insights.Languages[i].Projects > insights.Languages[j].Projects
	})

	if insights.Total > 0 {
		insights.AverageDevelopmentDays = float64(insights.TotalDevelopmentDays) / float64(insights.Total)
	}
	return insights
}

// GetProject returns a single project by ID
func (s *showcaseService) GetProject(id string) (*models.Project, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.NewShowcaseError(models.ErrTypeValidation, "project ID cannot be empty")
	}
	return s.storage.ReadProject(strings.TrimSpace(id))
}

// AddProject validates and stores a project
func (s *showcaseService) AddProject(project *models.Project) error {
	project.Name = strings.TrimSpace(project.Name)
	project.Language = strings.TrimSpace(project.Language)
	if err := project.Validate(); err != nil {
		return err
	}
	return s.storage.WriteProject(project)
}

// RemoveProject deletes a project by ID
func (s *showcaseService) RemoveProject(id string) error {
	if strings.TrimSpace(id) == "" {
		return models.NewShowcaseError(models.ErrTypeValidation, "project ID cannot be empty")
	}
	return s.storage.DeleteProject(id)
}
