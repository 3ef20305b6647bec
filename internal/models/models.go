package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Page identifies which view of the showcase is active
type Page string

const (
	PageList Page = "list"
	PageAI   Page = "ai"
)

// Pages lists every page in toggle order
var Pages = []Page{PageList, PageAI}

// String returns the wire value of the page
func (p Page) String() string {
	return string(p)
}

// Label returns the text shown on the page toggle
func (p Page) Label() string {
	switch p {
	case PageList:
		return "List"
	case PageAI:
		return "AI"
	default:
		return string(p)
	}
}

// ParsePage converts a string into a Page
func ParsePage(s string) (Page, error) {
	switch Page(strings.ToLower(strings.TrimSpace(s))) {
	case PageList:
		return PageList, nil
	case PageAI:
		return PageAI, nil
	}
	return "", NewShowcaseError(ErrTypeValidation, fmt.Sprintf("unknown page %q", s))
}

// Project represents a single entry of the showcase catalog
type Project struct {
	ID              string    `yaml:"id" json:"id"`
	Name            string    `yaml:"name" json:"name"`
	Language        string    `yaml:"language" json:"language"`
	Description     string    `yaml:"description,omitempty" json:"description,omitempty"`
	URL             string    `yaml:"url,omitempty" json:"url,omitempty"`
	LastCommit      time.Time `yaml:"last_commit" json:"last_commit"`
	DevelopmentDays int       `yaml:"development_days" json:"development_days"`
}

// NewProject creates a new Project with a fresh ID
func NewProject(name, language string, lastCommit time.Time, developmentDays int) *Project {
	return &Project{
		ID:              uuid.New().String(),
		Name:            name,
		Language:        language,
		LastCommit:      lastCommit,
		DevelopmentDays: developmentDays,
	}
}

// Validate checks the fields a catalog entry must carry
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewShowcaseError(ErrTypeValidation, "project name cannot be empty")
	}
	if p.DevelopmentDays < 0 {
		return NewShowcaseError(ErrTypeValidation, fmt.Sprintf("development days for %q cannot be negative", p.Name))
	}
	return nil
}

// Catalog is the on-disk representation of all projects
type Catalog struct {
	Projects []*Project `yaml:"projects" json:"projects"`
}

// Ordering selects how the project list is sorted
type Ordering int

const (
	OrderByName Ordering = iota
	OrderByRecentCommit
	OrderByDevelopmentTime
)

func (o Ordering) String() string {
	switch o {
	case OrderByRecentCommit:
		return "recent commit"
	case OrderByDevelopmentTime:
		return "development time"
	default:
		return "name"
	}
}

// ParseOrdering converts a CLI flag value into an Ordering
func ParseOrdering(s string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return OrderByName, nil
	case "recent", "recent-commit", "commit":
		return OrderByRecentCommit, nil
	case "devtime", "development-time", "development":
		return OrderByDevelopmentTime, nil
	}
	return OrderByName, NewShowcaseError(ErrTypeValidation, fmt.Sprintf("unknown ordering %q", s))
}

// AllLanguages is the language filter value that matches every project
const AllLanguages = "All Langs"

// FilterState is the host-owned query applied to the catalog
type FilterState struct {
	Language string
	Ordering Ordering
}
