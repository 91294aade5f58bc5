package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultDocument []byte

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid portfolio")

// AllCategories is the pseudo category that disables the project filter
const AllCategories = "all"

// Portfolio is everything the book shows
type Portfolio struct {
	Personal       Personal        `yaml:"personal"`
	Social         Social          `yaml:"social"`
	Stats          Stats           `yaml:"stats"`
	Bio            string          `yaml:"bio"`
	Skills         []string        `yaml:"skills"`
	Experience     []Experience    `yaml:"experience"`
	Education      []Education     `yaml:"education"`
	Certifications []Certification `yaml:"certifications"`
	Projects       []Project       `yaml:"projects"`
}

// Personal holds identity and contact details
type Personal struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Location    string `yaml:"location"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	Website     string `yaml:"website"`
	Resume      string `yaml:"resume"`
}

// Social holds profile links
type Social struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Twitter  string `yaml:"twitter"`
}

// Stats are the headline numbers on the cover
type Stats struct {
	Experience string `yaml:"experience"`
	Projects   string `yaml:"projects"`
	Clients    string `yaml:"clients"`
}

// Experience is one job
type Experience struct {
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	Location     string   `yaml:"location"`
	Period       string   `yaml:"period"`
	Duration     string   `yaml:"duration"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Technologies []string `yaml:"technologies"`
}

// Education is one degree
type Education struct {
	Degree          string   `yaml:"degree"`
	Institution     string   `yaml:"institution"`
	Location        string   `yaml:"location"`
	Period          string   `yaml:"period"`
	Description     string   `yaml:"description"`
	RelevantCourses []string `yaml:"relevant_courses"`
}

// Certification is one certificate
type Certification struct {
	Name   string `yaml:"name"`
	Issuer string `yaml:"issuer"`
	Date   string `yaml:"date"`
}

// Project is one showcase entry. LongDescription is Markdown.
type Project struct {
	Title           string   `yaml:"title"`
	Subtitle        string   `yaml:"subtitle"`
	Category        string   `yaml:"category"`
	Description     string   `yaml:"description"`
	LongDescription string   `yaml:"long_description"`
	Technologies    []string `yaml:"technologies"`
	Features        []string `yaml:"features"`
	Highlights      []string `yaml:"highlights"`
	DemoURL         string   `yaml:"demo_url"`
	GitHubURL       string   `yaml:"github_url"`
	Duration        string   `yaml:"duration"`
	Team            string   `yaml:"team"`
	Status          string   `yaml:"status"`
}

// Default returns the embedded portfolio
func Default() (*Portfolio, error) {
	p, err := Parse(defaultDocument)
	if err != nil {
		return nil, fmt.Errorf("embedded portfolio: %w", err)
	}
	return p, nil
}

// Load reads the portfolio at path, or the embedded one when path is empty
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML portfolio document
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields the pages cannot render without
func (p *Portfolio) Validate() error {
	if strings.TrimSpace(p.Personal.Name) == "" {
		return fmt.Errorf("%w: personal.name is required", ErrInvalid)
	}
	for i, project := range p.Projects {
		if strings.TrimSpace(project.Title) == "" {
			return fmt.Errorf("%w: projects[%d].title is required", ErrInvalid, i)
		}
	}
	return nil
}

// Categories returns the filter options: "all" followed by every project
// category in first-seen order, compared case-insensitively
func (p *Portfolio) Categories() []string {
	seen := map[string]bool{}
	out := []string{AllCategories}
	for _, project := range p.Projects {
		c := project.Category
		key := strings.ToLower(c)
		if c == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// FilterProjects returns the projects in category, or all of them for "all"
func (p *Portfolio) FilterProjects(category string) []Project {
	if category == "" || category == AllCategories {
		return append([]Project(nil), p.Projects...)
	}
	var out []Project
	for _, project := range p.Projects {
		if strings.EqualFold(project.Category, category) {
			out = append(out, project)
		}
	}
	return out
}

// TopTechnologies counts technologies across projects, most used first
func (p *Portfolio) TopTechnologies(limit int) []string {
	counts := map[string]int{}
	for _, project := range p.Projects {
		for _, tech := range project.Technologies {
			counts[tech]++
		}
	}
	techs := make([]string, 0, len(counts))
	for tech := range counts {
		techs = append(techs, tech)
	}
	sort.Slice(techs, func(i, j int) bool {
		if counts[techs[i]] == counts[techs[j]] {
			return techs[i] < techs[j]
		}
		return counts[techs[i]] > counts[techs[j]]
	})
	if limit > 0 && len(techs) > limit {
		techs = techs[:limit]
	}
	return techs
}
