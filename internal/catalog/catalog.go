// Package catalog provides the static job, course, and position catalogs.
// The data is embedded at compile time and loaded once; nothing mutates it
// at runtime.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

//go:embed data/*.json
var dataFiles embed.FS

// JobPosition represents a selectable position in the intake form.
// Value doubles as the position identifier used by the suggestion table.
type JobPosition struct {
	Value   string `json:"value" validate:"required"`
	Label   string `json:"label" validate:"required"`
	Level   string `json:"level" validate:"required"`
	Company string `json:"company" validate:"required"`
	Salary  string `json:"salary" validate:"required"`
}

// Job represents a job posting available for browsing.
type Job struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position" validate:"required"`
	Level       string `json:"level" validate:"required"`
	Salary      string `json:"salary" validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location" validate:"required"`
}

// Course represents a course offering available for browsing and
// recommendation matching.
type Course struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Skill       string `json:"skill" validate:"required"`
	Platform    string `json:"platform" validate:"required"`
	Link        string `json:"link" validate:"required,url"`
	Level       string `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Description string `json:"description,omitempty"`
}

// Catalog holds the parsed static datasets.
type Catalog struct {
	positions []JobPosition
	jobs      []Job
	courses   []Course
}

var (
	loadOnce sync.Once
	loaded   *Catalog
	loadErr  error
)

// Load parses and validates the embedded catalogs. The result is cached;
// subsequent calls return the same data.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parseAll()
	})
	return loaded, loadErr
}

// MustLoad is like Load but panics on error. The catalogs are embedded, so
// a load failure is a build defect, not a runtime condition.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load catalogs: %v", err))
	}
	return c
}

func parseAll() (*Catalog, error) {
	c := &Catalog{}
	validate := validator.New()

	if err := parseFile("data/positions.json", &c.positions); err != nil {
		return nil, err
	}
	for i, p := range c.positions {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("positions.json record %d (%s): %w", i, p.Value, err)
		}
	}

	if err := parseFile("data/jobs.json", &c.jobs); err != nil {
		return nil, err
	}
	for i, j := range c.jobs {
		if err := validate.Struct(j); err != nil {
			return nil, fmt.Errorf("jobs.json record %d (%s): %w", i, j.ID, err)
		}
	}

	if err := parseFile("data/courses.json", &c.courses); err != nil {
		return nil, err
	}
	for i, course := range c.courses {
		if err := validate.Struct(course); err != nil {
			return nil, fmt.Errorf("courses.json record %d (%s): %w", i, course.ID, err)
		}
	}

	return c, nil
}

func parseFile(name string, out any) error {
	data, err := dataFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read embedded file %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// Positions returns a copy of the position catalog.
func (c *Catalog) Positions() []JobPosition {
	out := make([]JobPosition, len(c.positions))
	copy(out, c.positions)
	return out
}

// Jobs returns a copy of the job catalog.
func (c *Catalog) Jobs() []Job {
	out := make([]Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

// Courses returns a copy of the course catalog.
func (c *Catalog) Courses() []Course {
	out := make([]Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// PositionByValue returns the catalog entry for a position identifier.
func (c *Catalog) PositionByValue(value string) (JobPosition, bool) {
	for _, p := range c.positions {
		if p.Value == value {
			return p, true
		}
	}
	return JobPosition{}, false
}
