package recommend

import (
	"strings"

	"github.com/minhle/cv-advisor/internal/catalog"
)

// FilterAll is the sentinel meaning "no constraint" for an equality filter.
// The zero value of a filter (empty strings) is equivalent.
const FilterAll = "all"

// CourseFilter holds the browse filters for the course catalog. All active
// filters combine with logical AND; the zero value matches everything.
type CourseFilter struct {
	Search   string
	Level    string
	Platform string
}

// Matches reports whether a course passes the filter.
func (f CourseFilter) Matches(c catalog.Course) bool {
	if !matchesSearch(f.Search, c.Name, c.Skill, c.Description) {
		return false
	}
	if !matchesField(f.Level, c.Level) {
		return false
	}
	return matchesField(f.Platform, c.Platform)
}

// JobFilter holds the browse filters for the job catalog. All active
// filters combine with logical AND; the zero value matches everything.
type JobFilter struct {
	Search   string
	Position string
	Level    string
	Salary   string
}

// Matches reports whether a job passes the filter.
func (f JobFilter) Matches(j catalog.Job) bool {
	if !matchesSearch(f.Search, j.Title, j.Company, j.Description) {
		return false
	}
	if !matchesField(f.Position, j.Position) {
		return false
	}
	if !matchesField(f.Level, j.Level) {
		return false
	}
	return matchesField(f.Salary, j.Salary)
}

// FilterCourses returns the courses passing the filter, in catalog order.
func FilterCourses(courses []catalog.Course, f CourseFilter) []catalog.Course {
	out := make([]catalog.Course, 0, len(courses))
	for _, c := range courses {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// FilterJobs returns the jobs passing the filter, in catalog order.
func FilterJobs(jobs []catalog.Job, f JobFilter) []catalog.Job {
	out := make([]catalog.Job, 0, len(jobs))
	for _, j := range jobs {
		if f.Matches(j) {
			out = append(out, j)
		}
	}
	return out
}

// matchesSearch reports whether any field contains the search term,
// case-insensitively. An empty term matches everything.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// matchesField reports whether a field equals the filter value, treating
// empty and the "all" sentinel as no constraint.
func matchesField(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}

// CourseLevels returns the distinct course levels in first-seen order.
func CourseLevels(courses []catalog.Course) []string {
	var out []string
	for _, c := range courses {
		out = appendDistinct(out, c.Level)
	}
	return out
}

// CoursePlatforms returns the distinct course platforms in first-seen order.
func CoursePlatforms(courses []catalog.Course) []string {
	var out []string
	for _, c := range courses {
		out = appendDistinct(out, c.Platform)
	}
	return out
}

// JobPositions returns the distinct job positions in first-seen order.
func JobPositions(jobs []catalog.Job) []string {
	var out []string
	for _, j := range jobs {
		out = appendDistinct(out, j.Position)
	}
	return out
}

// JobLevels returns the distinct job levels in first-seen order.
func JobLevels(jobs []catalog.Job) []string {
	var out []string
	for _, j := range jobs {
		out = appendDistinct(out, j.Level)
	}
	return out
}

// JobSalaries returns the distinct job salary ranges in first-seen order.
func JobSalaries(jobs []catalog.Job) []string {
	var out []string
	for _, j := range jobs {
		out = appendDistinct(out, j.Salary)
	}
	return out
}

func appendDistinct(values []string, v string) []string {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}
