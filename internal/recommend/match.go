// Package recommend filters the static catalogs: course recommendations
// derived from an analysis result, and free browse filters for jobs and
// courses.
package recommend

import (
	"strings"

	"github.com/minhle/cv-advisor/internal/catalog"
	"github.com/minhle/cv-advisor/internal/suggest"
)

// MatchCourses returns the courses relevant to a suggestion list. A course
// matches when its skill name and any suggestion's skill name contain each
// other case-insensitively, in either direction. The result preserves
// catalog order; there is no ranking.
func MatchCourses(suggestions []suggest.SkillSuggestion, courses []catalog.Course) []catalog.Course {
	skills := make([]string, len(suggestions))
	for i, s := range suggestions {
		skills[i] = strings.ToLower(s.Skill)
	}

	matched := make([]catalog.Course, 0, len(courses))
	for _, course := range courses {
		courseSkill := strings.ToLower(course.Skill)
		for _, skill := range skills {
			if strings.Contains(courseSkill, skill) || strings.Contains(skill, courseSkill) {
				matched = append(matched, course)
				break
			}
		}
	}
	return matched
}
