// Package suggest provides the skill-suggestion table and the feedback
// generator for CV analysis.
//
// The suggestions are a fixed mapping from position identifier to a canned
// list of skill gaps. The uploaded CV is validated elsewhere but its content
// is never inspected; nothing about the candidate influences the result.
// This is the documented scope of the product, not a missing feature.
package suggest

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

// Suggestion types.
const (
	TypeTechnical = "technical"
	TypeSoftSkill = "soft-skill"
)

// Suggestion levels, from weakest to strongest.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// SkillSuggestion is a single skill the candidate should improve.
// Instances are immutable once produced.
type SkillSuggestion struct {
	Skill string `json:"skill"`
	Type  string `json:"type"`
	Level string `json:"level"`
}

//go:embed data/table.json
var tableFiles embed.FS

type suggestionTable struct {
	Labels      map[string]string            `json:"labels"`
	Suggestions map[string][]SkillSuggestion `json:"suggestions"`
}

var (
	tableOnce sync.Once
	table     *suggestionTable
)

func loadTable() *suggestionTable {
	tableOnce.Do(func() {
		data, err := tableFiles.ReadFile("data/table.json")
		if err != nil {
			panic(fmt.Sprintf("failed to read suggestion table: %v", err))
		}
		var t suggestionTable
		if err := json.Unmarshal(data, &t); err != nil {
			panic(fmt.Sprintf("failed to parse suggestion table: %v", err))
		}
		table = &t
	})
	return table
}

// Fallback returns the generic suggestion set used for positions with no
// table entry.
func Fallback() []SkillSuggestion {
	return []SkillSuggestion{
		{Skill: "Communication", Type: TypeSoftSkill, Level: LevelMedium},
		{Skill: "Problem Solving", Type: TypeSoftSkill, Level: LevelLow},
		{Skill: "Technical Skills", Type: TypeTechnical, Level: LevelMedium},
	}
}

// Lookup returns the registered suggestion list for a position identifier,
// in table order, or the generic fallback when the identifier is unknown.
// Unknown identifiers are legal input, not an error. The returned slice is
// a copy; callers may not reach the table through it.
func Lookup(position string) []SkillSuggestion {
	entries, ok := loadTable().Suggestions[position]
	if !ok {
		return Fallback()
	}
	out := make([]SkillSuggestion, len(entries))
	copy(out, entries)
	return out
}

// Known reports whether a position identifier has a table entry.
func Known(position string) bool {
	_, ok := loadTable().Suggestions[position]
	return ok
}

// PositionLabel resolves the human-readable label for a position
// identifier, defaulting to "Developer" when unknown.
func PositionLabel(position string) string {
	if label, ok := loadTable().Labels[position]; ok {
		return label
	}
	return "Developer"
}
