// Package store holds the last CV analysis result.
//
// The store mirrors a single client-local blob: one JSON object under one
// fixed key, replaced wholesale on every write and removed on clear. There
// is exactly one writer (the submission flow), so last-write-wins is the
// full concurrency story.
package store

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/minhle/cv-advisor/internal/suggest"
)

// Key is the fixed name the analysis blob is stored under.
const Key = "cvAnalysisResult"

// PersonalInfo carries the submission context the result belongs to.
type PersonalInfo struct {
	Level    string `json:"level"`
	Position string `json:"position"`
}

// AnalysisResult is the sole persisted object: the outcome of one CV
// analysis submission.
type AnalysisResult struct {
	PersonalInfo PersonalInfo              `json:"personalInfo"`
	Suggestions  []suggest.SkillSuggestion `json:"suggestions"`
	AIFeedback   string                    `json:"aiFeedback,omitempty"`
}

// Store is a key-value holder for the last analysis result. Absence of a
// result means "no analysis yet", not an error.
type Store interface {
	// Get returns the stored result, or ok=false when none exists.
	Get() (*AnalysisResult, bool, error)
	// Set replaces the stored result.
	Set(result *AnalysisResult) error
	// Clear removes the stored result. Clearing an empty store is a no-op.
	Clear() error
}

//go:embed analysis_result.schema.json
var resultSchema []byte

// validateBlob checks a serialized result against the AnalysisResult
// schema, so a corrupt or foreign blob is detected before it is trusted.
func validateBlob(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(resultSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate analysis result: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return fmt.Errorf("invalid analysis result: %s: %s", errs[0].Field(), errs[0].Description())
		}
		return fmt.Errorf("invalid analysis result")
	}
	return nil
}

// copyResult returns a deep copy so callers cannot mutate stored state.
func copyResult(r *AnalysisResult) *AnalysisResult {
	if r == nil {
		return nil
	}
	out := *r
	out.Suggestions = make([]suggest.SkillSuggestion, len(r.Suggestions))
	copy(out.Suggestions, r.Suggestions)
	return &out
}
