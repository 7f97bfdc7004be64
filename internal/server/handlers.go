package server

import (
	"log"
	"net/http"
	"time"

	"github.com/minhle/cv-advisor/internal/catalog"
	"github.com/minhle/cv-advisor/internal/intake"
	"github.com/minhle/cv-advisor/internal/recommend"
	"github.com/minhle/cv-advisor/internal/store"
	"github.com/minhle/cv-advisor/internal/suggest"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to disk.
const maxMultipartMemory = 8 << 20

// analyzeFaultMessage is the generic response for unexpected faults during
// analysis. Internal details never reach the client.
const analyzeFaultMessage = "An error occurred while analyzing CV"

// AnalyzeResponse represents the response for a successful /api/analyze-cv
type AnalyzeResponse struct {
	Success     bool                      `json:"success"`
	Suggestions []suggest.SkillSuggestion `json:"suggestions"`
	AIFeedback  string                    `json:"aiFeedback"`
	Message     string                    `json:"message"`
}

// JobsResponse represents the response for /api/jobs. The facet lists
// carry the distinct values present in the full catalog, for populating
// filter selectors.
type JobsResponse struct {
	Jobs      []catalog.Job `json:"jobs"`
	Total     int           `json:"total"`
	Positions []string      `json:"positions"`
	Levels    []string      `json:"levels"`
	Salaries  []string      `json:"salaries"`
}

// CoursesResponse represents the response for /api/courses and
// /api/courses/recommended
type CoursesResponse struct {
	Courses   []catalog.Course `json:"courses"`
	Total     int              `json:"total"`
	Levels    []string         `json:"levels,omitempty"`
	Platforms []string         `json:"platforms,omitempty"`
}

// handleAnalyzeCV accepts a multipart submission with a position and a CV
// file, validates it, and returns the suggestion list and feedback text.
// The flow is strictly sequential and single-attempt: a validation failure
// returns immediately, and any unexpected fault maps to the generic 500.
func (s *Server) handleAnalyzeCV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Printf("Error parsing analyze submission: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, analyzeFaultMessage)
		return
	}

	position := r.FormValue("position")

	var meta *intake.FileMeta
	file, header, err := r.FormFile("cv")
	if err == nil {
		defer file.Close()
		meta = &intake.FileMeta{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
		}
	}

	if verr := intake.Validate(position, meta); verr != nil {
		s.errorResponse(w, intake.HTTPStatus(verr), verr.Error())
		return
	}

	// Simulated analysis latency. Plain sleep: an abandoned request does
	// not cancel server-side work.
	if s.analysisDelay > 0 {
		time.Sleep(s.analysisDelay)
	}

	suggestions := suggest.Lookup(position)
	feedback := suggest.GenerateFeedback(position, suggestions)

	level := ""
	if p, ok := s.catalog.PositionByValue(position); ok {
		level = p.Level
	}

	result := &store.AnalysisResult{
		PersonalInfo: store.PersonalInfo{Level: level, Position: position},
		Suggestions:  suggestions,
		AIFeedback:   feedback,
	}
	if err := s.store.Set(result); err != nil {
		log.Printf("Error storing analysis result: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, analyzeFaultMessage)
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Success:     true,
		Suggestions: suggestions,
		AIFeedback:  feedback,
		Message:     "CV analysis completed successfully",
	})
}

// handleGetAnalysis returns the stored analysis result
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	result, ok, err := s.store.Get()
	if err != nil {
		log.Printf("Error reading analysis result: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read analysis result")
		return
	}
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "No analysis result found")
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleClearAnalysis removes the stored analysis result
func (s *Server) handleClearAnalysis(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(); err != nil {
		log.Printf("Error clearing analysis result: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to clear analysis result")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// handleListPositions returns the selectable job positions
func (s *Server) handleListPositions(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog.Positions())
}

// handleListJobs returns the job catalog filtered by the browse parameters
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := recommend.JobFilter{
		Search:   q.Get("search"),
		Position: q.Get("position"),
		Level:    q.Get("level"),
		Salary:   q.Get("salary"),
	}

	jobs := s.catalog.Jobs()
	s.jsonResponse(w, http.StatusOK, JobsResponse{
		Jobs:      recommend.FilterJobs(jobs, filter),
		Total:     len(jobs),
		Positions: recommend.JobPositions(jobs),
		Levels:    recommend.JobLevels(jobs),
		Salaries:  recommend.JobSalaries(jobs),
	})
}

// handleListCourses returns the course catalog filtered by the browse
// parameters
func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := recommend.CourseFilter{
		Search:   q.Get("search"),
		Level:    q.Get("level"),
		Platform: q.Get("platform"),
	}

	courses := s.catalog.Courses()
	s.jsonResponse(w, http.StatusOK, CoursesResponse{
		Courses:   recommend.FilterCourses(courses, filter),
		Total:     len(courses),
		Levels:    recommend.CourseLevels(courses),
		Platforms: recommend.CoursePlatforms(courses),
	})
}

// handleRecommendedCourses returns the courses matched against the stored
// suggestion list. Without an analysis result there is nothing to match;
// callers fall back to the full browse list.
func (s *Server) handleRecommendedCourses(w http.ResponseWriter, r *http.Request) {
	result, ok, err := s.store.Get()
	if err != nil {
		log.Printf("Error reading analysis result: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read analysis result")
		return
	}
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "No analysis result found")
		return
	}

	courses := s.catalog.Courses()
	s.jsonResponse(w, http.StatusOK, CoursesResponse{
		Courses: recommend.MatchCourses(result.Suggestions, courses),
		Total:   len(courses),
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
