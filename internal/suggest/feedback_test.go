package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFeedback_KnownPosition(t *testing.T) {
	suggestions := Lookup("frontend-junior")
	feedback := GenerateFeedback("frontend-junior", suggestions)

	assert.Contains(t, feedback, "Frontend Developer (Junior)")
	assert.Contains(t, feedback, "focus on 3 key skills")
	assert.Contains(t, feedback, "**Technical Skills (0 skills):**")
	assert.Contains(t, feedback, "**Soft Skills (3 skills):**")
	assert.Contains(t, feedback, "**Recommended Development Roadmap:**")
	assert.True(t, strings.HasSuffix(feedback, "within the next 3-6 months."))
}

func TestGenerateFeedback_UnknownPositionUsesDeveloper(t *testing.T) {
	feedback := GenerateFeedback("some-unknown-role", Fallback())
	assert.Contains(t, feedback, "for the Developer position")
}

func TestGenerateFeedback_SectionOrder(t *testing.T) {
	feedback := GenerateFeedback("ai-engineer-middle", Lookup("ai-engineer-middle"))

	overall := strings.Index(feedback, "**Overall Assessment:**")
	technical := strings.Index(feedback, "**Technical Skills (")
	soft := strings.Index(feedback, "**Soft Skills (")
	roadmap := strings.Index(feedback, "**Recommended Development Roadmap:**")

	require.True(t, overall >= 0 && technical >= 0 && soft >= 0 && roadmap >= 0)
	assert.Less(t, overall, technical)
	assert.Less(t, technical, soft)
	assert.Less(t, soft, roadmap)
}

func TestGenerateFeedback_TechnicalPriorityPhrases(t *testing.T) {
	suggestions := []SkillSuggestion{
		{Skill: "Go", Type: TypeTechnical, Level: LevelLow},
		{Skill: "SQL", Type: TypeTechnical, Level: LevelMedium},
		{Skill: "Docker", Type: TypeTechnical, Level: LevelHigh},
	}
	feedback := GenerateFeedback("backend-junior", suggestions)

	assert.Contains(t, feedback, "• Go: Priority level very high")
	assert.Contains(t, feedback, "• SQL: Priority level high")
	assert.Contains(t, feedback, "• Docker: Priority level medium")
	assert.Contains(t, feedback, "**Technical Skills (3 skills):**")
	assert.Contains(t, feedback, "**Soft Skills (0 skills):**")
}

func TestGenerateFeedback_SoftSkillPhrases(t *testing.T) {
	suggestions := []SkillSuggestion{
		{Skill: "English", Type: TypeSoftSkill, Level: LevelLow},
		{Skill: "Communication", Type: TypeSoftSkill, Level: LevelMedium},
		{Skill: "Leadership", Type: TypeSoftSkill, Level: LevelHigh},
	}
	feedback := GenerateFeedback("product-manager", suggestions)

	assert.Contains(t, feedback, "• English: Needs immediate development")
	assert.Contains(t, feedback, "• Communication: Needs strengthening")
	assert.Contains(t, feedback, "• Leadership: Needs refinement")
}

func TestGenerateFeedback_BulletOrderFollowsInput(t *testing.T) {
	suggestions := []SkillSuggestion{
		{Skill: "Zeta", Type: TypeSoftSkill, Level: LevelLow},
		{Skill: "Alpha", Type: TypeSoftSkill, Level: LevelLow},
	}
	feedback := GenerateFeedback("frontend-junior", suggestions)

	assert.Less(t, strings.Index(feedback, "• Zeta"), strings.Index(feedback, "• Alpha"))
}

func TestGenerateFeedback_EmptySuggestions(t *testing.T) {
	feedback := GenerateFeedback("frontend-junior", nil)

	assert.Contains(t, feedback, "focus on 0 key skills")
	assert.Contains(t, feedback, "**Technical Skills (0 skills):**")
	assert.Contains(t, feedback, "**Soft Skills (0 skills):**")
}
