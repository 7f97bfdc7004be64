package suggest

import (
	"fmt"
	"strings"
)

// priorityPhrase maps a suggestion level to the priority wording used for
// technical skill bullets. A low current level means improving it is the
// highest priority.
func priorityPhrase(level string) string {
	switch level {
	case LevelLow:
		return "very high"
	case LevelMedium:
		return "high"
	default:
		return "medium"
	}
}

// softSkillPhrase maps a suggestion level to the wording used for soft
// skill bullets.
func softSkillPhrase(level string) string {
	switch level {
	case LevelLow:
		return "Needs immediate development"
	case LevelMedium:
		return "Needs strengthening"
	default:
		return "Needs refinement"
	}
}

// GenerateFeedback renders the analysis feedback text for a position and
// its suggestion list. The output is a fixed five-section template; bullet
// order follows the input order, and an empty technical or soft partition
// still renders its section header with a zero count.
func GenerateFeedback(position string, suggestions []SkillSuggestion) string {
	positionName := PositionLabel(position)

	var technical, soft []SkillSuggestion
	for _, s := range suggestions {
		if s.Type == TypeTechnical {
			technical = append(technical, s)
		} else {
			soft = append(soft, s)
		}
	}

	technicalLines := make([]string, len(technical))
	for i, s := range technical {
		technicalLines[i] = fmt.Sprintf("• %s: Priority level %s", s.Skill, priorityPhrase(s.Level))
	}
	softLines := make([]string, len(soft))
	for i, s := range soft {
		softLines[i] = fmt.Sprintf("• %s: %s", s.Skill, softSkillPhrase(s.Level))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your CV analysis for the %s position, I've identified several areas for improvement to enhance your competitiveness in the job market.\n\n", positionName)
	b.WriteString("**Overall Assessment:**\n")
	fmt.Fprintf(&b, "Your profile shows good potential for growth, however you need to focus on %d key skills to fully match the requirements for the %s position.\n\n", len(suggestions), positionName)
	fmt.Fprintf(&b, "**Technical Skills (%d skills):**\n", len(technical))
	b.WriteString(strings.Join(technicalLines, "\n"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "**Soft Skills (%d skills):**\n", len(soft))
	b.WriteString(strings.Join(softLines, "\n"))
	b.WriteString("\n\n")
	b.WriteString("**Recommended Development Roadmap:**\n")
	b.WriteString("1. **High Priority:** Focus on \"low\" level skills to quickly meet basic requirements\n")
	b.WriteString("2. **Continuous Learning:** Dedicate 2-3 hours daily for learning and practice\n")
	b.WriteString("3. **Practical Projects:** Apply knowledge to personal projects to gain experience\n")
	b.WriteString("4. **Professional Network:** Join communities for learning and experience sharing\n\n")
	b.WriteString("With proper effort, you can significantly improve your competitiveness within the next 3-6 months.")

	return b.String()
}
