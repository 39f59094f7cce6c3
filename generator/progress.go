package generator

import (
	"math"

	"github.com/specsmith/specsmith-backend/models"
	"github.com/specsmith/specsmith-backend/questionnaire"
)

// SectionProgress is the per-section completion view served to the
// dashboard and the wizard's progress bar.
type SectionProgress struct {
	SectionNumber        int    `json:"sectionNumber"`
	Title                string `json:"title"`
	AnsweredQuestions    int    `json:"answeredQuestions"`
	TotalQuestions       int    `json:"totalQuestions"`
	CompletionPercentage int    `json:"completionPercentage"`
}

// ProjectProgress is the project-level completion view.
type ProjectProgress struct {
	AnsweredQuestions    int               `json:"answeredQuestions"`
	TotalQuestions       int               `json:"totalQuestions"`
	CompletionPercentage int               `json:"completionPercentage"`
	Sections             []SectionProgress `json:"sections"`
}

// Percentage returns round(100 * answered / total), and 0 when total
// is 0 so a section with a zero placeholder count never divides by zero.
func Percentage(answered, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(answered) / float64(total)))
}

// CountAnswered counts answers with non-empty text across all sections.
func CountAnswered(sections []models.Section) int {
	count := 0
	for _, section := range sections {
		for _, answer := range section.Answers {
			if answer.Answered() {
				count++
			}
		}
	}
	return count
}

// Progress computes the full completion view for a project. The
// project-level denominator is the questionnaire-type constant; each
// section uses its own stored (possibly stale) totalQuestions.
func Progress(project models.Project) ProjectProgress {
	total := questionnaire.TotalQuestions(project.QuestionnaireType)
	answered := CountAnswered(project.Sections)

	sections := make([]SectionProgress, 0, len(project.Sections))
	for _, section := range project.Sections {
		sectionAnswered := CountAnswered([]models.Section{section})
		sections = append(sections, SectionProgress{
			SectionNumber:        section.SectionNumber,
			Title:                section.Title,
			AnsweredQuestions:    sectionAnswered,
			TotalQuestions:       section.TotalQuestions,
			CompletionPercentage: Percentage(sectionAnswered, section.TotalQuestions),
		})
	}

	return ProjectProgress{
		AnsweredQuestions:    answered,
		TotalQuestions:       total,
		CompletionPercentage: Percentage(answered, total),
		Sections:             sections,
	}
}

// MissingSections returns the sections with no answered questions.
func MissingSections(progress ProjectProgress) []SectionProgress {
	var missing []SectionProgress
	for _, s := range progress.Sections {
		if s.AnsweredQuestions == 0 {
			missing = append(missing, s)
		}
	}
	return missing
}

// IncompleteSections returns sections that are started but unfinished.
func IncompleteSections(progress ProjectProgress) []SectionProgress {
	var incomplete []SectionProgress
	for _, s := range progress.Sections {
		if s.AnsweredQuestions > 0 && s.AnsweredQuestions < s.TotalQuestions {
			incomplete = append(incomplete, s)
		}
	}
	return incomplete
}
