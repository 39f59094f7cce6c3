package generator

import (
	"fmt"
	"sort"

	"github.com/specsmith/specsmith-backend/models"
)

// AnswerContext is one answered question flattened out of the
// Section/Answer hierarchy. Renderers only ever see contexts with
// non-empty answer text.
type AnswerContext struct {
	SectionNumber  int    `json:"sectionNumber"`
	SectionTitle   string `json:"sectionTitle"`
	QuestionNumber int    `json:"questionNumber"`
	QuestionText   string `json:"questionText"`
	AnswerText     string `json:"answerText"`
}

// Flatten turns a project's sections into the ordered answer-context
// list renderers consume: section number ascending, question number
// ascending, unanswered rows dropped. Input order is not trusted.
func Flatten(sections []models.Section) []AnswerContext {
	ordered := make([]models.Section, len(sections))
	copy(ordered, sections)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].SectionNumber < ordered[j].SectionNumber
	})

	var contexts []AnswerContext
	for _, section := range ordered {
		answers := make([]models.Answer, len(section.Answers))
		copy(answers, section.Answers)
		sort.Slice(answers, func(i, j int) bool {
			return answers[i].QuestionNumber < answers[j].QuestionNumber
		})

		for _, answer := range answers {
			if !answer.Answered() {
				continue
			}
			contexts = append(contexts, AnswerContext{
				SectionNumber:  section.SectionNumber,
				SectionTitle:   section.Title,
				QuestionNumber: answer.QuestionNumber,
				QuestionText:   answer.QuestionText,
				AnswerText:     *answer.AnswerText,
			})
		}
	}
	return contexts
}

// FormatAnswer renders one answer as a Markdown block.
func FormatAnswer(answer AnswerContext) string {
	return fmt.Sprintf("**Q%d: %s**\n\n%s\n\n", answer.QuestionNumber, answer.QuestionText, answer.AnswerText)
}

// GroupBySection buckets answers by section number, preserving the
// input order within each bucket.
func GroupBySection(answers []AnswerContext) map[int][]AnswerContext {
	grouped := make(map[int][]AnswerContext)
	for _, answer := range answers {
		grouped[answer.SectionNumber] = append(grouped[answer.SectionNumber], answer)
	}
	return grouped
}

// Find returns the answer at (section, question), if present.
func Find(answers []AnswerContext, sectionNumber, questionNumber int) (AnswerContext, bool) {
	for _, answer := range answers {
		if answer.SectionNumber == sectionNumber && answer.QuestionNumber == questionNumber {
			return answer, true
		}
	}
	return AnswerContext{}, false
}
