package questionnaire

import "github.com/specsmith/specsmith-backend/models"

// Question is one questionnaire prompt. Examples is optional guidance
// shown to the user alongside the prompt; most questions carry none.
type Question struct {
	Text     string   `json:"text"`
	Examples []string `json:"examples,omitempty"`
}

// Q builds a bare question with no examples.
func Q(text string) Question {
	return Question{Text: text}
}

// QE builds a question with example answers.
func QE(text string, examples ...string) Question {
	return Question{Text: text, Examples: examples}
}

// Section is one thematic grouping of questions. Number is 1-based and
// order-significant across the bank.
type Section struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// QuestionCount returns the number of questions in the section.
func (s Section) QuestionCount() int {
	return len(s.Questions)
}

// ForType returns the question bank for a questionnaire variant.
// Unknown types fall back to the full bank.
func ForType(questionnaireType string) []Section {
	switch questionnaireType {
	case models.QuestionnaireEssential:
		return Essential
	case models.QuestionnaireShort:
		return Short
	default:
		return Full
	}
}

// TotalQuestions returns the question total used for project-level
// completion math. The full variant reports the 405-question template
// total even while the bank itself carries the short placeholder set.
func TotalQuestions(questionnaireType string) int {
	switch questionnaireType {
	case models.QuestionnaireEssential:
		return countQuestions(Essential)
	case models.QuestionnaireShort:
		return countQuestions(Short)
	default:
		return FullTotalQuestions
	}
}

// FullTotalQuestions is the question count of the complete onboarding
// template that the full variant targets.
const FullTotalQuestions = 405

func countQuestions(sections []Section) int {
	total := 0
	for _, s := range sections {
		total += len(s.Questions)
	}
	return total
}

// SectionByNumber returns the section with the given 1-based number,
// or false when the bank has no such section.
func SectionByNumber(sections []Section, number int) (Section, bool) {
	for _, s := range sections {
		if s.Number == number {
			return s, true
		}
	}
	return Section{}, false
}
