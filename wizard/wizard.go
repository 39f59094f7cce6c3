package wizard

import (
	"fmt"
	"time"

	"github.com/specsmith/specsmith-backend/questionnaire"
)

// QuestionID keys wizard-local answers and suggestions by their
// 1-based (section, question) position.
func QuestionID(sectionNumber, questionNumber int) string {
	return fmt.Sprintf("s%dq%d", sectionNumber, questionNumber)
}

// Answer is a locally cached response, held until the debounced save
// flushes it to the server.
type Answer struct {
	QuestionID string    `json:"questionId"`
	Text       string    `json:"answer"`
	AnsweredAt time.Time `json:"answeredAt"`
}

// Suggestion is a cached AI suggestion for one question.
type Suggestion struct {
	QuestionID  string    `json:"questionId"`
	Text        string    `json:"suggestion"`
	Confidence  float64   `json:"confidence"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// State is the wizard's explicit, serializable position and cache.
// Skipped is a set and crosses the serialization boundary as a sorted
// array (see MarshalJSON); everything else is plain data.
type State struct {
	ProjectID     string
	SectionIndex  int
	QuestionIndex int
	Answers       map[string]Answer
	Suggestions   map[string]Suggestion
	Skipped       map[string]struct{}
	LastSavedAt   *time.Time
}

// NewState returns an empty wizard state for a project.
func NewState(projectID string) *State {
	return &State{
		ProjectID:   projectID,
		Answers:     make(map[string]Answer),
		Suggestions: make(map[string]Suggestion),
		Skipped:     make(map[string]struct{}),
	}
}

// SaveAnswer caches an answer and stamps the save time.
func (s *State) SaveAnswer(questionID, text string) {
	now := time.Now()
	s.Answers[questionID] = Answer{
		QuestionID: questionID,
		Text:       text,
		AnsweredAt: now,
	}
	s.LastSavedAt = &now
}

// GetAnswer returns the cached answer for a question, if any.
func (s *State) GetAnswer(questionID string) (Answer, bool) {
	answer, ok := s.Answers[questionID]
	return answer, ok
}

// AddSuggestion caches an AI suggestion.
func (s *State) AddSuggestion(questionID, text string, confidence float64) {
	s.Suggestions[questionID] = Suggestion{
		QuestionID:  questionID,
		Text:        text,
		Confidence:  confidence,
		GeneratedAt: time.Now(),
	}
}

// GetSuggestion returns the cached suggestion for a question, if any.
func (s *State) GetSuggestion(questionID string) (Suggestion, bool) {
	suggestion, ok := s.Suggestions[questionID]
	return suggestion, ok
}

// Skip marks a question as skipped.
func (s *State) Skip(questionID string) {
	s.Skipped[questionID] = struct{}{}
}

// Unskip clears a question's skipped mark.
func (s *State) Unskip(questionID string) {
	delete(s.Skipped, questionID)
}

// IsSkipped reports whether a question was skipped.
func (s *State) IsSkipped(questionID string) bool {
	_, ok := s.Skipped[questionID]
	return ok
}

// Reset clears progress and caches but keeps the project binding.
func (s *State) Reset() {
	s.SectionIndex = 0
	s.QuestionIndex = 0
	s.Answers = make(map[string]Answer)
	s.Suggestions = make(map[string]Suggestion)
	s.Skipped = make(map[string]struct{})
	s.LastSavedAt = nil
}

// Navigator walks a wizard state over a fixed question bank. All moves
// are bounded: navigation clamps at the ends instead of wrapping or
// running past the bank.
type Navigator struct {
	sections []questionnaire.Section
	state    *State
}

func NewNavigator(sections []questionnaire.Section, state *State) *Navigator {
	return &Navigator{sections: sections, state: state}
}

// State exposes the underlying wizard state.
func (n *Navigator) State() *State {
	return n.state
}

// Current returns the section and question at the wizard's position.
func (n *Navigator) Current() (questionnaire.Section, questionnaire.Question, bool) {
	if n.state.SectionIndex < 0 || n.state.SectionIndex >= len(n.sections) {
		return questionnaire.Section{}, questionnaire.Question{}, false
	}
	section := n.sections[n.state.SectionIndex]
	if n.state.QuestionIndex < 0 || n.state.QuestionIndex >= len(section.Questions) {
		return section, questionnaire.Question{}, false
	}
	return section, section.Questions[n.state.QuestionIndex], true
}

// CurrentQuestionID returns the QuestionID at the wizard's position.
func (n *Navigator) CurrentQuestionID() string {
	section, _, ok := n.Current()
	if !ok {
		return ""
	}
	return QuestionID(section.Number, n.state.QuestionIndex+1)
}

// NextQuestion advances one question, rolling into the next section
// when the current one is exhausted. Returns false at the very end.
func (n *Navigator) NextQuestion() bool {
	if n.state.SectionIndex >= len(n.sections) {
		return false
	}
	section := n.sections[n.state.SectionIndex]
	if n.state.QuestionIndex+1 < len(section.Questions) {
		n.state.QuestionIndex++
		return true
	}
	if n.state.SectionIndex+1 < len(n.sections) {
		n.state.SectionIndex++
		n.state.QuestionIndex = 0
		return true
	}
	return false
}

// PreviousQuestion steps one question back, rolling into the previous
// section's last question. Returns false at the very beginning.
func (n *Navigator) PreviousQuestion() bool {
	if n.state.QuestionIndex > 0 {
		n.state.QuestionIndex--
		return true
	}
	if n.state.SectionIndex > 0 {
		n.state.SectionIndex--
		n.state.QuestionIndex = len(n.sections[n.state.SectionIndex].Questions) - 1
		return true
	}
	return false
}

// NextSection jumps to the first question of the next section.
func (n *Navigator) NextSection() bool {
	if n.state.SectionIndex+1 >= len(n.sections) {
		return false
	}
	n.state.SectionIndex++
	n.state.QuestionIndex = 0
	return true
}

// PreviousSection jumps to the first question of the previous section.
func (n *Navigator) PreviousSection() bool {
	if n.state.SectionIndex == 0 {
		n.state.QuestionIndex = 0
		return false
	}
	n.state.SectionIndex--
	n.state.QuestionIndex = 0
	return true
}
