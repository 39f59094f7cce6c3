package wizard

import (
	"encoding/json"
	"sort"
	"time"
)

// persistedState is the wire form of State. Only primitive and
// serializable fields cross the boundary; the Skipped set travels as
// a sorted array so the persisted form is deterministic.
type persistedState struct {
	ProjectID     string                `json:"projectId"`
	SectionIndex  int                   `json:"sectionIndex"`
	QuestionIndex int                   `json:"questionIndex"`
	Answers       map[string]Answer     `json:"answers"`
	Suggestions   map[string]Suggestion `json:"suggestions"`
	Skipped       []string              `json:"skipped"`
	LastSavedAt   *time.Time            `json:"lastSavedAt"`
}

func (s *State) MarshalJSON() ([]byte, error) {
	skipped := make([]string, 0, len(s.Skipped))
	for id := range s.Skipped {
		skipped = append(skipped, id)
	}
	sort.Strings(skipped)

	return json.Marshal(persistedState{
		ProjectID:     s.ProjectID,
		SectionIndex:  s.SectionIndex,
		QuestionIndex: s.QuestionIndex,
		Answers:       s.Answers,
		Suggestions:   s.Suggestions,
		Skipped:       skipped,
		LastSavedAt:   s.LastSavedAt,
	})
}

func (s *State) UnmarshalJSON(data []byte) error {
	var persisted persistedState
	if err := json.Unmarshal(data, &persisted); err != nil {
		return err
	}

	s.ProjectID = persisted.ProjectID
	s.SectionIndex = persisted.SectionIndex
	s.QuestionIndex = persisted.QuestionIndex
	s.Answers = persisted.Answers
	s.Suggestions = persisted.Suggestions
	s.LastSavedAt = persisted.LastSavedAt

	if s.Answers == nil {
		s.Answers = make(map[string]Answer)
	}
	if s.Suggestions == nil {
		s.Suggestions = make(map[string]Suggestion)
	}
	s.Skipped = make(map[string]struct{}, len(persisted.Skipped))
	for _, id := range persisted.Skipped {
		s.Skipped[id] = struct{}{}
	}
	return nil
}
