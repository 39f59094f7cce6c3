package wizard

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/specsmith/specsmith-backend/questionnaire"
)

func smallBank() []questionnaire.Section {
	return []questionnaire.Section{
		{Number: 1, Title: "One", Questions: []questionnaire.Question{
			questionnaire.Q("q1"), questionnaire.Q("q2"),
		}},
		{Number: 2, Title: "Two", Questions: []questionnaire.Question{
			questionnaire.Q("q3"),
		}},
	}
}

func TestQuestionID(t *testing.T) {
	if got := QuestionID(3, 12); got != "s3q12" {
		t.Fatalf("QuestionID = %q", got)
	}
}

func TestNavigatorWalksWholeBank(t *testing.T) {
	nav := NewNavigator(smallBank(), NewState("p1"))

	if id := nav.CurrentQuestionID(); id != "s1q1" {
		t.Fatalf("start at %q, want s1q1", id)
	}
	if !nav.NextQuestion() {
		t.Fatalf("expected move to s1q2")
	}
	if !nav.NextQuestion() {
		t.Fatalf("expected roll into section 2")
	}
	if id := nav.CurrentQuestionID(); id != "s2q1" {
		t.Fatalf("after roll at %q, want s2q1", id)
	}
	if nav.NextQuestion() {
		t.Fatalf("must clamp at last question")
	}
	if id := nav.CurrentQuestionID(); id != "s2q1" {
		t.Fatalf("clamp moved position to %q", id)
	}
}

func TestNavigatorPreviousRollsBack(t *testing.T) {
	state := NewState("p1")
	state.SectionIndex = 1
	state.QuestionIndex = 0
	nav := NewNavigator(smallBank(), state)

	if !nav.PreviousQuestion() {
		t.Fatalf("expected roll back into section 1")
	}
	if id := nav.CurrentQuestionID(); id != "s1q2" {
		t.Fatalf("rolled to %q, want s1q2", id)
	}
	nav.PreviousQuestion()
	if nav.PreviousQuestion() {
		t.Fatalf("must clamp at first question")
	}
}

func TestNavigatorSectionJumps(t *testing.T) {
	state := NewState("p1")
	state.QuestionIndex = 1
	nav := NewNavigator(smallBank(), state)

	if !nav.NextSection() {
		t.Fatalf("expected jump to section 2")
	}
	if state.SectionIndex != 1 || state.QuestionIndex != 0 {
		t.Fatalf("jump landed at (%d,%d)", state.SectionIndex, state.QuestionIndex)
	}
	if nav.NextSection() {
		t.Fatalf("must clamp at last section")
	}
	if !nav.PreviousSection() {
		t.Fatalf("expected jump back to section 1")
	}
	// PreviousSection at the start clamps to the first question.
	state.QuestionIndex = 1
	if nav.PreviousSection() {
		t.Fatalf("must clamp at first section")
	}
	if state.QuestionIndex != 0 {
		t.Fatalf("clamp should reset question index, got %d", state.QuestionIndex)
	}
}

func TestStateAnswerAndSuggestionCache(t *testing.T) {
	state := NewState("p1")
	state.SaveAnswer("s1q1", "Acme")
	if answer, ok := state.GetAnswer("s1q1"); !ok || answer.Text != "Acme" {
		t.Fatalf("answer cache miss: %+v %v", answer, ok)
	}
	if state.LastSavedAt == nil {
		t.Fatalf("save must stamp LastSavedAt")
	}

	state.AddSuggestion("s1q2", "Try X", 0.85)
	if suggestion, ok := state.GetSuggestion("s1q2"); !ok || suggestion.Confidence != 0.85 {
		t.Fatalf("suggestion cache miss: %+v %v", suggestion, ok)
	}

	state.Skip("s1q2")
	if !state.IsSkipped("s1q2") {
		t.Fatalf("skip not recorded")
	}
	state.Unskip("s1q2")
	if state.IsSkipped("s1q2") {
		t.Fatalf("unskip not applied")
	}

	state.Reset()
	if len(state.Answers) != 0 || state.LastSavedAt != nil || state.ProjectID != "p1" {
		t.Fatalf("reset wrong: %+v", state)
	}
}

func TestStateJSONRoundTrip(t *testing.T) {
	state := NewState("p1")
	state.SectionIndex = 2
	state.QuestionIndex = 1
	state.SaveAnswer("s3q2", "Acme")
	state.Skip("s3q3")
	state.Skip("s1q1")

	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// The skipped set persists as a sorted array.
	if !strings.Contains(string(data), `"skipped":["s1q1","s3q3"]`) {
		t.Fatalf("skipped not sorted: %s", data)
	}

	var restored State
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored.SectionIndex != 2 || restored.QuestionIndex != 1 || restored.ProjectID != "p1" {
		t.Fatalf("position lost: %+v", restored)
	}
	if answer, ok := restored.GetAnswer("s3q2"); !ok || answer.Text != "Acme" {
		t.Fatalf("answer lost: %+v %v", answer, ok)
	}
	if !restored.IsSkipped("s3q3") || !restored.IsSkipped("s1q1") {
		t.Fatalf("skipped set lost")
	}
}

func TestStateUnmarshalTolerantOfMissingMaps(t *testing.T) {
	var state State
	if err := json.Unmarshal([]byte(`{"projectId":"p1"}`), &state); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	state.SaveAnswer("s1q1", "ok")
	state.Skip("s1q1")
	if !state.IsSkipped("s1q1") {
		t.Fatalf("maps not initialized after sparse unmarshal")
	}
}
