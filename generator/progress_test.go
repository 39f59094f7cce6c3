package generator

import (
	"testing"

	"github.com/specsmith/specsmith-backend/models"
)

func strPtr(s string) *string { return &s }

func TestPercentage(t *testing.T) {
	cases := []struct {
		answered, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 10, 0},
		{1, 3, 33},
		{2, 3, 67},
		{54, 54, 100},
		{1, 405, 0},
	}
	for _, c := range cases {
		if got := Percentage(c.answered, c.total); got != c.want {
			t.Fatalf("Percentage(%d, %d) = %d, want %d", c.answered, c.total, got, c.want)
		}
	}
}

func TestProgressCountsOnlyAnsweredQuestions(t *testing.T) {
	project := models.Project{
		QuestionnaireType: models.QuestionnaireShort,
		Sections: []models.Section{
			{
				SectionNumber:  1,
				Title:          "Product/Service Fundamentals",
				TotalQuestions: 3,
				Answers: []models.Answer{
					{QuestionNumber: 1, AnswerText: strPtr("Acme")},
					{QuestionNumber: 2, AnswerText: strPtr("")},
					{QuestionNumber: 3, AnswerText: nil},
				},
			},
			{
				SectionNumber:  2,
				Title:          "Problem & Solution",
				TotalQuestions: 0,
				Answers: []models.Answer{
					{QuestionNumber: 1, AnswerText: strPtr("Slow deploys")},
				},
			},
		},
	}

	progress := Progress(project)
	if progress.AnsweredQuestions != 2 {
		t.Fatalf("answered = %d, want 2", progress.AnsweredQuestions)
	}
	if progress.TotalQuestions != 54 {
		t.Fatalf("total = %d, want 54", progress.TotalQuestions)
	}
	if progress.CompletionPercentage != 4 {
		t.Fatalf("percentage = %d, want 4", progress.CompletionPercentage)
	}

	if progress.Sections[0].AnsweredQuestions != 1 || progress.Sections[0].CompletionPercentage != 33 {
		t.Fatalf("section 1 progress wrong: %+v", progress.Sections[0])
	}
	// Zero stored total never divides by zero, even with answers present.
	if progress.Sections[1].CompletionPercentage != 0 {
		t.Fatalf("section 2 with zero total must report 0%%: %+v", progress.Sections[1])
	}
}

func TestProgressFullTypeUsesTemplateTotal(t *testing.T) {
	project := models.Project{
		QuestionnaireType: models.QuestionnaireFull,
		Sections: []models.Section{
			{
				SectionNumber:  1,
				TotalQuestions: 3,
				Answers:        []models.Answer{{QuestionNumber: 1, AnswerText: strPtr("Acme")}},
			},
		},
	}
	progress := Progress(project)
	if progress.TotalQuestions != 405 {
		t.Fatalf("full total = %d, want 405", progress.TotalQuestions)
	}
	if progress.CompletionPercentage != 0 {
		t.Fatalf("1/405 rounds to 0, got %d", progress.CompletionPercentage)
	}
}

func TestMissingAndIncompleteSections(t *testing.T) {
	progress := ProjectProgress{Sections: []SectionProgress{
		{SectionNumber: 1, AnsweredQuestions: 0, TotalQuestions: 3},
		{SectionNumber: 2, AnsweredQuestions: 1, TotalQuestions: 3},
		{SectionNumber: 3, AnsweredQuestions: 3, TotalQuestions: 3},
	}}
	if missing := MissingSections(progress); len(missing) != 1 || missing[0].SectionNumber != 1 {
		t.Fatalf("missing = %+v", missing)
	}
	if incomplete := IncompleteSections(progress); len(incomplete) != 1 || incomplete[0].SectionNumber != 2 {
		t.Fatalf("incomplete = %+v", incomplete)
	}
}
