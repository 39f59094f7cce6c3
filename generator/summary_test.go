package generator

import (
	"strings"
	"testing"
)

func TestExtractKeyInsightsFallsBackToNotSpecified(t *testing.T) {
	insights := ExtractKeyInsights(nil)
	for name, got := range map[string]string{
		"ProjectGoal":       insights.ProjectGoal,
		"TargetAudience":    insights.TargetAudience,
		"MVPTimeline":       insights.MVPTimeline,
		"TechnicalApproach": insights.TechnicalApproach,
	} {
		if got != "Not specified" {
			t.Fatalf("%s = %q, want fallback", name, got)
		}
	}
}

func TestExtractKeyInsightsPicksFixedSlots(t *testing.T) {
	answers := []AnswerContext{
		answer(1, "Product/Service Fundamentals", 1, "What is the name of your product or service?", "Acme"),
		answer(1, "Product/Service Fundamentals", 2, "Who is it for?", "Indie developers"),
		answer(11, "Technical Preferences", 1, "Preferred stack?", "Go and Postgres"),
		answer(18, "Long-term Vision & Scale", 1, "What is the timeline?", "Six weeks"),
	}
	insights := ExtractKeyInsights(answers)
	if insights.ProjectGoal != "Acme" || insights.TargetAudience != "Indie developers" {
		t.Fatalf("section 1 insights wrong: %+v", insights)
	}
	if insights.TechnicalApproach != "Go and Postgres" || insights.MVPTimeline != "Six weeks" {
		t.Fatalf("later-section insights wrong: %+v", insights)
	}
}

func TestExecutiveSummaryListsAllDocuments(t *testing.T) {
	content := ExecutiveSummary(nil, "Acme")
	if !strings.HasPrefix(content, "# Acme - Executive Summary\n\n") {
		t.Fatalf("bad header: %q", firstLine(content))
	}
	for _, spec := range Documents() {
		if !strings.Contains(content, spec.Filename()) {
			t.Fatalf("documentation index missing %s", spec.Filename())
		}
	}
	if !strings.Contains(content, "Not specified") {
		t.Fatalf("empty answers should surface fallbacks:\n%s", content)
	}
}

func TestReadmeIncludesDescriptionAndDocLinks(t *testing.T) {
	content := Readme(nil, "Acme", "A widget factory")
	if !strings.HasPrefix(content, "# Acme\n\nA widget factory\n\n") {
		t.Fatalf("bad readme header:\n%s", content)
	}
	if !strings.Contains(content, "- [Features Specification](docs/FEATURES.md)") {
		t.Fatalf("missing doc link:\n%s", content)
	}

	bare := Readme(nil, "Acme", "")
	if strings.Contains(bare, "\n\n\n") {
		t.Fatalf("empty description should not leave a gap:\n%q", bare)
	}
}
