package generator

import (
	"strings"
	"testing"

	"github.com/specsmith/specsmith-backend/models"
)

func answer(section int, title string, question int, text, value string) AnswerContext {
	return AnswerContext{
		SectionNumber:  section,
		SectionTitle:   title,
		QuestionNumber: question,
		QuestionText:   text,
		AnswerText:     value,
	}
}

func TestRenderAllProducesEightDocuments(t *testing.T) {
	outputs := RenderAll(nil, StrategyKeyword)
	if len(outputs) != 8 {
		t.Fatalf("expected 8 documents, got %d", len(outputs))
	}
	seen := make(map[string]bool)
	for _, output := range outputs {
		if seen[output.Type] {
			t.Fatalf("duplicate document type %q", output.Type)
		}
		seen[output.Type] = true
		if output.Filename != models.FilenameForType(output.Type) {
			t.Fatalf("filename mismatch for %q: %q", output.Type, output.Filename)
		}
	}
}

func TestRenderEmptyAnswersStillHasHeaderAndBoilerplate(t *testing.T) {
	for _, spec := range Documents() {
		content := spec.Render(nil, StrategyKeyword)
		if !strings.HasPrefix(content, "# "+spec.Title+"\n\n") {
			t.Fatalf("%s: missing H1 title, got %q", spec.Type, firstLine(content))
		}
		if !strings.Contains(content, "*"+spec.Provenance+"*") {
			t.Fatalf("%s: missing provenance line", spec.Type)
		}
	}

	// Static boilerplate survives even with zero answers.
	schema := mustRender(t, models.OutputDatabaseSchema, nil, StrategyKeyword)
	if !strings.Contains(schema, "## Starter Schema") {
		t.Fatalf("expected starter schema boilerplate, got:\n%s", schema)
	}
	if strings.Contains(schema, "## Data Models") {
		t.Fatalf("empty dynamic block must be skipped, got:\n%s", schema)
	}
}

func TestRenderSingleAnswerKeywordClassification(t *testing.T) {
	answers := []AnswerContext{
		answer(1, "Product/Service Fundamentals", 1, "What is the name of your product or service?", "Acme"),
	}

	features := mustRender(t, models.OutputFeatures, answers, StrategyKeyword)
	if !strings.Contains(features, "## Project Overview\n\nAcme\n\n") {
		t.Fatalf("expected bare project overview answer, got:\n%s", features)
	}
	if !strings.Contains(features, "## Core Features") {
		t.Fatalf("section 1 answer should land in Core Features, got:\n%s", features)
	}
	if !strings.Contains(features, "### Product/Service Fundamentals") {
		t.Fatalf("grouped block should carry section title heading, got:\n%s", features)
	}

	// "What is the name..." matches none of the data-modeling keywords.
	schema := mustRender(t, models.OutputDatabaseSchema, answers, StrategyKeyword)
	if strings.Contains(schema, "Acme") {
		t.Fatalf("name answer must not leak into database schema, got:\n%s", schema)
	}
}

func TestRenderAnswerCanLandInMultipleDocuments(t *testing.T) {
	answers := []AnswerContext{
		answer(11, "Technical Preferences", 1, "Do you have preferences for the tech stack (database, hosting)?", "Postgres on Fly.io"),
	}

	structure := mustRender(t, models.OutputCodeStructure, answers, StrategyKeyword)
	if !strings.Contains(structure, "Postgres on Fly.io") {
		t.Fatalf("technical answer missing from code structure:\n%s", structure)
	}
	schema := mustRender(t, models.OutputDatabaseSchema, answers, StrategyKeyword)
	if !strings.Contains(schema, "Postgres on Fly.io") {
		t.Fatalf("database keyword should route answer into schema doc:\n%s", schema)
	}
	deploy := mustRender(t, models.OutputDeploymentPlan, answers, StrategyKeyword)
	if !strings.Contains(deploy, "Postgres on Fly.io") {
		t.Fatalf("hosting keyword should route answer into deployment plan:\n%s", deploy)
	}
}

func TestRenderRangeStrategyUsesSectionNumbers(t *testing.T) {
	answers := []AnswerContext{
		answer(13, "Data & Content", 2, "Where does the content come from?", "User generated posts"),
		answer(3, "Target Market", 1, "Who is the primary customer?", "Indie developers"),
	}

	schema := mustRender(t, models.OutputDatabaseSchema, answers, StrategyRange)
	if !strings.Contains(schema, "User generated posts") {
		t.Fatalf("section 13 answer missing under range strategy:\n%s", schema)
	}
	if strings.Contains(schema, "Indie developers") {
		t.Fatalf("section 3 answer must not match the 13-13 range:\n%s", schema)
	}

	features := mustRender(t, models.OutputFeatures, answers, StrategyRange)
	if !strings.Contains(features, "Indie developers") {
		t.Fatalf("section 3 answer should land in features under range strategy:\n%s", features)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	answers := []AnswerContext{
		answer(1, "Product/Service Fundamentals", 1, "What is the name of your product or service?", "Acme"),
		answer(17, "Launch Planning", 1, "Where will you deploy and host the product?", "Railway"),
	}
	first := RenderAll(answers, StrategyKeyword)
	second := RenderAll(answers, StrategyKeyword)
	for i := range first {
		if first[i].Content != second[i].Content {
			t.Fatalf("render not deterministic for %s", first[i].Type)
		}
	}
}

func TestFormatAnswer(t *testing.T) {
	got := FormatAnswer(answer(2, "Problem", 3, "What problem do you solve?", "Slow deploys"))
	want := "**Q3: What problem do you solve?**\n\nSlow deploys\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func mustRender(t *testing.T, docType string, answers []AnswerContext, strategy Strategy) string {
	t.Helper()
	for _, spec := range Documents() {
		if spec.Type == docType {
			return spec.Render(answers, strategy)
		}
	}
	t.Fatalf("unknown document type %q", docType)
	return ""
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
