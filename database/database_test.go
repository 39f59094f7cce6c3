package database

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/specsmith/specsmith-backend/models"
)

func newTestDB(t *testing.T) Database {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func strPtr(s string) *string { return &s }

func seedProject(t *testing.T, db Database, name string) *models.Project {
	t.Helper()
	project := &models.Project{
		Name:              name,
		QuestionnaireType: models.QuestionnaireShort,
	}
	if err := db.ProjectRepo().Add(project); err != nil {
		t.Fatalf("add project: %v", err)
	}
	return project
}

func TestProjectRepoFindByIDMissing(t *testing.T) {
	db := newTestDB(t)
	project, err := db.ProjectRepo().FindByID(uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project != nil {
		t.Fatalf("expected nil for missing project, got %+v", project)
	}
}

func TestProjectRepoRoundTrip(t *testing.T) {
	db := newTestDB(t)
	created := seedProject(t, db, "Acme")

	found, err := db.ProjectRepo().FindByID(created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.Name != "Acme" || found.QuestionnaireType != models.QuestionnaireShort {
		t.Fatalf("round trip wrong: %+v", found)
	}

	found.Name = "Acme 2"
	found.Description = "renamed"
	if err := db.ProjectRepo().Update(found); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, err := db.ProjectRepo().FindByID(created.ID)
	if err != nil || updated == nil {
		t.Fatalf("reload: %v", err)
	}
	if updated.Name != "Acme 2" || updated.Description != "renamed" {
		t.Fatalf("update lost: %+v", updated)
	}
}

func TestSectionRepoFindOrCreateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db, "Acme")

	first, err := db.SectionRepo().FindOrCreate(project.ID, 3, "Target Market & Customer")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Title != "Target Market & Customer" || first.TotalQuestions != 0 {
		t.Fatalf("created section wrong: %+v", first)
	}

	// A later call with a different title returns the existing row.
	second, err := db.SectionRepo().FindOrCreate(project.ID, 3, "Other Title")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if second.ID != first.ID || second.Title != "Target Market & Customer" {
		t.Fatalf("expected existing row back, got %+v", second)
	}

	blank, err := db.SectionRepo().FindOrCreate(project.ID, 99, "")
	if err != nil {
		t.Fatalf("create fallback: %v", err)
	}
	if blank.Title != "Section 99" {
		t.Fatalf("fallback title = %q", blank.Title)
	}
}

func TestAnswerRepoUpsertLastWriteWins(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db, "Acme")
	section, err := db.SectionRepo().FindOrCreate(project.ID, 1, "Product/Service Fundamentals")
	if err != nil {
		t.Fatalf("section: %v", err)
	}

	first := models.Answer{
		SectionID:      section.ID,
		QuestionNumber: 1,
		QuestionText:   "What is the name of your product or service?",
		AnswerText:     strPtr("Acme v1"),
	}
	if err := db.AnswerRepo().Upsert(&first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := models.Answer{
		SectionID:      section.ID,
		QuestionNumber: 1,
		QuestionText:   "What is the name of your product or service?",
		AnswerText:     strPtr("Acme v2"),
		AiSuggestion:   strPtr("Try a memorable one-word name"),
		IsAiGenerated:  true,
	}
	if err := db.AnswerRepo().Upsert(&second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	answers, err := db.AnswerRepo().FindBySection(section.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("expected one row per (section, question), got %d", len(answers))
	}
	saved := answers[0]
	if saved.AnswerText == nil || *saved.AnswerText != "Acme v2" {
		t.Fatalf("last write lost: %+v", saved)
	}
	if !saved.IsAiGenerated || saved.AiSuggestion == nil {
		t.Fatalf("upsert did not refresh suggestion columns: %+v", saved)
	}

	missing, err := db.AnswerRepo().FindByKey(section.ID, 42)
	if err != nil || missing != nil {
		t.Fatalf("expected nil for unsaved slot: %+v %v", missing, err)
	}
}

func TestAnswerRepoUpsertKeepsCachedSuggestion(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db, "Acme")
	section, err := db.SectionRepo().FindOrCreate(project.ID, 1, "Product/Service Fundamentals")
	if err != nil {
		t.Fatalf("section: %v", err)
	}

	withSuggestion := models.Answer{
		SectionID:      section.ID,
		QuestionNumber: 1,
		QuestionText:   "What is the name of your product or service?",
		AnswerText:     strPtr("Acme"),
		AiSuggestion:   strPtr("Try a memorable one-word name"),
	}
	if err := db.AnswerRepo().Upsert(&withSuggestion); err != nil {
		t.Fatalf("upsert with suggestion: %v", err)
	}

	// A debounced text-only save carries no suggestion.
	textOnly := models.Answer{
		SectionID:      section.ID,
		QuestionNumber: 1,
		QuestionText:   "What is the name of your product or service?",
		AnswerText:     strPtr("Acme v2"),
	}
	if err := db.AnswerRepo().Upsert(&textOnly); err != nil {
		t.Fatalf("upsert without suggestion: %v", err)
	}

	saved, err := db.AnswerRepo().FindByKey(section.ID, 1)
	if err != nil || saved == nil {
		t.Fatalf("find: %+v %v", saved, err)
	}
	if saved.AnswerText == nil || *saved.AnswerText != "Acme v2" {
		t.Fatalf("text not updated: %+v", saved)
	}
	if saved.AiSuggestion == nil || *saved.AiSuggestion != "Try a memorable one-word name" {
		t.Fatalf("cached suggestion lost: %+v", saved)
	}

	// A save that does carry a suggestion still replaces the cached one.
	fresh := models.Answer{
		SectionID:      section.ID,
		QuestionNumber: 1,
		QuestionText:   "What is the name of your product or service?",
		AnswerText:     strPtr("Acme v2"),
		AiSuggestion:   strPtr("Short names stick"),
	}
	if err := db.AnswerRepo().Upsert(&fresh); err != nil {
		t.Fatalf("upsert with new suggestion: %v", err)
	}
	saved, err = db.AnswerRepo().FindByKey(section.ID, 1)
	if err != nil || saved == nil || saved.AiSuggestion == nil || *saved.AiSuggestion != "Short names stick" {
		t.Fatalf("new suggestion not stored: %+v %v", saved, err)
	}
}

func TestOutputRepoReplaceAllUpserts(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db, "Acme")

	initial := []models.Output{
		{Type: models.OutputFeatures, Content: "v1 features"},
		{Type: models.OutputAPISpec, Content: "v1 api"},
	}
	if err := db.OutputRepo().ReplaceAll(project.ID, initial); err != nil {
		t.Fatalf("first replace: %v", err)
	}

	replacement := []models.Output{
		{Type: models.OutputFeatures, Content: "v2 features"},
		{Type: models.OutputAPISpec, Content: "v2 api"},
	}
	if err := db.OutputRepo().ReplaceAll(project.ID, replacement); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	outputs, err := db.OutputRepo().FindByProject(project.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(outputs) != 2 {
		t.Fatalf("regeneration must upsert in place, got %d rows", len(outputs))
	}
	byType := make(map[string]models.Output)
	for _, output := range outputs {
		byType[output.Type] = output
	}
	if byType[models.OutputFeatures].Content != "v2 features" {
		t.Fatalf("content not replaced: %+v", byType[models.OutputFeatures])
	}
}

func TestProjectRepoDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	project := seedProject(t, db, "Acme")
	section, err := db.SectionRepo().FindOrCreate(project.ID, 1, "Product/Service Fundamentals")
	if err != nil {
		t.Fatalf("section: %v", err)
	}
	answer := models.Answer{SectionID: section.ID, QuestionNumber: 1, QuestionText: "q", AnswerText: strPtr("a")}
	if err := db.AnswerRepo().Upsert(&answer); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := db.OutputRepo().ReplaceAll(project.ID, []models.Output{{Type: models.OutputFeatures, Content: "x"}}); err != nil {
		t.Fatalf("outputs: %v", err)
	}

	if err := db.ProjectRepo().Delete(project.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if found, _ := db.ProjectRepo().FindByID(project.ID); found != nil {
		t.Fatalf("project survived delete")
	}
	sections, err := db.SectionRepo().FindByProject(project.ID)
	if err != nil || len(sections) != 0 {
		t.Fatalf("sections survived delete: %v %v", sections, err)
	}
	answers, err := db.AnswerRepo().FindBySection(section.ID)
	if err != nil || len(answers) != 0 {
		t.Fatalf("answers survived delete: %v %v", answers, err)
	}
	outputs, err := db.OutputRepo().FindByProject(project.ID)
	if err != nil || len(outputs) != 0 {
		t.Fatalf("outputs survived delete: %v %v", outputs, err)
	}
}

func TestProjectRepoFindAllOrdersByRecency(t *testing.T) {
	db := newTestDB(t)
	older := seedProject(t, db, "Older")
	newer := seedProject(t, db, "Newer")

	if err := db.ProjectRepo().Touch(older.ID); err != nil {
		t.Fatalf("touch: %v", err)
	}

	projects, err := db.ProjectRepo().FindAll()
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].ID != older.ID {
		t.Fatalf("touched project should sort first, got %q then %q", projects[0].Name, projects[1].Name)
	}
	_ = newer
}
