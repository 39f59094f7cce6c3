package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/specsmith/specsmith-backend/models"
)

type AnswerRepo struct {
	db *gorm.DB
}

func NewAnswerRepo(db *gorm.DB) *AnswerRepo {
	return &AnswerRepo{db}
}

// Upsert saves an answer keyed on (sectionID, questionNumber).
// Concurrent saves to the same slot resolve last-write-wins; there is
// no conflict detection, so a slow client overwriting a fresher save
// is accepted as-is. A save without a suggestion leaves any cached
// suggestion in place, so debounced text saves never wipe it.
func (r *AnswerRepo) Upsert(answer *models.Answer) error {
	if answer.ID == uuid.Nil {
		answer.ID = uuid.New()
	}
	columns := []string{"answer_text", "is_ai_generated", "updated_at"}
	if answer.AiSuggestion != nil {
		columns = append(columns, "ai_suggestion")
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section_id"}, {Name: "question_number"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(answer).Error
}

// FindBySection returns a section's answers ordered by question number.
func (r *AnswerRepo) FindBySection(sectionID uuid.UUID) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.
		Where("section_id = ?", sectionID).
		Order("question_number ASC").
		Find(&answers).Error
	return answers, err
}

// FindByKey returns the answer at (sectionID, questionNumber), or nil
// when the slot has never been saved.
func (r *AnswerRepo) FindByKey(sectionID uuid.UUID, questionNumber int) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.
		Where("section_id = ? AND question_number = ?", sectionID, questionNumber).
		First(&answer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}
