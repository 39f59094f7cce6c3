package models

import (
	"time"

	"github.com/google/uuid"
)

// Answer holds one response to one question. (SectionID, QuestionNumber)
// is unique and saves resolve last-write-wins by upsert. QuestionText is
// a denormalized snapshot taken at answer time and never re-synced with
// the question bank. A nil or empty AnswerText means "unanswered" for
// completion purposes even when AiSuggestion is populated.
type Answer struct {
	ID             uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	SectionID      uuid.UUID `json:"sectionId" db:"section_id" gorm:"type:uuid;not null;uniqueIndex:idx_answers_section_question"`
	QuestionNumber int       `json:"questionNumber" db:"question_number" gorm:"not null;uniqueIndex:idx_answers_section_question"`
	QuestionText   string    `json:"questionText" db:"question_text" gorm:"type:text;not null"`
	AnswerText     *string   `json:"answerText" db:"answer_text" gorm:"type:text"`
	AiSuggestion   *string   `json:"aiSuggestion,omitempty" db:"ai_suggestion" gorm:"type:text"`
	IsAiGenerated  bool      `json:"isAiGenerated" db:"is_ai_generated" gorm:"not null;default:false"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`
}

// Answered reports whether the answer counts toward completion.
func (a Answer) Answered() bool {
	return a.AnswerText != nil && *a.AnswerText != ""
}
