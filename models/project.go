package models

import (
	"time"

	"github.com/google/uuid"
)

// Questionnaire variants supported by a project.
const (
	QuestionnaireFull      = "full"
	QuestionnaireShort     = "short"
	QuestionnaireEssential = "essential"
)

// Project is the top-level entity owning all questionnaire progress.
// Deleting a project cascades to its sections, answers and outputs.
type Project struct {
	ID                uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name              string    `json:"name" db:"name" gorm:"type:text;not null"`
	Description       string    `json:"description" db:"description" gorm:"type:text;not null;default:''"`
	QuestionnaireType string    `json:"questionnaireType" db:"questionnaire_type" gorm:"type:text;not null;default:'full'"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`
	Sections          []Section `json:"sections,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Outputs           []Output  `json:"outputs,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// ValidQuestionnaireType reports whether t names a known variant.
func ValidQuestionnaireType(t string) bool {
	switch t {
	case QuestionnaireFull, QuestionnaireShort, QuestionnaireEssential:
		return true
	}
	return false
}
