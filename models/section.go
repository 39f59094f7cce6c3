package models

import (
	"time"

	"github.com/google/uuid"
)

// Section groups the answers of one thematic questionnaire section.
// (ProjectID, SectionNumber) is unique; rows are created lazily on the
// first answer submitted for that section. TotalQuestions is a stored
// expected count used only for progress display and may lag the bank.
type Section struct {
	ID             uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID      uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_sections_project_number"`
	SectionNumber  int       `json:"sectionNumber" db:"section_number" gorm:"not null;uniqueIndex:idx_sections_project_number"`
	Title          string    `json:"title" db:"title" gorm:"type:text;not null"`
	TotalQuestions int       `json:"totalQuestions" db:"total_questions" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`
	Answers        []Answer  `json:"answers,omitempty" gorm:"foreignKey:SectionID;references:ID;constraint:OnDelete:CASCADE"`
}
