package database

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/specsmith/specsmith-backend/models"
)

type SectionRepo struct {
	db *gorm.DB
}

func NewSectionRepo(db *gorm.DB) *SectionRepo {
	return &SectionRepo{db}
}

// FindByProject returns a project's sections ordered by section number,
// each with its answers ordered by question number.
func (r *SectionRepo) FindByProject(projectID uuid.UUID) ([]models.Section, error) {
	var sections []models.Section
	err := r.db.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.question_number ASC")
		}).
		Where("project_id = ?", projectID).
		Order("section_number ASC").
		Find(&sections).Error
	return sections, err
}

// FindOrCreate returns the section at (projectID, sectionNumber),
// creating it lazily on first use. New rows carry the given title and
// a totalQuestions placeholder of 0; an empty title falls back to a
// generic one.
func (r *SectionRepo) FindOrCreate(projectID uuid.UUID, sectionNumber int, title string) (*models.Section, error) {
	var section models.Section
	err := r.db.
		Where("project_id = ? AND section_number = ?", projectID, sectionNumber).
		First(&section).Error
	if err == nil {
		return &section, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if title == "" {
		title = fmt.Sprintf("Section %d", sectionNumber)
	}
	section = models.Section{
		ID:             uuid.New(),
		ProjectID:      projectID,
		SectionNumber:  sectionNumber,
		Title:          title,
		TotalQuestions: 0,
	}
	if err := r.db.Create(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}
