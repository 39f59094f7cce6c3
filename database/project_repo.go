package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/specsmith/specsmith-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects with their sections and answers,
// most recently updated first.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.section_number ASC")
		}).
		Preload("Sections.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.question_number ASC")
		}).
		Order("updated_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project with ordered sections and answers, or
// (nil, nil) when no such project exists.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.section_number ASC")
		}).
		Preload("Sections.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.question_number ASC")
		}).
		First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project.
func (r *ProjectRepo) Add(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	return r.db.Create(project).Error
}

// Update saves changed project fields.
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]any{
			"name":        project.Name,
			"description": project.Description,
			"updated_at":  time.Now(),
		}).Error
}

// Touch bumps the project's updatedAt, used after answer saves so the
// dashboard ordering reflects recent work.
func (r *ProjectRepo) Touch(id uuid.UUID) error {
	return r.db.Model(&models.Project{}).
		Where("id = ?", id).
		Update("updated_at", time.Now()).Error
}

// Delete removes a project and cascades to its sections, answers and
// outputs in one transaction. The cascade is explicit rather than left
// to foreign-key constraints so it behaves the same on every backend.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("section_id IN (?)", tx.Model(&models.Section{}).Select("id").Where("project_id = ?", id)).
			Delete(&models.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Section{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Output{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}
