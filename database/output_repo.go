package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/specsmith/specsmith-backend/models"
)

type OutputRepo struct {
	db *gorm.DB
}

func NewOutputRepo(db *gorm.DB) *OutputRepo {
	return &OutputRepo{db}
}

// FindByProject returns a project's generated outputs, newest first.
func (r *OutputRepo) FindByProject(projectID uuid.UUID) ([]models.Output, error) {
	var outputs []models.Output
	err := r.db.
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&outputs).Error
	return outputs, err
}

// ReplaceAll upserts the full output set for a project in a single
// transaction, keyed on (projectID, type). All-or-nothing: a failure
// rolls every document back so readers never see a mix of old and new
// content across the set.
func (r *OutputRepo) ReplaceAll(projectID uuid.UUID, outputs []models.Output) error {
	now := time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range outputs {
			outputs[i].ProjectID = projectID
			if outputs[i].ID == uuid.Nil {
				outputs[i].ID = uuid.New()
			}
			outputs[i].UpdatedAt = now
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "project_id"}, {Name: "type"}},
				DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
			}).Create(&outputs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
