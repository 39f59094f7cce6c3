package database

import (
	"gorm.io/gorm"

	"github.com/specsmith/specsmith-backend/models"
)

type Database struct {
	projectRepo *ProjectRepo
	sectionRepo *SectionRepo
	answerRepo  *AnswerRepo
	outputRepo  *OutputRepo
}

// New initializes a Database with each repository sharing one GORM instance.
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		sectionRepo: NewSectionRepo(db),
		answerRepo:  NewAnswerRepo(db),
		outputRepo:  NewOutputRepo(db),
	}
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SectionRepo() *SectionRepo {
	return d.sectionRepo
}

func (d Database) AnswerRepo() *AnswerRepo {
	return d.answerRepo
}

func (d Database) OutputRepo() *OutputRepo {
	return d.outputRepo
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Section{},
		&models.Answer{},
		&models.Output{},
	)
}
