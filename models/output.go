package models

import (
	"time"

	"github.com/google/uuid"
)

// The eight generated document types. (ProjectID, Type) is unique and
// regeneration upserts in place, so at most one row per type exists.
const (
	OutputFeatures       = "features_md"
	OutputCodeStructure  = "code_structure"
	OutputDatabaseSchema = "database_schema"
	OutputAPISpec        = "api_spec"
	OutputUISpec         = "ui_spec"
	OutputTestingPlan    = "testing_plan"
	OutputDeploymentPlan = "deployment_plan"
	OutputProjectRoadmap = "project_roadmap"
)

// Output is one rendered Markdown document derived from a project's answers.
type Output struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_outputs_project_type"`
	Type      string    `json:"type" db:"type" gorm:"type:text;not null;uniqueIndex:idx_outputs_project_type"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`
}

var outputFilenames = map[string]string{
	OutputFeatures:       "FEATURES.md",
	OutputCodeStructure:  "CODE_STRUCTURE.md",
	OutputDatabaseSchema: "DATABASE_SCHEMA.md",
	OutputAPISpec:        "API_SPEC.md",
	OutputUISpec:         "UI_SPEC.md",
	OutputTestingPlan:    "TESTING_PLAN.md",
	OutputDeploymentPlan: "DEPLOYMENT_PLAN.md",
	OutputProjectRoadmap: "PROJECT_ROADMAP.md",
}

// FilenameForType maps an output type to its canonical filename.
// Unrecognized types fall back to "<type>.md".
func FilenameForType(outputType string) string {
	if name, ok := outputFilenames[outputType]; ok {
		return name
	}
	return outputType + ".md"
}
