package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/specsmith/specsmith-backend/database"
	"github.com/specsmith/specsmith-backend/errs"
	"github.com/specsmith/specsmith-backend/generator"
	"github.com/specsmith/specsmith-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	sectionRepo *database.SectionRepo
}

func newProjectHandler(db database.Database) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: db.ProjectRepo(),
		sectionRepo: db.SectionRepo(),
	}
}

// ProjectSummary is the dashboard view of a project: identity plus
// completion stats.
type ProjectSummary struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	QuestionnaireType    string    `json:"questionnaireType"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
	CompletionPercentage int       `json:"completionPercentage"`
	AnsweredQuestions    int       `json:"answeredQuestions"`
	TotalQuestions       int       `json:"totalQuestions"`
}

type createProjectRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	QuestionnaireType string `json:"questionnaireType"`
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func summarize(project models.Project) ProjectSummary {
	progress := generator.Progress(project)
	return ProjectSummary{
		ID:                   project.ID,
		Name:                 project.Name,
		Description:          project.Description,
		QuestionnaireType:    project.QuestionnaireType,
		CreatedAt:            project.CreatedAt,
		UpdatedAt:            project.UpdatedAt,
		CompletionPercentage: progress.CompletionPercentage,
		AnsweredQuestions:    progress.AnsweredQuestions,
		TotalQuestions:       progress.TotalQuestions,
	}
}

// getAllProjects lists every project with completion stats, most
// recently updated first.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		summaries := make([]ProjectSummary, 0, len(projects))
		for _, project := range projects {
			summaries = append(summaries, summarize(*project))
		}

		h.responder.WriteSuccess(w, summaries, "")
	}
}

// createProject creates a new project. Name is required (1-100 chars);
// the questionnaire type defaults to full.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProjectRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var problems []string
		if req.Name == "" {
			problems = append(problems, "name is required")
		}
		if len(req.Name) > 100 {
			problems = append(problems, "name must be at most 100 characters")
		}
		if req.QuestionnaireType == "" {
			req.QuestionnaireType = models.QuestionnaireFull
		}
		if !models.ValidQuestionnaireType(req.QuestionnaireType) {
			problems = append(problems, "questionnaireType must be full, short or essential")
		}
		if len(problems) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(problems))
			return
		}

		project := models.Project{
			Name:              req.Name,
			Description:       req.Description,
			QuestionnaireType: req.QuestionnaireType,
		}
		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteCreated(w, project, "Project created successfully")
	}
}

// getProject returns one project with its ordered sections and answers.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteSuccess(w, project, "")
	}
}

// updateProject updates a project's name and/or description.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		var req updateProjectRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var problems []string
		if req.Name != nil {
			if *req.Name == "" {
				problems = append(problems, "name must not be empty")
			}
			if len(*req.Name) > 100 {
				problems = append(problems, "name must be at most 100 characters")
			}
		}
		if len(problems) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(problems))
			return
		}

		if req.Name != nil {
			project.Name = *req.Name
		}
		if req.Description != nil {
			project.Description = *req.Description
		}
		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		h.responder.WriteSuccess(w, updated, "Project updated successfully")
	}
}

// deleteProject removes a project and all its descendants.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteSuccess(w, nil, "Project deleted successfully")
	}
}

// getSections lists a project's sections with per-section progress.
func (h projectHandler) getSections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		progress := generator.Progress(*project)
		h.responder.WriteSuccess(w, progress.Sections, "")
	}
}

// getProgress returns the project-level completion view.
func (h projectHandler) getProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		progress := generator.Progress(*project)
		h.responder.WriteSuccess(w, map[string]any{
			"projectId":            project.ID,
			"projectName":          project.Name,
			"totalQuestions":       progress.TotalQuestions,
			"answeredQuestions":    progress.AnsweredQuestions,
			"completionPercentage": progress.CompletionPercentage,
			"sections":             progress.Sections,
			"lastUpdated":          project.UpdatedAt,
		}, "")
	}
}
