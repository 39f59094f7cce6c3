package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/specsmith/specsmith-backend/database"
	"github.com/specsmith/specsmith-backend/errs"
	"github.com/specsmith/specsmith-backend/generator"
	"github.com/specsmith/specsmith-backend/models"
	"github.com/specsmith/specsmith-backend/services"
)

type generateHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	outputRepo  *database.OutputRepo
	sectionRepo *database.SectionRepo
	generator   generator.Service
}

func newGenerateHandler(db database.Database, gen generator.Service) generateHandler {
	logger := log.With().Str("handlerName", "generateHandler").Logger()

	return generateHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: db.ProjectRepo(),
		outputRepo:  db.OutputRepo(),
		sectionRepo: db.SectionRepo(),
		generator:   gen,
	}
}

type generatedFile struct {
	Type     string `json:"type"`
	Filename string `json:"filename"`
}

type outputSummary struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h generateHandler) findProject(projectID uuid.UUID) (*models.Project, error) {
	project, err := h.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, wrapDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewNotFoundError("Project not found")
	}
	return project, nil
}

func (h generateHandler) generateOutputs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if _, err := h.findProject(projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		docs, err := h.generator.GenerateAll(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		files := make([]generatedFile, 0, len(docs))
		for _, doc := range docs {
			files = append(files, generatedFile{Type: doc.Type, Filename: doc.Filename})
		}

		message := fmt.Sprintf("Generated %d specification documents", len(files))
		payload := map[string]any{
			"generated": len(files),
			"outputs":   files,
			"message":   message,
		}
		h.responder.WriteSuccess(w, payload, message)
	}
}

func (h generateHandler) getOutputs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if _, err := h.findProject(projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		outputs, err := h.outputRepo.FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "outputs", err))
			return
		}

		summaries := make([]outputSummary, 0, len(outputs))
		for _, output := range outputs {
			summaries = append(summaries, outputSummary{
				ID:        output.ID,
				Type:      output.Type,
				CreatedAt: output.CreatedAt,
			})
		}
		h.responder.WriteSuccess(w, map[string]any{
			"outputs": summaries,
			"total":   len(summaries),
		}, "")
	}
}

type downloadFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Content  string `json:"content"`
}

// downloadOutputs serves the generated documents as JSON by default,
// or as a zip archive when ?format=zip is given. The archive also
// carries README.md and EXECUTIVE_SUMMARY.md which are built at export
// time and never persisted as outputs.
func (h generateHandler) downloadOutputs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		project, err := h.findProject(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		outputs, err := h.outputRepo.FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "outputs", err))
			return
		}
		if len(outputs) == 0 {
			h.responder.WriteError(w, errs.NewPreconditionError("No outputs generated yet. Generate outputs first."))
			return
		}

		if r.URL.Query().Get("format") == "zip" {
			sections, err := h.sectionRepo.FindByProject(projectID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "sections", err))
				return
			}
			answers := generator.Flatten(sections)

			archive, err := services.BuildArchive(*project, outputs, answers)
			if err != nil {
				h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to build archive", err))
				return
			}

			w.Header().Set("Content-Type", "application/zip")
			w.Header().Set("Content-Disposition",
				fmt.Sprintf("attachment; filename=%q", services.ArchiveFilename(project.Name)))
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write(archive); err != nil {
				h.logger.Error().Err(err).Msg("failed to write archive response")
			}
			return
		}

		files := make([]downloadFile, 0, len(outputs))
		for _, output := range outputs {
			files = append(files, downloadFile{
				Filename: models.FilenameForType(output.Type),
				Type:     output.Type,
				Content:  output.Content,
			})
		}
		h.responder.WriteSuccess(w, map[string]any{
			"projectName":        project.Name,
			"projectDescription": project.Description,
			"generatedAt":        time.Now().UTC().Format(time.RFC3339),
			"outputs":            files,
		}, "")
	}
}
