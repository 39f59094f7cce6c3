package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/specsmith/specsmith-backend/database"
	"github.com/specsmith/specsmith-backend/errs"
	"github.com/specsmith/specsmith-backend/generator"
	"github.com/specsmith/specsmith-backend/services"
)

type suggestHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	sectionRepo *database.SectionRepo
	suggester   services.Suggester
}

func newSuggestHandler(db database.Database, suggester services.Suggester) suggestHandler {
	logger := log.With().Str("handlerName", "suggestHandler").Logger()

	return suggestHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: db.ProjectRepo(),
		sectionRepo: db.SectionRepo(),
		suggester:   suggester,
	}
}

type suggestRequest struct {
	Provider     string `json:"provider"`
	QuestionText string `json:"questionText"`
	SectionTitle string `json:"sectionTitle"`
}

func (h suggestHandler) suggest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req suggestRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.QuestionText == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("questionText"))
			return
		}
		if req.Provider == "" {
			req.Provider = services.ProviderClaude
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

		sections, err := h.sectionRepo.FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "sections", err))
			return
		}

		previous := make([]services.PreviousAnswer, 0)
		for _, answer := range generator.Flatten(sections) {
			previous = append(previous, services.PreviousAnswer{
				SectionNumber: answer.SectionNumber,
				QuestionText:  answer.QuestionText,
				AnswerText:    answer.AnswerText,
			})
		}

		suggestion, err := h.suggester.Suggest(r.Context(), req.Provider, services.SuggestionInput{
			ProjectName:        project.Name,
			ProjectDescription: project.Description,
			SectionTitle:       req.SectionTitle,
			QuestionText:       req.QuestionText,
			PreviousAnswers:    previous,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteSuccess(w, map[string]any{
			"suggestion": suggestion,
			"provider":   req.Provider,
			"confidence": services.SuggestionConfidence,
		}, "")
	}
}
