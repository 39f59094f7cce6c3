package api

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/specsmith/specsmith-backend/database"
	"github.com/specsmith/specsmith-backend/errs"
	"github.com/specsmith/specsmith-backend/models"
	"github.com/specsmith/specsmith-backend/questionnaire"
)

const (
	maxSectionNumber  = 18
	maxQuestionNumber = 30
	maxAnswerLength   = 5000
)

type answerHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	sectionRepo *database.SectionRepo
	answerRepo  *database.AnswerRepo
}

func newAnswerHandler(db database.Database) answerHandler {
	logger := log.With().Str("handlerName", "answerHandler").Logger()

	return answerHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: db.ProjectRepo(),
		sectionRepo: db.SectionRepo(),
		answerRepo:  db.AnswerRepo(),
	}
}

type saveAnswerRequest struct {
	SectionNumber  int     `json:"sectionNumber"`
	QuestionNumber int     `json:"questionNumber"`
	QuestionText   string  `json:"questionText"`
	AnswerText     *string `json:"answerText"`
	AiSuggestion   *string `json:"aiSuggestion"`
	IsAiGenerated  bool    `json:"isAiGenerated"`
}

func (req saveAnswerRequest) validate() []string {
	var problems []string
	if req.SectionNumber < 1 || req.SectionNumber > maxSectionNumber {
		problems = append(problems, fmt.Sprintf("sectionNumber must be between 1 and %d", maxSectionNumber))
	}
	if req.QuestionNumber < 1 || req.QuestionNumber > maxQuestionNumber {
		problems = append(problems, fmt.Sprintf("questionNumber must be between 1 and %d", maxQuestionNumber))
	}
	if req.QuestionText == "" {
		problems = append(problems, "questionText is required")
	}
	if req.AnswerText != nil && utf8.RuneCountInString(*req.AnswerText) > maxAnswerLength {
		problems = append(problems, fmt.Sprintf("answerText must be at most %d characters", maxAnswerLength))
	}
	return problems
}

// sectionTitleFor looks up the bank title for a section so lazily
// created rows carry the real title instead of a placeholder. Section
// titles feed keyword classification during generation.
func sectionTitleFor(questionnaireType string, sectionNumber int) string {
	if section, ok := questionnaire.SectionByNumber(questionnaire.ForType(questionnaireType), sectionNumber); ok {
		return section.Title
	}
	return ""
}

// saveAnswer upserts one answer, lazily creating its section row. The
// client debounces keystrokes but bursts of near-duplicate saves are
// still expected; upsert-by-key makes them harmless, last write wins.
func (h answerHandler) saveAnswer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req saveAnswerRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if problems := req.validate(); len(problems) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(problems))
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

		section, err := h.sectionRepo.FindOrCreate(projectID, req.SectionNumber, sectionTitleFor(project.QuestionnaireType, req.SectionNumber))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find or create", "section", err))
			return
		}

		answer := models.Answer{
			SectionID:      section.ID,
			QuestionNumber: req.QuestionNumber,
			QuestionText:   req.QuestionText,
			AnswerText:     req.AnswerText,
			AiSuggestion:   req.AiSuggestion,
			IsAiGenerated:  req.IsAiGenerated,
		}
		if err := h.answerRepo.Upsert(&answer); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "answer", err))
			return
		}

		if err := h.projectRepo.Touch(projectID); err != nil {
			h.logger.Error().Err(err).Msg("failed to touch project after answer save")
		}

		saved, err := h.answerRepo.FindByKey(section.ID, req.QuestionNumber)
		if err != nil || saved == nil {
			h.responder.WriteSuccess(w, answer, "Answer saved successfully")
			return
		}
		h.responder.WriteSuccess(w, saved, "Answer saved successfully")
	}
}
