package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/specsmith/specsmith-backend/database"
	"github.com/specsmith/specsmith-backend/errs"
	"github.com/specsmith/specsmith-backend/generator"
	"github.com/specsmith/specsmith-backend/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler  projectHandler
	answerHandler   answerHandler
	generateHandler generateHandler
	suggestHandler  suggestHandler
}

// initializeHandlers creates all handlers around the shared database,
// generation service and suggester.
func initializeHandlers(db database.Database, gen generator.Service, suggester services.Suggester) *routeHandlers {
	return &routeHandlers{
		projectHandler:  newProjectHandler(db),
		answerHandler:   newAnswerHandler(db),
		generateHandler: newGenerateHandler(db, gen),
		suggestHandler:  newSuggestHandler(db, suggester),
	}
}

// parseProjectID extracts and validates the projectID URL parameter.
func parseProjectID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "projectID")
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing projectID")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid projectID")
	}
	return id, nil
}

// decodeBody reads and decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.NewBadRequestError("failed to read request body")
	}
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(dst); err != nil {
		return errs.NewInvalidJSONError(err)
	}
	return nil
}
