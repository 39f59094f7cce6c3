package generator

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/specsmith/specsmith-backend/database"
	"github.com/specsmith/specsmith-backend/models"
)

// Service orchestrates document generation: flatten the project's
// answers, run all eight renderers, and persist the result atomically.
type Service struct {
	logger   zerolog.Logger
	db       database.Database
	strategy Strategy
}

func NewService(db database.Database, strategy Strategy) Service {
	logger := log.With().Str("serviceName", "generator").Logger()
	return Service{
		logger:   logger,
		db:       db,
		strategy: strategy,
	}
}

// Strategy returns the active classification strategy.
func (s Service) Strategy() Strategy {
	return s.strategy
}

// GenerateAll produces and persists the full output set for a project.
// Generation is destructive-idempotent: re-running with unchanged
// answers writes byte-identical content over the previous set, and a
// storage failure leaves the previous set untouched. Callers must have
// verified the project exists.
func (s Service) GenerateAll(projectID uuid.UUID) ([]GeneratedOutput, error) {
	sections, err := s.db.SectionRepo().FindByProject(projectID)
	if err != nil {
		return nil, err
	}

	answers := Flatten(sections)
	outputs := RenderAll(answers, s.strategy)

	records := make([]models.Output, len(outputs))
	for i, output := range outputs {
		records[i] = models.Output{
			ProjectID: projectID,
			Type:      output.Type,
			Content:   output.Content,
		}
	}
	if err := s.db.OutputRepo().ReplaceAll(projectID, records); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("projectId", projectID.String()).
		Int("answers", len(answers)).
		Int("documents", len(outputs)).
		Str("strategy", string(s.strategy)).
		Msg("generated specification documents")
	return outputs, nil
}
