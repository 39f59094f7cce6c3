package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/specsmith/specsmith-backend/config"
	"github.com/specsmith/specsmith-backend/errs"
)

// Supported suggestion providers.
const (
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
	ProviderZai    = "zai"
)

// SuggestionConfidence is a placeholder constant, not a computed
// score; clients must not treat it as a meaningful signal.
const SuggestionConfidence = 0.85

const (
	claudeModel   = "claude-3-5-haiku-20241022"
	openAIModel   = "gpt-4o-mini"
	zaiModel      = "glm-4.6"
	zaiBaseURL    = "https://api.z.ai/api/paas/v4"
	suggestionCap = 300
)

// PreviousAnswer is one already-answered question fed into the prompt
// as project context.
type PreviousAnswer struct {
	SectionNumber int
	QuestionText  string
	AnswerText    string
}

// SuggestionInput carries everything the prompt needs about the
// project and the question being answered.
type SuggestionInput struct {
	ProjectName        string
	ProjectDescription string
	SectionTitle       string
	QuestionText       string
	PreviousAnswers    []PreviousAnswer
}

// Suggester produces single-shot answer suggestions from one of the
// configured model providers. Calls carry no retry policy: a missing
// credential, transport failure, or malformed reply surfaces
// immediately and the user re-triggers manually.
type Suggester struct {
	logger zerolog.Logger
	cfg    map[string]string
}

func NewSuggester(cfg map[string]string) Suggester {
	logger := log.With().Str("serviceName", "suggester").Logger()
	return Suggester{logger: logger, cfg: cfg}
}

// Suggest asks the named provider for a suggestion.
func (s Suggester) Suggest(ctx context.Context, provider string, input SuggestionInput) (string, error) {
	model, providerName, err := s.modelFor(provider)
	if err != nil {
		return "", err
	}

	prompt := BuildContextPrompt(input)
	completion, err := llms.GenerateFromSinglePrompt(ctx, model, prompt, llms.WithMaxTokens(suggestionCap))
	if err != nil {
		s.logger.Error().Err(err).Str("provider", provider).Msg("suggestion request failed")
		return "", errs.NewProviderCallError(providerName, err)
	}

	completion = strings.TrimSpace(completion)
	if completion == "" {
		return "", errs.NewProviderResponseError(providerName, nil)
	}
	return completion, nil
}

// modelFor builds the provider client, rejecting providers whose
// credential is absent from configuration.
func (s Suggester) modelFor(provider string) (llms.Model, string, error) {
	switch provider {
	case ProviderClaude:
		key := config.GetString(s.cfg, "ANTHROPIC_API_KEY", "")
		if key == "" {
			return nil, "", errs.NewProviderNotConfiguredError("Anthropic", "ANTHROPIC_API_KEY")
		}
		model, err := anthropic.New(anthropic.WithToken(key), anthropic.WithModel(claudeModel))
		if err != nil {
			return nil, "", errs.NewConfigError("anthropic client", err)
		}
		return model, "Anthropic", nil
	case ProviderOpenAI:
		key := config.GetString(s.cfg, "OPENAI_API_KEY", "")
		if key == "" {
			return nil, "", errs.NewProviderNotConfiguredError("OpenAI", "OPENAI_API_KEY")
		}
		model, err := openai.New(openai.WithToken(key), openai.WithModel(openAIModel))
		if err != nil {
			return nil, "", errs.NewConfigError("openai client", err)
		}
		return model, "OpenAI", nil
	case ProviderZai:
		key := config.GetString(s.cfg, "ZAI_API_KEY", "")
		if key == "" {
			return nil, "", errs.NewProviderNotConfiguredError("Z.ai", "ZAI_API_KEY")
		}
		model, err := openai.New(openai.WithToken(key), openai.WithModel(zaiModel), openai.WithBaseURL(zaiBaseURL))
		if err != nil {
			return nil, "", errs.NewConfigError("zai client", err)
		}
		return model, "Z.ai", nil
	default:
		return nil, "", errs.NewUnknownProviderError(provider)
	}
}

// BuildContextPrompt assembles the provider-agnostic prompt: project
// framing, any previous answers, then the current question with
// instructions for a short, project-specific suggestion.
func BuildContextPrompt(input SuggestionInput) string {
	var b strings.Builder
	b.WriteString("You are helping a user answer questions about their project idea to generate detailed specifications.\n\n")
	fmt.Fprintf(&b, "Project Name: %s\n", input.ProjectName)
	if input.ProjectDescription != "" {
		fmt.Fprintf(&b, "Project Description: %s\n", input.ProjectDescription)
	}
	b.WriteString("\n")

	answered := 0
	for _, prev := range input.PreviousAnswers {
		if strings.TrimSpace(prev.AnswerText) == "" {
			continue
		}
		if answered == 0 {
			b.WriteString("Previous answers from this project:\n\n")
		}
		fmt.Fprintf(&b, "Section %d - %s\nAnswer: %s\n\n", prev.SectionNumber, prev.QuestionText, prev.AnswerText)
		answered++
	}
	if answered == 0 {
		b.WriteString("This is the first question being answered.\n\n")
	}

	if input.SectionTitle != "" {
		fmt.Fprintf(&b, "Current Section: %s\n", input.SectionTitle)
	}
	fmt.Fprintf(&b, "Current Question: %s\n\n", input.QuestionText)
	b.WriteString("Based on the project context and previous answers, provide a helpful, specific suggestion for answering this question. The suggestion should:\n")
	b.WriteString("1. Reference relevant details from previous answers\n")
	b.WriteString("2. Be specific to this project (not generic advice)\n")
	b.WriteString("3. Be 2-4 sentences long\n")
	b.WriteString("4. Help the user think through what to include in their answer\n\n")
	b.WriteString("Provide only the suggestion text, no preamble or meta-commentary.")
	return b.String()
}
