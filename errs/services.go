package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Third-party model provider and configuration sentinels.
var (
	ErrProviderNotConfigured = errors.New("provider not configured")
	ErrProviderResponse      = errors.New("unexpected provider response")
	ErrUnknownProvider       = errors.New("unknown provider")
	ErrConfigMissing         = errors.New("configuration missing")
)

// NewProviderNotConfiguredError names the missing credential so the
// operator knows exactly which key to set. The message is served
// verbatim, e.g. "OpenAI API key not configured".
func NewProviderNotConfiguredError(providerName, envVar string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("%s API key not configured", providerName),
		Field:      envVar,
		Cause:      ErrProviderNotConfigured,
	}
}

// NewProviderResponseError covers malformed or empty upstream replies.
func NewProviderResponseError(providerName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("unexpected response format from %s", providerName),
		Cause:      cause,
	}
}

// NewProviderCallError covers transport-level failures reaching the
// provider. Single-shot: the caller surfaces it, never retries.
func NewProviderCallError(providerName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        fmt.Errorf("%s request failed", providerName),
		Cause:      cause,
	}
}

func NewUnknownProviderError(provider string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnknownProvider,
		Details:    fmt.Sprintf("Unknown provider %q: expected claude, openai or zai", provider),
		Field:      "provider",
	}
}

func NewConfigError(configName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("Configuration error for %s", configName),
		Cause:      cause,
	}
}

func IsProviderNotConfigured(err error) bool {
	return errors.Is(err, ErrProviderNotConfigured)
}

func IsUnknownProvider(err error) bool {
	return errors.Is(err, ErrUnknownProvider)
}
