package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/specsmith/specsmith-backend/errs"
)

// apiResponse is the uniform envelope: {success:true, data, message?}
// on the happy path, {success:false, error} otherwise.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) writeJSON(w http.ResponseWriter, status int, payload apiResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteSuccess writes a 200 with the standard success envelope.
func (r Responder) WriteSuccess(w http.ResponseWriter, data any, message string) {
	r.writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: data, Message: message})
}

// WriteCreated writes a 201 with the standard success envelope.
func (r Responder) WriteCreated(w http.ResponseWriter, data any, message string) {
	r.writeJSON(w, http.StatusCreated, apiResponse{Success: true, Data: data, Message: message})
}

// WriteError converts any error to the uniform error envelope. Known
// *ApiErr values keep their status code and message; everything else
// is logged and collapsed to a generic 500.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.writeJSON(w, http.StatusInternalServerError, apiResponse{
			Success: false,
			Error:   "An unexpected error occurred",
		})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Msg(apiErr.Error())
	}
	r.writeJSON(w, apiErr.StatusCode, apiResponse{
		Success: false,
		Error:   apiErr.Error(),
	})
}

// wrapDatabaseError tags a storage failure with its operation and entity.
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
