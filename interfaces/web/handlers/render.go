// Package handlers wires HTTP requests to application services and renders
// JSON responses.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"dsadmin/domain/contracts"
	"dsadmin/logging"
)

// RenderJSON writes v as a JSON response with the given status code.
func RenderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode response", "error", err)
	}
}

// errorResponse is the JSON body of every error response.
type errorResponse struct {
	Error string `json:"error"`
}

// RenderError maps an error to an HTTP status and writes it as JSON.
// Domain not-found errors become 404, validation errors 400, everything
// else 502 since the failure almost always originates upstream.
func RenderError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, contracts.ErrDataSetNotFound),
		errors.Is(err, contracts.ErrMetadataNotFound),
		errors.Is(err, contracts.ErrLogsCurrentPage):
		status = http.StatusNotFound
	case errors.As(err, &validationErrs):
		status = http.StatusBadRequest
	}
	RenderJSON(w, status, errorResponse{Error: err.Error()})
}

// RenderBadRequest writes a 400 with the given message.
func RenderBadRequest(w http.ResponseWriter, message string) {
	RenderJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

// DecodeAndValidate decodes the request body into v and runs struct
// validation on it.
func DecodeAndValidate(r *http.Request, validate *validator.Validate, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return validate.Struct(v)
}
