package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/dugout-app/dugout/pkg/proto"
)

// maxBodyBytes caps the size of JSON request bodies.
const maxBodyBytes = 1 << 20

func renderStatus(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		io.WriteString(w, fmt.Sprintf("%d %s", code, http.StatusText(code))) //nolint:errcheck,gosec
	}
}

// errorResponse is the body of every API error.
type errorResponse struct {
	Error string `json:"error"`
}

// renderJSON renders a JSON response with the given status code and value.
func renderJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("error encoding json", "err", err)
	}
}

func renderError(w http.ResponseWriter, _ *http.Request, statusCode int, err error) {
	renderJSON(w, statusCode, errorResponse{Error: err.Error()})
}

// statusCode maps an error family onto an HTTP status code.
func statusCode(err error) int {
	switch {
	case errors.Is(err, proto.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, proto.ErrPolicyViolation),
		errors.Is(err, proto.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, proto.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, proto.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// renderAPIError renders err with the status of its family. Unexpected
// errors are logged and hidden from the client.
func renderAPIError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		log.FromContext(r.Context()).Error("request failed", "err", err)
		err = errors.New(http.StatusText(code))
	}
	renderError(w, r, code, err)
}

func renderNotFound(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, http.StatusNotFound, errors.New(http.StatusText(http.StatusNotFound)))
}

func renderMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, http.StatusMethodNotAllowed, errors.New(http.StatusText(http.StatusMethodNotAllowed)))
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: bad request body: %v", proto.ErrInvalidArgument, err)
	}
	return nil
}

// queryInt returns the integer query parameter key, or 0 when it is absent.
func queryInt(r *http.Request, key string) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", proto.ErrInvalidArgument, key)
	}
	return n, nil
}
