package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

const (
	problemContentType = "application/problem+json"

	// internalDetail replaces the message of unclassified errors, which
	// may carry storage or driver internals.
	internalDetail = "an internal error occurred"
)

// ErrorResponse is an RFC 9457 problem document. Code is a stable,
// machine-readable kind such as "conflict".
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code,omitempty"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one invalid field, located as "body.<field>" or
// "query.<field>".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// errorKinds maps each domain sentinel to its status and code. Order
// matters only for errors that wrap more than one sentinel.
var errorKinds = []struct {
	sentinel error
	status   int
	code     string
}{
	{domain.ErrValidation, http.StatusBadRequest, "validation"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrUnavailable, http.StatusBadGateway, "unavailable"},
}

// StatusFor returns the HTTP status for err. Unclassified errors are 500.
func StatusFor(err error) int {
	status, _ := classify(err)
	return status
}

func classify(err error) (int, string) {
	for _, k := range errorKinds {
		if errors.Is(err, k.sentinel) {
			return k.status, k.code
		}
	}
	return http.StatusInternalServerError, "internal"
}

// publicMessage is err's message, or a generic one for unclassified errors.
func publicMessage(err error) string {
	if status, _ := classify(err); status == http.StatusInternalServerError {
		return internalDetail
	}
	return err.Error()
}

// NewErrorResponse builds the problem document for err. The request URI
// becomes the instance.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, code := classify(err)
	resp := newProblem(r, status, publicMessage(err))
	resp.Code = code

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes the problem document for err. Unclassified
// errors are logged in full since the client only sees a generic detail.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	if resp.Status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "unhandled error",
			slog.String("instance", resp.Instance),
			slog.Any("error", err),
		)
	}
	writeProblem(w, r, resp)
}

// WriteProblem writes a problem that has no domain error behind it, such as
// a missing bearer token. A 401 carries a Bearer challenge.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="taskflow"`)
	}
	writeProblem(w, r, newProblem(r, status, detail))
}

func newProblem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode problem response",
			slog.Any("error", err),
		)
	}
}

// queryFields are reported under "query." rather than "body.".
var queryFields = map[string]bool{"scope": true, "email": true}

// validationFieldsToDetails sorts the invalid fields by location.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := "body." + field
		if queryFields[field] {
			loc = "query." + field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
