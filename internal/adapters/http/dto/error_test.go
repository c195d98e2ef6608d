package dto_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
)

func TestNewErrorResponse_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail string
	}{
		{"not found", domain.NotFound("task %s", "t-1"), http.StatusNotFound, "not_found", "not found: task t-1"},
		{"validation", domain.NewValidationError("title", domain.MsgRequired), http.StatusBadRequest, "validation", ""},
		{"conflict", domain.Conflict("cannot transition from TODO to DONE"), http.StatusConflict, "conflict", ""},
		{"forbidden", domain.Forbidden("viewers cannot modify tasks"), http.StatusForbidden, "forbidden", ""},
		{"unavailable", domain.ErrUnavailable, http.StatusBadGateway, "unavailable", ""},
		{"wrapped not found", fmt.Errorf("loading project: %w", domain.ErrNotFound), http.StatusNotFound, "not_found", "loading project: not found"},
		{"unclassified", errors.New("sqlite: database is locked"), http.StatusInternalServerError, "internal", "an internal error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/42", http.NoBody)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != http.StatusText(tt.wantStatus) {
				t.Errorf("Title = %q, want %q", got.Title, http.StatusText(tt.wantStatus))
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Type != "about:blank" || got.Instance != "/api/v1/tasks/42" {
				t.Errorf("Type/Instance = %q/%q", got.Type, got.Instance)
			}
			if tt.wantDetail != "" && got.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", got.Detail, tt.wantDetail)
			}
			if dto.StatusFor(tt.err) != tt.wantStatus {
				t.Errorf("StatusFor = %d, want %d", dto.StatusFor(tt.err), tt.wantStatus)
			}
		})
	}
}

func TestNewErrorResponse_ValidationDetails(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"title":    "is required",
		"priority": `invalid: "bad"`,
		"scope":    `invalid: "all"`,
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/projects/p-1/tasks", http.NoBody)
	got := dto.NewErrorResponse(r, verr)

	want := []dto.ErrorDetail{
		{Location: "body.priority", Message: `invalid: "bad"`},
		{Location: "body.title", Message: "is required"},
		{Location: "query.scope", Message: `invalid: "all"`},
	}
	if len(got.Errors) != len(want) {
		t.Fatalf("Errors = %+v, want %d entries", got.Errors, len(want))
	}
	for i := range want {
		if got.Errors[i].Location != want[i].Location || got.Errors[i].Message != want[i].Message {
			t.Errorf("Errors[%d] = %+v, want %+v", i, got.Errors[i], want[i])
		}
	}
}

func TestNewErrorResponse_NoDetailsOutsideValidation(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/1", http.NoBody)
	if got := dto.NewErrorResponse(r, domain.ErrNotFound); got.Errors != nil {
		t.Errorf("Errors = %v, want nil", got.Errors)
	}
}

func TestWriteErrorResponse_Body(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", http.NoBody)

	dto.WriteErrorResponse(w, r, domain.NewValidationError("title", domain.MsgRequired))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.Code != "validation" || len(resp.Errors) != 1 || resp.Errors[0].Location != "body.title" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestWriteErrorResponse_HidesAndLogsInternalErrors(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New("info", "json", &logs))

	w := httptest.NewRecorder()
	r := httptest.NewRequestWithContext(ctx, http.MethodGet, "/api/v1/tasks/42", http.NoBody)

	dto.WriteErrorResponse(w, r, errors.New("scanning row: column 7 is NULL"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "column 7") {
		t.Errorf("body leaks the internal error: %s", w.Body.String())
	}
	if !strings.Contains(logs.String(), "column 7 is NULL") {
		t.Errorf("log = %q, want the full internal error", logs.String())
	}
}

func TestWriteProblem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status        int
		wantChallenge bool
	}{
		{http.StatusUnauthorized, true},
		{http.StatusRequestEntityTooLarge, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/projects", http.NoBody)

			dto.WriteProblem(w, r, tt.status, "detail text")

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if got := w.Header().Get("WWW-Authenticate") != ""; got != tt.wantChallenge {
				t.Errorf("WWW-Authenticate present = %v, want %v", got, tt.wantChallenge)
			}

			var resp dto.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if resp.Detail != "detail text" || resp.Title != http.StatusText(tt.status) || resp.Code != "" {
				t.Errorf("resp = %+v", resp)
			}
		})
	}
}
