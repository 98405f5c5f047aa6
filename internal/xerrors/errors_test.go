package xerrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAsUnwrapsWrappedErrors(t *testing.T) {
	t.Parallel()

	cause := errors.New("template exploded")
	wrapped := fmt.Errorf("render home: %w", Internal(WithCause(cause)))

	appErr := As(wrapped)
	if appErr == nil {
		t.Fatal("As() = nil, want *Error")
	}
	if appErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", appErr.StatusCode)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is did not reach the cause")
	}
	if As(cause) != nil {
		t.Error("As() on a plain error should be nil")
	}
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "typed not found",
			err:        NotFound(WithMessage("no such page")),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"no such page"}`,
		},
		{
			name:       "plain error becomes internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"internal server error"}`,
		},
		{
			name:       "draining",
			err:        ServiceUnavailable(),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"message":"service unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			WriteError(t.Context(), rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}
}
