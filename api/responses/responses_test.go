package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/carewell-health/carewell-backend/pkg/errors"
	"github.com/carewell-health/carewell-backend/pkg/types"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) types.ErrorEnvelope {
	t.Helper()
	var envelope types.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return envelope
}

func TestWriteSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var envelope types.SuccessEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Success {
		t.Fatalf("expected success true")
	}
	if envelope.Data == nil {
		t.Fatalf("expected data payload")
	}
}

func TestWriteErrorMapsTypedCode(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeConflict, "a log already exists for this date"))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	envelope := decodeError(t, rec)
	if envelope.Success {
		t.Fatalf("expected success false")
	}
	if envelope.Error.Code != string(pkgerrors.CodeConflict) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
	if envelope.Message != "a log already exists for this date" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	cause := errors.New("pq: connection refused to 10.0.0.5")
	WriteError(context.Background(), nil, rec, pkgerrors.Wrap(pkgerrors.CodeInternal, cause, "query failed"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	envelope := decodeError(t, rec)
	if envelope.Message != "internal server error" {
		t.Fatalf("internal cause leaked: %q", envelope.Message)
	}
}

func TestWriteErrorUntypedBecomesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, errors.New("surprise"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	envelope := decodeError(t, rec)
	if envelope.Error.Code != string(pkgerrors.CodeInternal) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
}

func TestWriteErrorIncludesValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
		WithDetails(map[string]string{"email": "must be a valid email"})
	WriteError(context.Background(), nil, rec, err)

	envelope := decodeError(t, rec)
	if envelope.Error.Details == nil {
		t.Fatalf("expected validation details in payload")
	}
}

func TestWriteErrorStripsDetailsWhenNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeForbidden, "access denied").
		WithDetails(map[string]string{"internal": "roster mismatch"})
	WriteError(context.Background(), nil, rec, err)

	envelope := decodeError(t, rec)
	if envelope.Error.Details != nil {
		t.Fatalf("forbidden responses must not carry details")
	}
}
