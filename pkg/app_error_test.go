package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: dynamodb timeout" {
		t.Fatalf("unexpected message: %q", e.Error())
	}

	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	if simple.HTTPStatus != http.StatusNotFound || simple.Error() != "PROJECT_NOT_FOUND: Project not found" {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
}

func TestNewValidationError(t *testing.T) {
	e := NewValidationError(map[string]string{"name": "required"})

	if e.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", e.HTTPStatus)
	}
	body := e.ToHTTPError()
	if body.Fields["name"] != "required" {
		t.Fatalf("unexpected fields: %+v", body.Fields)
	}
}
