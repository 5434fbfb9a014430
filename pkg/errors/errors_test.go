package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAsUnwrapsThroughChain(t *testing.T) {
	base := New(KindValidation, "quantity must be positive")
	wrapped := fmt.Errorf("adding to cart: %w", base)

	typed := As(wrapped)
	if typed == nil {
		t.Fatal("expected typed error")
	}
	if typed.Kind() != KindValidation {
		t.Fatalf("unexpected kind: %s", typed.Kind())
	}
	if typed.Message() != "quantity must be positive" {
		t.Fatalf("unexpected message: %s", typed.Message())
	}
}

func TestNormalizeUntypedError(t *testing.T) {
	err := Normalize(KindTransport, fmt.Errorf("dial tcp: connection refused"))
	if err.Kind() != KindTransport {
		t.Fatalf("unexpected kind: %s", err.Kind())
	}
	if err.Message() != "dial tcp: connection refused" {
		t.Fatalf("unexpected message: %s", err.Message())
	}
}

func TestNormalizeKeepsExistingKind(t *testing.T) {
	original := New(KindApplication, "invalid credentials")
	err := Normalize(KindTransport, fmt.Errorf("login: %w", original))
	if err.Kind() != KindApplication {
		t.Fatalf("expected application kind, got %s", err.Kind())
	}
}

func TestMetadataForUnknownKind(t *testing.T) {
	meta := MetadataFor(Kind("SOMETHING_ELSE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestNilErrorAccessors(t *testing.T) {
	var e *Error
	if e.Kind() != KindInternal {
		t.Fatalf("nil kind should default to internal")
	}
	if e.Message() != "" || e.Error() != "" {
		t.Fatal("nil error should render empty strings")
	}
}
