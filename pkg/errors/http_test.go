package errors_test

import (
	"errors"
	"net/http"
	"testing"

	pkgErrors "github.com/giorgi26/Planner/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	if err.Error() != "task not found" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.StatusCode() != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.StatusCode())
	}

	var target *pkgErrors.HTTPError
	if !errors.As(error(err), &target) {
		t.Fatal("errors.As should find *HTTPError")
	}

	bogus := pkgErrors.NewHTTPError(42, "bogus")
	if bogus.StatusCode() != http.StatusInternalServerError {
		t.Errorf("expected out-of-range code to fall back to 500, got %d", bogus.StatusCode())
	}
}
