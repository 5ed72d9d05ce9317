package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/league-graphql/internal/platform/logging"
)

type headerCountingWriter struct {
	*httptest.ResponseRecorder
	writeHeaderCalls int
}

func (w *headerCountingWriter) WriteHeader(status int) {
	w.writeHeaderCalls++
	w.ResponseRecorder.WriteHeader(status)
}

func TestRecoverPanic_BeforeResponseWritesInternalError(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("resolver exploded")
	})

	rec := &headerCountingWriter{ResponseRecorder: httptest.NewRecorder()}
	recoverPanic(logging.NewNop(), next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/graphql", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if rec.writeHeaderCalls != 1 {
		t.Fatalf("expected one WriteHeader call, got %d", rec.writeHeaderCalls)
	}
}

func TestRecoverPanic_AfterResponseStartedLeavesItAlone(t *testing.T) {
	const partial = `{"data":{"leagues":[`
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(partial))
		panic("encoder exploded")
	})

	rec := &headerCountingWriter{ResponseRecorder: httptest.NewRecorder()}
	recoverPanic(logging.NewNop(), next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/graphql", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 to be kept, got %d", rec.Code)
	}
	if rec.writeHeaderCalls != 1 {
		t.Fatalf("expected one WriteHeader call, got %d", rec.writeHeaderCalls)
	}
	if got := rec.Body.String(); got != partial {
		t.Fatalf("expected body to stay %q, got %q", partial, got)
	}
}

func TestRecoverPanic_AfterImplicitHeaderLeavesItAlone(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("partial"))
		panic("late failure")
	})

	rec := &headerCountingWriter{ResponseRecorder: httptest.NewRecorder()}
	recoverPanic(logging.NewNop(), next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql", nil))

	if rec.writeHeaderCalls != 0 {
		t.Fatalf("expected no explicit WriteHeader call, got %d", rec.writeHeaderCalls)
	}
	if got := rec.Body.String(); got != "partial" {
		t.Fatalf("unexpected body %q", got)
	}
}
