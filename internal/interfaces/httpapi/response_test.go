package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
)

func TestWriteResult_DataAndErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	writeResult(context.Background(), rec, &graphql.Result{
		Data:   map[string]any{"editPlayer": nil},
		Errors: []gqlerrors.FormattedError{gqlerrors.NewFormattedError("player=9999: resource not found")},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("unexpected Content-Type: %q", got)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body["data"])
	}
	if v, present := data["editPlayer"]; !present || v != nil {
		t.Fatalf("expected editPlayer=null, got %v", data)
	}
	errs, ok := body["errors"].([]any)
	if !ok || len(errs) != 1 {
		t.Fatalf("expected one error, got %v", body["errors"])
	}
}

func TestWriteResult_OmitsDataWhenNotExecuted(t *testing.T) {
	rec := httptest.NewRecorder()
	writeResult(context.Background(), rec, &graphql.Result{
		Errors: gqlerrors.FormatErrors(errors.New("Syntax Error GraphQL request (1:1) Unexpected <EOF>")),
	})

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if _, ok := body["data"]; ok {
		t.Fatalf("did not expect data key, got %v", body)
	}
}

func TestWriteRequestError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeRequestError(context.Background(), rec, http.StatusBadRequest, "must provide query string")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body requestErrorResponse
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if len(body.Errors) != 1 || body.Errors[0].Message != "must provide query string" {
		t.Fatalf("unexpected errors: %+v", body.Errors)
	}
}
