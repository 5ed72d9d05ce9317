package httpapi

import (
	"context"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/valyala/bytebufferpool"
)

// graphQLResponse is the standard GraphQL response envelope. Data is left
// out when the request failed before execution started.
type graphQLResponse struct {
	Data   any                        `json:"data,omitempty"`
	Errors []gqlerrors.FormattedError `json:"errors,omitempty"`
}

type requestError struct {
	Message string `json:"message"`
}

type requestErrorResponse struct {
	Errors []requestError `json:"errors"`
}

var internalErrorBody = []byte(`{"errors":[{"message":"internal server error"}]}` + "\n")

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		_, _ = buf.Write(internalErrorBody)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

// writeResult always answers 200; resolver and validation failures travel in
// the errors list.
func writeResult(ctx context.Context, w http.ResponseWriter, result *graphql.Result) {
	ctx, span := startSpan(ctx, "httpapi.writeResult")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, graphQLResponse{
		Data:   result.Data,
		Errors: result.Errors,
	})
}

func writeRequestError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	ctx, span := startSpan(ctx, "httpapi.writeRequestError")
	defer span.End()

	writeJSON(ctx, w, status, requestErrorResponse{
		Errors: []requestError{{Message: message}},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeRequestError(ctx, w, http.StatusInternalServerError, "internal server error")
}
