package httpapi

import (
	"context"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/riskibarqy/league-graphql/internal/interfaces/graphqlapi"
	"github.com/riskibarqy/league-graphql/internal/platform/logging"
)

// Executor runs a GraphQL request against a schema.
type Executor interface {
	Do(ctx context.Context, req graphqlapi.Request) *graphql.Result
}

type Handler struct {
	executor        Executor
	logger          *logging.Logger
	validator       *validator.Validate
	graphiQLEnabled bool
}

func NewHandler(executor Executor, logger *logging.Logger, graphiQLEnabled bool) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		executor:        executor,
		logger:          logger,
		validator:       validator.New(),
		graphiQLEnabled: graphiQLEnabled,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) RedirectRoot(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.RedirectRoot")
	defer span.End()

	http.Redirect(w, r, "/graphql", http.StatusFound)
}

func (h *Handler) GraphQLPost(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GraphQLPost")
	defer span.End()

	params, err := readGraphQLBody(ctx, w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "read graphql request failed", "error", err)
		writeRequestError(ctx, w, requestErrorStatus(err), crerr.UnwrapAll(err).Error())
		return
	}

	h.execute(ctx, w, params)
}

func (h *Handler) GraphQLGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GraphQLGet")
	defer span.End()

	params := paramsFromQuery(r.URL.Query())
	if h.graphiQLEnabled && params.Query == "" && acceptsHTML(r) {
		writeGraphiQL(ctx, w)
		return
	}

	if params.Query != "" && operationType(params.Query, params.OperationName) == ast.OperationTypeMutation {
		w.Header().Set("Allow", http.MethodPost)
		writeRequestError(ctx, w, http.StatusMethodNotAllowed, "mutations are only supported over POST")
		return
	}

	h.execute(ctx, w, params)
}

func (h *Handler) execute(ctx context.Context, w http.ResponseWriter, params graphQLParams) {
	if err := h.validator.Struct(params); err != nil {
		writeRequestError(ctx, w, http.StatusBadRequest, errMissingQuery.Error())
		return
	}

	req, err := params.toRequest()
	if err != nil {
		h.logger.WarnContext(ctx, "decode graphql variables failed", "error", err)
		writeRequestError(ctx, w, http.StatusBadRequest, crerr.UnwrapAll(err).Error())
		return
	}

	annotateOperation(ctx, req)
	result := h.executor.Do(ctx, req)
	recordResultErrors(ctx, result)
	if result.HasErrors() {
		h.logger.DebugContext(ctx, "graphql request returned errors",
			"operation_name", req.OperationName,
			"error_count", len(result.Errors),
		)
	}

	writeResult(ctx, w, result)
}

func requestErrorStatus(err error) int {
	switch {
	case crerr.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case crerr.Is(err, errUnsupportedMedium):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadRequest
	}
}

func acceptsHTML(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if strings.EqualFold(mediaType, "text/html") {
			return true
		}
	}
	return false
}
