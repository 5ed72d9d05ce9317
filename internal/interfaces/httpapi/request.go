package httpapi

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/riskibarqy/league-graphql/internal/interfaces/graphqlapi"
)

const maxRequestBodyBytes = 1 << 20

var (
	errMissingQuery      = crerr.New("must provide query string")
	errInvalidVariables  = crerr.New("variables must be a JSON object")
	errInvalidBody       = crerr.New("request body must be a JSON object")
	errBodyTooLarge      = crerr.New("request body too large")
	errUnsupportedMedium = crerr.New("unsupported content type")
)

// graphQLParams is the transport form of a request; variables may arrive
// either as an object or as a JSON-encoded string.
type graphQLParams struct {
	Query         string `json:"query" validate:"required"`
	OperationName string `json:"operationName"`
	Variables     any    `json:"variables"`
}

func (p graphQLParams) toRequest() (graphqlapi.Request, error) {
	variables, err := decodeVariables(p.Variables)
	if err != nil {
		return graphqlapi.Request{}, err
	}

	return graphqlapi.Request{
		Query:         p.Query,
		OperationName: p.OperationName,
		Variables:     variables,
	}, nil
}

func decodeVariables(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	case string:
		if strings.TrimSpace(v) == "" || v == "null" {
			return nil, nil
		}
		var out map[string]any
		if err := sonic.UnmarshalString(v, &out); err != nil {
			return nil, crerr.WithSecondaryError(errInvalidVariables, err)
		}
		return out, nil
	default:
		return nil, errInvalidVariables
	}
}

func paramsFromQuery(values url.Values) graphQLParams {
	params := graphQLParams{
		Query:         values.Get("query"),
		OperationName: values.Get("operationName"),
	}
	if raw := values.Get("variables"); raw != "" {
		params.Variables = raw
	}
	return params
}

func readGraphQLBody(ctx context.Context, w http.ResponseWriter, r *http.Request) (graphQLParams, error) {
	_, span := startSpan(ctx, "httpapi.readGraphQLBody")
	defer span.End()

	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	defer body.Close()

	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return graphQLParams{}, crerr.WithSecondaryError(errUnsupportedMedium, err)
		}
		mediaType = parsed
	}

	var params graphQLParams
	switch mediaType {
	case "application/graphql":
		raw, err := io.ReadAll(body)
		if err != nil {
			return graphQLParams{}, bodyReadError(err)
		}
		params.Query = string(raw)
	case "application/json":
		raw, err := io.ReadAll(body)
		if err != nil {
			return graphQLParams{}, bodyReadError(err)
		}
		if len(strings.TrimSpace(string(raw))) > 0 {
			if err := sonic.Unmarshal(raw, &params); err != nil {
				return graphQLParams{}, crerr.WithSecondaryError(errInvalidBody, err)
			}
		}
	default:
		return graphQLParams{}, crerr.Wrapf(errUnsupportedMedium, "%s", mediaType)
	}

	// URL parameters fill in whatever the body left out.
	query := r.URL.Query()
	if params.Query == "" {
		params.Query = query.Get("query")
	}
	if params.OperationName == "" {
		params.OperationName = query.Get("operationName")
	}
	if params.Variables == nil {
		if raw := query.Get("variables"); raw != "" {
			params.Variables = raw
		}
	}

	return params, nil
}

func bodyReadError(err error) error {
	var maxErr *http.MaxBytesError
	if crerr.As(err, &maxErr) {
		return crerr.WithSecondaryError(errBodyTooLarge, err)
	}
	return crerr.WithSecondaryError(errInvalidBody, err)
}

// operationType reports the type of the operation a request would execute.
// Unparseable documents report an empty type so execution can surface the
// syntax error itself.
func operationType(query, operationName string) string {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return ""
	}

	var ops []*ast.OperationDefinition
	for _, def := range doc.Definitions {
		if op, ok := def.(*ast.OperationDefinition); ok {
			ops = append(ops, op)
		}
	}

	if operationName == "" {
		if len(ops) == 1 {
			return ops[0].Operation
		}
		return ""
	}
	for _, op := range ops {
		if op.Name != nil && op.Name.Value == operationName {
			return op.Operation
		}
	}
	return ""
}
