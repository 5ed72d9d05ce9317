package graphqlapi

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/graphql-go/graphql"
	"github.com/riskibarqy/league-graphql/internal/usecase"
)

const (
	codeNotFound     = "NOT_FOUND"
	codeInvalidInput = "BAD_USER_INPUT"
	codeInternal     = "INTERNAL"
)

// codedError carries a machine-readable code into the response's
// errors[].extensions.
type codedError struct {
	code    string
	message string
	cause   error
}

func (e *codedError) Error() string {
	return e.message
}

func (e *codedError) Unwrap() error {
	return e.cause
}

func (e *codedError) Extensions() map[string]any {
	return map[string]any{"code": e.code}
}

// fieldError maps a use case error to what the client sees. Unexpected
// errors are logged and replaced with a generic message.
func (r *resolver) fieldError(p graphql.ResolveParams, err error) error {
	switch {
	case crerr.Is(err, usecase.ErrNotFound):
		return &codedError{code: codeNotFound, message: err.Error(), cause: err}
	case crerr.Is(err, usecase.ErrInvalidInput):
		return &codedError{code: codeInvalidInput, message: err.Error(), cause: err}
	default:
		r.logger.ErrorContext(p.Context, "resolve field failed",
			"field", p.Info.FieldName,
			"parent", parentTypeName(p),
			"error", err,
		)
		return &codedError{code: codeInternal, message: "internal server error", cause: err}
	}
}

// optional turns ErrNotFound into a null value for single-entity lookups.
func (r *resolver) optional(p graphql.ResolveParams, item any, err error) (any, error) {
	if crerr.Is(err, usecase.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.fieldError(p, err)
	}
	return item, nil
}

func parentTypeName(p graphql.ResolveParams) string {
	if p.Info.ParentType == nil {
		return ""
	}
	return p.Info.ParentType.Name()
}
