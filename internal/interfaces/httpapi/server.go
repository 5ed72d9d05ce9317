package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-graphql/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerGraphQLRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		sw := newStatusRecorder(w)
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "response_started", sw.wroteHeader)
				// A started response cannot be replaced.
				if !sw.wroteHeader {
					writeInternalError(ctx, sw)
				}
			}
		}()
		next.ServeHTTP(sw, r.WithContext(ctx))
	})
}
