package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.RedirectRoot)
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerGraphQLRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /graphql", handler.GraphQLGet)
	mux.HandleFunc("POST /graphql", handler.GraphQLPost)
}
