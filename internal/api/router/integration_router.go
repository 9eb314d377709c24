package router

import (
	"net/http"

	"support-desk-backend/internal/api"
	"support-desk-backend/internal/api/endpoints"
)

func IntegrationRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		integrationEndpoints := endpoints.NewIntegrationEndpoints(s.Service(), prefix)
		mux.HandleFunc(prefix+"/integrations", s.MakeHTTPHandleFunc(integrationEndpoints.Integrations))
		mux.HandleFunc(prefix+"/integrations/", s.MakeHTTPHandleFunc(integrationEndpoints.Integration))
	}
}
