package router

import (
	"net/http"

	"support-desk-backend/internal/api"
	"support-desk-backend/internal/api/endpoints"
)

func UtilsRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		utilsEndpoints := endpoints.NewUtilsEndpoints(s.Service())
		mux.HandleFunc(prefix+"/health", s.MakeHTTPHandleFunc(utilsEndpoints.Health))
		mux.HandleFunc(prefix+"/analytics", s.MakeHTTPHandleFunc(utilsEndpoints.Analytics))
	}
}

// SupportRoutes registers every dashboard route under prefix.
func SupportRoutes(prefix string) []api.RouteRegistrar {
	return []api.RouteRegistrar{
		UtilsRoutes(prefix),
		CustomerRoutes(prefix),
		ConversationRoutes(prefix),
		ConversationWebsocketRoutes(prefix + "/ws"),
		WorkflowRoutes(prefix),
		TicketRoutes(prefix),
		IntegrationRoutes(prefix),
		TranscriptRoutes(prefix),
	}
}
