package router

import (
	"net/http"

	"support-desk-backend/internal/api"
	"support-desk-backend/internal/api/endpoints"
)

func WorkflowRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		workflowEndpoints := endpoints.NewWorkflowEndpoints(s.Service(), prefix)
		mux.HandleFunc(prefix+"/workflows", s.MakeHTTPHandleFunc(workflowEndpoints.Workflows))
		mux.HandleFunc(prefix+"/workflows/", s.MakeHTTPHandleFunc(workflowEndpoints.Workflow))
	}
}
