package router

import (
	"net/http"

	"support-desk-backend/internal/api"
	"support-desk-backend/internal/api/endpoints"
)

func TicketRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		ticketEndpoints := endpoints.NewTicketEndpoints(s.Service(), prefix)
		mux.HandleFunc(prefix+"/tickets", s.MakeHTTPHandleFunc(ticketEndpoints.Tickets))
		mux.HandleFunc(prefix+"/tickets/", s.MakeHTTPHandleFunc(ticketEndpoints.Ticket))
	}
}
