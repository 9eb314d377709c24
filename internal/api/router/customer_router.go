package router

import (
	"net/http"

	"support-desk-backend/internal/api"
	"support-desk-backend/internal/api/endpoints"
)

func CustomerRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		customerEndpoints := endpoints.NewCustomerEndpoints(s.Service(), prefix)
		mux.HandleFunc(prefix+"/customers", s.MakeHTTPHandleFunc(customerEndpoints.Customers))
		mux.HandleFunc(prefix+"/customers/", s.MakeHTTPHandleFunc(customerEndpoints.Customer))
	}
}
