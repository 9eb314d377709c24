package router

import (
	"net/http"
	"strings"

	"support-desk-backend/internal/api"
	"support-desk-backend/internal/api/endpoints"
)

func ConversationRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		paths := endpoints.ConversationPaths{
			ConversationPrefix: strings.TrimRight(prefix, "/") + "/conversations/",
		}
		convEndpoints := endpoints.NewConversationEndpointsWithPaths(s.Service(), s.Websocket(), paths)

		mux.HandleFunc(prefix+"/conversations", s.MakeHTTPHandleFunc(convEndpoints.Conversations))
		mux.HandleFunc(prefix+"/conversations/", s.MakeHTTPHandleFunc(convEndpoints.Conversation))
	}
}

func ConversationWebsocketRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		paths := endpoints.ConversationPaths{
			WebsocketPrefix: strings.TrimRight(prefix, "/") + "/conversations/",
		}
		convEndpoints := endpoints.NewConversationEndpointsWithPaths(s.Service(), s.Websocket(), paths)

		mux.HandleFunc(prefix+"/conversations/", s.MakeHTTPHandleFunc(convEndpoints.Websocket))
		mux.HandleFunc(prefix+"/dashboard", s.MakeHTTPHandleFunc(convEndpoints.DashboardWebsocket))
	}
}
