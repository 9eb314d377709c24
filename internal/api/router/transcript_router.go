package router

import (
	"net/http"

	"support-desk-backend/internal/api"
	"support-desk-backend/internal/api/endpoints"
)

func TranscriptRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		transcriptEndpoints := endpoints.NewTranscriptEndpoints(s.Service(), prefix)
		mux.HandleFunc(prefix+"/transcripts", s.MakeHTTPHandleFunc(transcriptEndpoints.Transcripts))
		mux.HandleFunc(prefix+"/transcripts/", s.MakeHTTPHandleFunc(transcriptEndpoints.Transcript))
	}
}
