package endpoints

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"support-desk-backend/internal/service/support"
)

type TranscriptEndpoints interface {
	Transcripts(http.ResponseWriter, *http.Request) error
	Transcript(http.ResponseWriter, *http.Request) error
}

type transcriptEndpoints struct {
	service *support.Service
	prefix  string
}

func NewTranscriptEndpoints(service *support.Service, prefix string) TranscriptEndpoints {
	return &transcriptEndpoints{
		service: service,
		prefix:  strings.TrimRight(prefix, "/") + "/transcripts/",
	}
}

func (h *transcriptEndpoints) Transcripts(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, methodHandlers{
		http.MethodGet: h.handleList,
	})
}

func (h *transcriptEndpoints) Transcript(w http.ResponseWriter, r *http.Request) error {
	segments := pathSegments(r.URL.Path, h.prefix)
	if len(segments) != 1 {
		return notFoundPath(r)
	}
	id := segments[0]
	return MethodHandler(w, r, methodHandlers{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) error {
			t, err := h.service.GetTranscript(r.Context(), id)
			if err != nil {
				return serviceError(err)
			}
			return WriteJSON(w, http.StatusOK, t)
		},
	})
}

// handleList accepts ?limit=N; zero or absent means the server maximum.
func (h *transcriptEndpoints) handleList(w http.ResponseWriter, r *http.Request) error {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return &HTTPError{
				StatusCode: http.StatusBadRequest,
				Message:    "limit must be a non-negative integer",
				ErrorLog:   fmt.Errorf("bad transcript limit %q", raw),
			}
		}
		limit = n
	}
	items, err := h.service.ListTranscripts(r.Context(), limit)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, items)
}
