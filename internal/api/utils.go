package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"support-desk-backend/internal/api/middleware"
	"support-desk-backend/internal/queue"
)

type apiFunc func(http.ResponseWriter, *http.Request) error

func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// MakeHTTPHandleFunc runs f on the request queue and writes its error, if
// any, as {"message": ...}. Extra middleware wraps f inside CORS and logging.
func (s *APIServer) MakeHTTPHandleFunc(f apiFunc, mw ...middleware.Middleware) http.HandlerFunc {
	baseHandler := func(w http.ResponseWriter, r *http.Request) {
		errc := make(chan error, 1)

		job := queue.Job{
			Fn: func() error {
				return f(w, r)
			},
			Errc: errc,
		}

		s.requestQueueManager.EnqueueJob(job)

		if err := <-errc; err != nil {
			writeError(w, r, err)
		}
	}

	middlewares := []middleware.Middleware{
		middleware.CORS(s.cors),
		middleware.Logging(),
	}

	finalHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		middleware.Chain(baseHandler, mw...)(w, r)
	}

	return middleware.Chain(finalHandler, middlewares...)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.ErrorLog != nil {
			log.Printf("%s %s: %v", r.Method, r.URL.Path, httpErr.ErrorLog)
		}
		WriteJSON(w, httpErr.StatusCode, ApiError{Error: httpErr.Message, Fields: httpErr.Fields})
		return
	}
	if errors.Is(err, queue.ErrStopped) {
		WriteJSON(w, http.StatusServiceUnavailable, ApiError{Error: "Server is shutting down"})
		return
	}
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	WriteJSON(w, http.StatusInternalServerError, ApiError{Error: "Internal server error"})
}
