package endpoints

import (
	"net/http"

	"support-desk-backend/internal/service/support"
)

type UtilsEndpoints interface {
	Health(http.ResponseWriter, *http.Request) error
	Analytics(http.ResponseWriter, *http.Request) error
}

type utilsEndpoints struct {
	service *support.Service
}

func NewUtilsEndpoints(service *support.Service) UtilsEndpoints {
	return &utilsEndpoints{service: service}
}

func (h *utilsEndpoints) Health(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, methodHandlers{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) error {
			return WriteJSON(w, http.StatusOK, struct{}{})
		},
	})
}

// Analytics is recomputed on every call.
func (h *utilsEndpoints) Analytics(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, methodHandlers{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) error {
			return WriteJSON(w, http.StatusOK, h.service.Analytics())
		},
	})
}
