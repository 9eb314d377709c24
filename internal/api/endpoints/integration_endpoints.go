package endpoints

import (
	"net/http"
	"strings"

	"support-desk-backend/internal/dto"
	"support-desk-backend/internal/service/support"
)

type IntegrationEndpoints interface {
	Integrations(http.ResponseWriter, *http.Request) error
	Integration(http.ResponseWriter, *http.Request) error
}

type integrationEndpoints struct {
	service *support.Service
	prefix  string
}

func NewIntegrationEndpoints(service *support.Service, prefix string) IntegrationEndpoints {
	return &integrationEndpoints{
		service: service,
		prefix:  strings.TrimRight(prefix, "/") + "/integrations/",
	}
}

func (h *integrationEndpoints) Integrations(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, methodHandlers{
		http.MethodGet:  h.handleList,
		http.MethodPost: h.handleCreate,
	})
}

func (h *integrationEndpoints) Integration(w http.ResponseWriter, r *http.Request) error {
	segments := pathSegments(r.URL.Path, h.prefix)
	if len(segments) != 1 {
		return notFoundPath(r)
	}
	id := segments[0]
	return MethodHandler(w, r, methodHandlers{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) error {
			return h.handleGet(w, id)
		},
		http.MethodPatch: func(w http.ResponseWriter, r *http.Request) error {
			return h.handleUpdate(w, r, id)
		},
	})
}

func (h *integrationEndpoints) handleList(w http.ResponseWriter, r *http.Request) error {
	return WriteJSON(w, http.StatusOK, h.service.ListIntegrations())
}

func (h *integrationEndpoints) handleGet(w http.ResponseWriter, id string) error {
	i, err := h.service.GetIntegration(id)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, i)
}

func (h *integrationEndpoints) handleCreate(w http.ResponseWriter, r *http.Request) error {
	var req dto.CreateIntegrationRequest
	if err := decodeJSON(r, &req, "create integration"); err != nil {
		return err
	}
	i, err := h.service.CreateIntegration(r.Context(), req)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusCreated, i)
}

func (h *integrationEndpoints) handleUpdate(w http.ResponseWriter, r *http.Request, id string) error {
	var req dto.UpdateIntegrationRequest
	if err := decodeJSON(r, &req, "update integration"); err != nil {
		return err
	}
	i, err := h.service.UpdateIntegration(r.Context(), id, req)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, i)
}
