package endpoints

import (
	"net/http"
	"strings"

	"support-desk-backend/internal/dto"
	"support-desk-backend/internal/service/support"
)

type WorkflowEndpoints interface {
	Workflows(http.ResponseWriter, *http.Request) error
	Workflow(http.ResponseWriter, *http.Request) error
}

type workflowEndpoints struct {
	service *support.Service
	prefix  string
}

func NewWorkflowEndpoints(service *support.Service, prefix string) WorkflowEndpoints {
	return &workflowEndpoints{
		service: service,
		prefix:  strings.TrimRight(prefix, "/") + "/workflows/",
	}
}

func (h *workflowEndpoints) Workflows(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, methodHandlers{
		http.MethodGet:  h.handleList,
		http.MethodPost: h.handleCreate,
	})
}

// Workflow serves /:id and /:id/executions.
func (h *workflowEndpoints) Workflow(w http.ResponseWriter, r *http.Request) error {
	segments := pathSegments(r.URL.Path, h.prefix)
	switch {
	case len(segments) == 1:
		id := segments[0]
		return MethodHandler(w, r, methodHandlers{
			http.MethodGet: func(w http.ResponseWriter, r *http.Request) error {
				return h.handleGet(w, id)
			},
			http.MethodPatch: func(w http.ResponseWriter, r *http.Request) error {
				return h.handleUpdate(w, r, id)
			},
		})
	case len(segments) == 2 && segments[1] == "executions":
		id := segments[0]
		return MethodHandler(w, r, methodHandlers{
			http.MethodPost: func(w http.ResponseWriter, r *http.Request) error {
				return h.handleExecution(w, r, id)
			},
		})
	default:
		return notFoundPath(r)
	}
}

func (h *workflowEndpoints) handleList(w http.ResponseWriter, r *http.Request) error {
	return WriteJSON(w, http.StatusOK, h.service.ListWorkflows())
}

func (h *workflowEndpoints) handleGet(w http.ResponseWriter, id string) error {
	wf, err := h.service.GetWorkflow(id)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, wf)
}

func (h *workflowEndpoints) handleCreate(w http.ResponseWriter, r *http.Request) error {
	var req dto.CreateWorkflowRequest
	if err := decodeJSON(r, &req, "create workflow"); err != nil {
		return err
	}
	wf, err := h.service.CreateWorkflow(r.Context(), req)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusCreated, wf)
}

func (h *workflowEndpoints) handleUpdate(w http.ResponseWriter, r *http.Request, id string) error {
	var req dto.UpdateWorkflowRequest
	if err := decodeJSON(r, &req, "update workflow"); err != nil {
		return err
	}
	wf, err := h.service.UpdateWorkflow(r.Context(), id, req)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, wf)
}

func (h *workflowEndpoints) handleExecution(w http.ResponseWriter, r *http.Request, id string) error {
	var req dto.RecordExecutionRequest
	if err := decodeJSON(r, &req, "record execution"); err != nil {
		return err
	}
	wf, err := h.service.RecordWorkflowExecution(r.Context(), id, req)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, wf)
}
