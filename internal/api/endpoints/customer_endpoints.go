package endpoints

import (
	"net/http"
	"strings"

	"support-desk-backend/internal/dto"
	"support-desk-backend/internal/service/support"
)

type CustomerEndpoints interface {
	Customers(http.ResponseWriter, *http.Request) error
	Customer(http.ResponseWriter, *http.Request) error
}

type customerEndpoints struct {
	service *support.Service
	prefix  string
}

// NewCustomerEndpoints serves prefix+"/customers" and its items.
func NewCustomerEndpoints(service *support.Service, prefix string) CustomerEndpoints {
	return &customerEndpoints{
		service: service,
		prefix:  strings.TrimRight(prefix, "/") + "/customers/",
	}
}

func (h *customerEndpoints) Customers(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, methodHandlers{
		http.MethodGet:  h.handleList,
		http.MethodPost: h.handleCreate,
	})
}

func (h *customerEndpoints) Customer(w http.ResponseWriter, r *http.Request) error {
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

func (h *customerEndpoints) handleList(w http.ResponseWriter, r *http.Request) error {
	return WriteJSON(w, http.StatusOK, h.service.ListCustomers())
}

func (h *customerEndpoints) handleGet(w http.ResponseWriter, id string) error {
	c, err := h.service.GetCustomer(id)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, c)
}

func (h *customerEndpoints) handleCreate(w http.ResponseWriter, r *http.Request) error {
	var req dto.CreateCustomerRequest
	if err := decodeJSON(r, &req, "create customer"); err != nil {
		return err
	}
	c, err := h.service.CreateCustomer(r.Context(), req)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusCreated, c)
}

func (h *customerEndpoints) handleUpdate(w http.ResponseWriter, r *http.Request, id string) error {
	var req dto.UpdateCustomerRequest
	if err := decodeJSON(r, &req, "update customer"); err != nil {
		return err
	}
	c, err := h.service.UpdateCustomer(r.Context(), id, req)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, c)
}
