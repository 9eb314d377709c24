package endpoints

import (
	"fmt"
	"net/http"
	"strings"

	"support-desk-backend/internal/dto"
	"support-desk-backend/internal/service/support"
	"support-desk-backend/internal/websocket"
)

type ConversationEndpoints interface {
	Conversations(http.ResponseWriter, *http.Request) error
	Conversation(http.ResponseWriter, *http.Request) error
	Websocket(http.ResponseWriter, *http.Request) error
	DashboardWebsocket(http.ResponseWriter, *http.Request) error
}

type ConversationPaths struct {
	ConversationPrefix string
	WebsocketPrefix    string
}

type conversationEndpoints struct {
	service *support.Service
	handler *websocket.Handler
	paths   ConversationPaths
}

func NewConversationEndpoints(service *support.Service, handler *websocket.Handler, prefix string) ConversationEndpoints {
	base := strings.TrimRight(prefix, "/")
	return NewConversationEndpointsWithPaths(service, handler, ConversationPaths{
		ConversationPrefix: base + "/conversations/",
		WebsocketPrefix:    base + "/ws/conversations/",
	})
}

func NewConversationEndpointsWithPaths(service *support.Service, handler *websocket.Handler, paths ConversationPaths) ConversationEndpoints {
	return &conversationEndpoints{
		service: service,
		handler: handler,
		paths:   paths,
	}
}

func (h *conversationEndpoints) Conversations(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, methodHandlers{
		http.MethodGet:  h.handleList,
		http.MethodPost: h.handleCreate,
	})
}

// Conversation serves /:id, /:id/messages and /:id/archive.
func (h *conversationEndpoints) Conversation(w http.ResponseWriter, r *http.Request) error {
	segments := pathSegments(r.URL.Path, h.paths.ConversationPrefix)
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
	case len(segments) == 2 && segments[1] == "messages":
		id := segments[0]
		return MethodHandler(w, r, methodHandlers{
			http.MethodGet: func(w http.ResponseWriter, r *http.Request) error {
				return WriteJSON(w, http.StatusOK, h.service.ListMessages(id))
			},
			http.MethodPost: func(w http.ResponseWriter, r *http.Request) error {
				return h.handlePostMessage(w, r, id)
			},
		})
	case len(segments) == 2 && segments[1] == "archive":
		id := segments[0]
		return MethodHandler(w, r, methodHandlers{
			http.MethodPost: func(w http.ResponseWriter, r *http.Request) error {
				return h.handleArchive(w, r, id)
			},
		})
	default:
		return notFoundPath(r)
	}
}

func (h *conversationEndpoints) Websocket(w http.ResponseWriter, r *http.Request) error {
	segments := pathSegments(r.URL.Path, h.paths.WebsocketPrefix)
	if len(segments) != 1 {
		return notFoundPath(r)
	}
	if err := h.requireWebsocket(); err != nil {
		return err
	}
	conv, err := h.service.GetConversation(segments[0])
	if err != nil {
		return serviceError(err)
	}
	h.handler.JoinRoom(w, r, websocket.ConversationRoom(conv.ID))
	return nil
}

func (h *conversationEndpoints) DashboardWebsocket(w http.ResponseWriter, r *http.Request) error {
	if err := h.requireWebsocket(); err != nil {
		return err
	}
	h.handler.JoinRoom(w, r, websocket.DashboardRoom)
	return nil
}

func (h *conversationEndpoints) requireWebsocket() error {
	if h.handler == nil {
		return &HTTPError{
			StatusCode: http.StatusServiceUnavailable,
			Message:    "Live updates are not available",
			ErrorLog:   fmt.Errorf("websocket handler not configured"),
		}
	}
	return nil
}

func (h *conversationEndpoints) handleList(w http.ResponseWriter, r *http.Request) error {
	return WriteJSON(w, http.StatusOK, h.service.ListConversations())
}

func (h *conversationEndpoints) handleGet(w http.ResponseWriter, id string) error {
	c, err := h.service.GetConversation(id)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, c)
}

func (h *conversationEndpoints) handleCreate(w http.ResponseWriter, r *http.Request) error {
	var req dto.CreateConversationRequest
	if err := decodeJSON(r, &req, "create conversation"); err != nil {
		return err
	}
	c, err := h.service.CreateConversation(r.Context(), req)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusCreated, c)
}

func (h *conversationEndpoints) handleUpdate(w http.ResponseWriter, r *http.Request, id string) error {
	var req dto.UpdateConversationRequest
	if err := decodeJSON(r, &req, "update conversation"); err != nil {
		return err
	}
	c, err := h.service.UpdateConversation(r.Context(), id, req)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, c)
}

func (h *conversationEndpoints) handlePostMessage(w http.ResponseWriter, r *http.Request, id string) error {
	var req dto.PostMessageRequest
	if err := decodeJSON(r, &req, "post message"); err != nil {
		return err
	}
	result, err := h.service.PostMessage(r.Context(), id, req)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusCreated, dto.PostMessageResponse{
		UserMessage: result.UserMessage,
		AIMessage:   result.AIMessage,
	})
}

func (h *conversationEndpoints) handleArchive(w http.ResponseWriter, r *http.Request, id string) error {
	t, err := h.service.ArchiveConversation(r.Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return WriteJSON(w, http.StatusCreated, t)
}
