// Package store is the in-memory authority over all support desk entities.
//
// Every read returns a copy; callers never share slices or maps with the
// store. Absence is reported through a boolean, never an error: no store
// operation performs I/O, so none can fail.
package store

import "support-desk-backend/internal/model"

type Store interface {
	ListCustomers() []model.Customer
	GetCustomer(id string) (model.Customer, bool)
	CreateCustomer(c model.Customer) model.Customer
	UpdateCustomer(id string, p model.CustomerPatch) (model.Customer, bool)

	ListConversations() []model.Conversation
	GetConversation(id string) (model.Conversation, bool)
	CreateConversation(c model.Conversation) model.Conversation
	UpdateConversation(id string, p model.ConversationPatch) (model.Conversation, bool)

	ListMessages(conversationID string) []model.Message
	CreateMessage(m model.Message) model.Message

	ListWorkflows() []model.Workflow
	GetWorkflow(id string) (model.Workflow, bool)
	CreateWorkflow(w model.Workflow) model.Workflow
	UpdateWorkflow(id string, p model.WorkflowPatch) (model.Workflow, bool)
	RecordWorkflowExecution(id string, succeeded bool) (model.Workflow, bool)

	ListTickets() []model.Ticket
	GetTicket(id string) (model.Ticket, bool)
	CreateTicket(t model.Ticket) model.Ticket
	UpdateTicket(id string, p model.TicketPatch) (after, before model.Ticket, ok bool)

	ListIntegrations() []model.Integration
	GetIntegration(id string) (model.Integration, bool)
	CreateIntegration(i model.Integration) model.Integration
	UpdateIntegration(id string, p model.IntegrationPatch) (model.Integration, bool)

	Analytics() model.Analytics
}
