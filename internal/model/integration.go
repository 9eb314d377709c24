package model

import "time"

type IntegrationType string

const (
	IntegrationStripe     IntegrationType = "stripe"
	IntegrationHubSpot    IntegrationType = "hubspot"
	IntegrationSalesforce IntegrationType = "salesforce"
	IntegrationTeams      IntegrationType = "teams"
	IntegrationSlack      IntegrationType = "slack"
	IntegrationEmail      IntegrationType = "email"
	IntegrationSMS        IntegrationType = "sms"
)

type IntegrationStatus string

const (
	IntegrationConnected    IntegrationStatus = "connected"
	IntegrationDisconnected IntegrationStatus = "disconnected"
	IntegrationError        IntegrationStatus = "error"
)

// WebhookURLKey is the config key holding an outbound webhook address.
const WebhookURLKey = "webhook_url"

type Integration struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Type      IntegrationType   `json:"type"`
	Status    IntegrationStatus `json:"status"`
	Config    map[string]string `json:"config"`
	LastSync  *time.Time        `json:"lastSync,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

type IntegrationPatch struct {
	Name   *string
	Type   *IntegrationType
	Status *IntegrationStatus
	Config map[string]string
}

func (i Integration) Clone() Integration {
	i.Config = cloneStringMap(i.Config)
	if i.LastSync != nil {
		ts := *i.LastSync
		i.LastSync = &ts
	}
	return i
}

// Apply merges p into i. A patch that sets the status to connected stamps
// LastSync with now; any other patch leaves LastSync as it was.
func (i *Integration) Apply(p IntegrationPatch, now time.Time) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Type != nil {
		i.Type = *p.Type
	}
	if p.Status != nil {
		i.Status = *p.Status
	}
	if p.Config != nil {
		i.Config = cloneStringMap(p.Config)
	}
	if p.Status != nil && *p.Status == IntegrationConnected {
		ts := now
		i.LastSync = &ts
	}
}
