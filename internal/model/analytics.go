package model

// Analytics is the dashboard snapshot. ResponseTime and CSAT are configured
// placeholders, not derived from stored data.
type Analytics struct {
	ActiveTickets       int     `json:"activeTickets"`
	ResponseTime        string  `json:"responseTime"`
	CSAT                float64 `json:"csat"`
	ResolvedToday       int     `json:"resolvedToday"`
	TotalConversations  int     `json:"totalConversations"`
	AverageRating       float64 `json:"averageRating"`
	PendingWorkflows    int     `json:"pendingWorkflows"`
	SuccessfulWorkflows int     `json:"successfulWorkflows"`
}
