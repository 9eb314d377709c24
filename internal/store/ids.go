package store

import (
	"strings"

	"github.com/google/uuid"
)

const (
	prefixCustomer     = "cust"
	prefixConversation = "conv"
	prefixMessage      = "msg"
	prefixWorkflow     = "wf"
	prefixTicket       = "ticket"
	prefixIntegration  = "int"
)

// randomID returns prefix followed by a nine character random suffix, e.g.
// "cust-3f9a0c2b1".
func randomID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return prefix + "-" + suffix
}
