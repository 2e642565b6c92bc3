// Package notify is the outbound mail boundary. Deliveries are
// best-effort and side-channel only: callers log failures and move on,
// they never let a failed send undo a confirmed reservation or a
// completed cancellation.
package notify

import "context"

// Message is one templated notification for one recipient.
type Message struct {
	Template string
	ToEmail  string
	ToName   string
	Fields   map[string]string
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Template names understood by the configured EmailJS account.
const (
	TemplateCompra = "compra"
	TemplateCancel = "cancelacion"
)
