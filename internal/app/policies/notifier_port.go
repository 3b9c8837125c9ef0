package policies

import "context"

// Notifier is the port to the messaging collaborator (guest/host templates
// over WhatsApp and friends). Delivery internals live outside this service.
type Notifier interface {
	Notify(ctx context.Context, recipient, template string, payload map[string]string) error
}
