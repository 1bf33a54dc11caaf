package sms

import "context"

// Sender delivers one SMS message. Implementations are thin transport
// adapters; message content and opt-out bookkeeping belong to the caller.
type Sender interface {
	Send(ctx context.Context, to, message string) error
}
