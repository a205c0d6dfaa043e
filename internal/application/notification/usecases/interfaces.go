package usecases

import "context"

// Mailer sends a single email. Implementations return false instead of an
// error when delivery fails: sending is best effort and callers only need to
// know whether the message went out.
type Mailer interface {
	SendPlain(to, subject, body string) bool
	SendHTML(to, subject, htmlBody string) bool
	SendWithAttachment(to, subject, body, attachmentPath string) bool
}

type DeliverNotificationExecutor interface {
	Execute(ctx context.Context, cmd DeliverNotificationCommand) (*DeliverNotificationResult, error)
}
