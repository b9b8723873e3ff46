package service

import "context"

// Mailer delivers transactional email. Sending may fail; callers decide
// how a failed dispatch affects the surrounding flow.
type Mailer interface {
	SendMail(ctx context.Context, body, to, subject string) error
}
