package ports

import (
	"context"

	"github.com/exalt/teamboard/internal/core/domain"
)

// AuditRepository persists authentication audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditRecorder accepts audit events for asynchronous persistence.
// Record must never block the request path.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// SigninThrottle limits repeated failed signin attempts per email.
type SigninThrottle interface {
	// TooMany reports whether the email has exceeded the failure budget.
	TooMany(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt within the current window.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure count after a successful signin.
	Reset(ctx context.Context, email string) error
}
